// Package assistant talks to the generative model and turns its function
// calls into planner commands.
package assistant

import (
	"context"
	"errors"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
	"github.com/DIEGO120000/agenda-test01/pkg/command"
)

// ErrUnauthorized flags a rejected or missing API key. Callers surface it to
// the user instead of retrying.
var ErrUnauthorized = errors.New("assistant: api key missing or rejected")

// Request carries one user turn plus the snapshot the model should reason
// over. Audio and Document are optional raw attachments.
type Request struct {
	State  agenda.State
	Prompt string

	Audio     []byte
	AudioMIME string

	Document     []byte
	DocumentMIME string
}

// Reply is the model's answer: free text plus zero or more ordered commands.
// No commands means an informational-only reply, which is valid.
type Reply struct {
	Text     string
	Commands []command.Command
}

// Client is the model collaborator. Respond blocks for the duration of the
// network call; the planner state may move underneath it, which is why
// command batches are dispatched against the live container, never against
// the snapshot sent with the request.
type Client interface {
	Respond(ctx context.Context, req Request) (Reply, error)
}
