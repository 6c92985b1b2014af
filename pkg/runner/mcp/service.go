// Package mcp provides the Model Context Protocol server integration for the
// planner. Tools reuse the same command decoding and dispatch as the
// assistant, so a malformed tool call degrades to a no-op instead of failing
// the server.
package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
	"github.com/DIEGO120000/agenda-test01/pkg/command"
	"github.com/DIEGO120000/agenda-test01/pkg/engine"
	"github.com/DIEGO120000/agenda-test01/pkg/store"
)

// Service coordinates persistence-backed operations shared by the MCP server.
type Service struct {
	container  *engine.Container
	dispatcher engine.Dispatcher
}

// NewService loads the snapshot once and keeps the canonical state in a
// container for the lifetime of the server; every mutation is persisted
// through the commit hook.
func NewService(ctx context.Context, p store.Persistence) *Service {
	return &Service{
		container: engine.NewContainer(p.LoadState(ctx), func(s agenda.State) {
			if err := p.SaveState(s); err != nil {
				fmt.Fprintf(os.Stderr, "save state: %s\n", err)
			}
		}),
	}
}

// State returns the current snapshot.
func (s *Service) State() agenda.State {
	return s.container.Load()
}

// Call decodes one raw tool call and applies it. ok=false means the
// arguments did not fit the command's schema.
func (s *Service) Call(name string, args map[string]any) (agenda.State, bool) {
	cmd, ok := command.Decode(name, args)
	if !ok {
		return agenda.State{}, false
	}
	s.dispatcher.Apply(s.container, []command.Command{cmd})
	return s.container.Load(), true
}

// SetTaskStatus moves a task to a new status by ID.
func (s *Service) SetTaskStatus(id string, status agenda.Status) agenda.State {
	return s.container.Update(engine.SetTaskStatus(id, status))
}

// ToggleHobby flips a hobby's done flag by ID.
func (s *Service) ToggleHobby(id string) agenda.State {
	return s.container.Update(engine.ToggleHobby(id))
}

// RemoveByID deletes one entity by its identifier.
func (s *Service) RemoveByID(id string) agenda.State {
	return s.container.Update(engine.RemoveByID(id))
}
