package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/DIEGO120000/agenda-test01/pkg/command"
)

// Gemini is the production Client backed by the Gemini API.
type Gemini struct {
	APIKey string
	Model  string

	// Now is overridable for tests; the zero value uses the wall clock.
	Now func() time.Time
}

var _ Client = (*Gemini)(nil)

func (g *Gemini) Respond(ctx context.Context, req Request) (Reply, error) {
	if g.APIKey == "" {
		return Reply{}, ErrUnauthorized
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		return Reply{}, fmt.Errorf("assistant: create client: %w", err)
	}
	defer client.Close()

	now := time.Now()
	if g.Now != nil {
		now = g.Now()
	}

	model := client.GenerativeModel(g.Model)
	model.Tools = []*genai.Tool{{FunctionDeclarations: declarations()}}
	model.SetTemperature(0.1)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction(req.State, now))},
	}

	prompt := req.Prompt
	if prompt == "" {
		prompt = "Handle the request in the attached audio or document."
	}
	parts := []genai.Part{genai.Text(prompt)}
	if len(req.Audio) > 0 {
		parts = append(parts, genai.Blob{MIMEType: audioMIME(req.AudioMIME), Data: req.Audio})
	}
	if len(req.Document) > 0 {
		parts = append(parts, genai.Blob{MIMEType: req.DocumentMIME, Data: req.Document})
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && (gerr.Code == 401 || gerr.Code == 403) {
			return Reply{}, ErrUnauthorized
		}
		return Reply{}, fmt.Errorf("assistant: generate: %w", err)
	}

	return decodeReply(resp), nil
}

func audioMIME(mime string) string {
	if mime == "" {
		return "audio/webm"
	}
	return mime
}

// decodeReply collects the text parts and decodes the function-call parts in
// the order the model emitted them. Calls that fail to decode are dropped;
// a reply with no commands is informational only.
func decodeReply(resp *genai.GenerateContentResponse) Reply {
	var r Reply
	text := strings.Builder{}

	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			switch p := part.(type) {
			case genai.Text:
				text.WriteString(string(p))
			case genai.FunctionCall:
				if cmd, ok := command.Decode(p.Name, p.Args); ok {
					r.Commands = append(r.Commands, cmd)
				}
			}
		}
	}

	r.Text = strings.TrimSpace(text.String())
	return r
}
