// Package chat provides the runner logic for the assistant conversation:
// send one prompt (or loop over stdin), then dispatch whatever commands the
// model returned against the live state.
package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
	"github.com/DIEGO120000/agenda-test01/pkg/assistant"
	"github.com/DIEGO120000/agenda-test01/pkg/engine"
	"github.com/DIEGO120000/agenda-test01/pkg/printers"
	"github.com/DIEGO120000/agenda-test01/pkg/store"
)

// Chat drives one conversation turn, or an interactive loop when Prompt is
// empty and In is a terminal-ish reader. Only one request is in flight at a
// time; busy guards against a second send while one is pending.
type Chat struct {
	Client      assistant.Client
	Persistence store.Persistence

	Prompt    string
	AudioPath string
	FilePath  string

	In  io.Reader
	Out io.Writer

	busy bool
}

func (n *Chat) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not chat, no persistence")
	}
	if n.Client == nil {
		return errors.New("can not chat, no assistant client")
	}
	if n.Out == nil {
		n.Out = os.Stdout
	}

	c := engine.NewContainer(n.Persistence.LoadState(ctx), func(s agenda.State) {
		if err := n.Persistence.SaveState(s); err != nil {
			fmt.Fprintf(os.Stderr, "save state: %s\n", err)
		}
	})

	if n.Prompt != "" || n.AudioPath != "" || n.FilePath != "" {
		return n.turn(ctx, c, n.Prompt)
	}

	in := n.In
	if in == nil {
		in = os.Stdin
	}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(n.Out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}
		if err := n.turn(ctx, c, line); err != nil {
			// Transport and auth failures are visible but do not end the
			// session; state is untouched.
			fmt.Fprintf(n.Out, "error: %s\n", err)
		}
	}
}

// turn sends one request and applies the resulting batch. The batch is
// dispatched against the container, not against the snapshot that went out
// with the request, so edits made while the call was pending are observed.
func (n *Chat) turn(ctx context.Context, c *engine.Container, prompt string) error {
	if n.busy {
		return errors.New("a request is already in flight")
	}
	n.busy = true
	defer func() { n.busy = false }()

	req := assistant.Request{State: c.Load(), Prompt: prompt}

	if n.AudioPath != "" {
		data, err := os.ReadFile(n.AudioPath)
		if err != nil {
			return fmt.Errorf("read audio: %w", err)
		}
		req.Audio = data
		req.AudioMIME = mimeForPath(n.AudioPath, "audio/webm")
	}
	if n.FilePath != "" {
		data, err := os.ReadFile(n.FilePath)
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		req.Document = data
		req.DocumentMIME = mimeForPath(n.FilePath, "application/octet-stream")
	}

	reply, err := n.Client.Respond(ctx, req)
	if err != nil {
		return err
	}

	if reply.Text != "" {
		_, _ = color.New(color.FgCyan).Fprintln(n.Out, reply.Text)
	}

	if len(reply.Commands) == 0 {
		return nil
	}

	report := engine.Dispatcher{}.Apply(c, reply.Commands)
	faint := color.New(color.Faint)
	_, _ = faint.Fprintf(n.Out, "applied %d change(s)", report.Applied)
	if report.Skipped > 0 {
		_, _ = faint.Fprintf(n.Out, ", skipped %d", report.Skipped)
	}
	_, _ = faint.Fprintln(n.Out, "")

	pp := printers.PrettyPrint{}
	pp.State(c.Load())
	return nil
}

func mimeForPath(path, fallback string) string {
	switch {
	case strings.HasSuffix(path, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(path, ".txt"):
		return "text/plain"
	case strings.HasSuffix(path, ".mp3"):
		return "audio/mpeg"
	case strings.HasSuffix(path, ".wav"):
		return "audio/wav"
	case strings.HasSuffix(path, ".webm"):
		return "audio/webm"
	case strings.HasSuffix(path, ".ogg"):
		return "audio/ogg"
	}
	return fallback
}
