package chat

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
	"github.com/DIEGO120000/agenda-test01/pkg/assistant"
	"github.com/DIEGO120000/agenda-test01/pkg/command"
)

type memPersistence struct {
	state agenda.State
	saves int
}

func (m *memPersistence) LoadState(_ context.Context) agenda.State {
	s := m.state.Clone()
	s.Init()
	return s
}

func (m *memPersistence) SaveState(s agenda.State) error {
	m.state = s.Clone()
	m.saves++
	return nil
}

type fakeClient struct {
	reply assistant.Reply
	err   error

	gotState agenda.State
}

func (f *fakeClient) Respond(_ context.Context, req assistant.Request) (assistant.Reply, error) {
	f.gotState = req.State
	return f.reply, f.err
}

func TestTurnAppliesCommands(t *testing.T) {
	p := &memPersistence{state: agenda.NewState()}
	client := &fakeClient{reply: assistant.Reply{
		Text: "Added.",
		Commands: []command.Command{
			{Kind: command.AddNotes, Texts: []string{"pay tuition"}},
		},
	}}

	out := &bytes.Buffer{}
	c := &Chat{Client: client, Persistence: p, Prompt: "remind me to pay tuition", Out: out}

	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if len(p.state.Notes) != 1 || p.state.Notes[0].Content != "pay tuition" {
		t.Fatalf("note not persisted: %+v", p.state.Notes)
	}
	if p.saves != 1 {
		t.Fatalf("expected one save per transition, got %d", p.saves)
	}
	if !strings.Contains(out.String(), "Added.") {
		t.Fatalf("reply text not printed: %q", out.String())
	}
	if !strings.Contains(out.String(), "applied 1 change(s)") {
		t.Fatalf("summary not printed: %q", out.String())
	}
}

func TestTurnInformationalOnly(t *testing.T) {
	p := &memPersistence{state: agenda.NewState()}
	client := &fakeClient{reply: assistant.Reply{Text: "You are free on friday."}}

	out := &bytes.Buffer{}
	c := &Chat{Client: client, Persistence: p, Prompt: "am I free friday?", Out: out}

	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if p.saves != 0 {
		t.Fatalf("informational reply must not touch state, got %d saves", p.saves)
	}
	if !strings.Contains(out.String(), "You are free on friday.") {
		t.Fatalf("reply text not printed: %q", out.String())
	}
}

func TestTurnSurfacesTransportError(t *testing.T) {
	p := &memPersistence{state: agenda.NewState()}
	client := &fakeClient{err: assistant.ErrUnauthorized}

	c := &Chat{Client: client, Persistence: p, Prompt: "hello", Out: &bytes.Buffer{}}

	err := c.Do(context.Background())
	if !errors.Is(err, assistant.ErrUnauthorized) {
		t.Fatalf("expected auth error surfaced, got %v", err)
	}
	if p.saves != 0 {
		t.Fatalf("failed batch must leave state untouched")
	}
}

func TestTurnSendsCurrentSnapshot(t *testing.T) {
	init := agenda.NewState()
	init.Tasks = append(init.Tasks, agenda.Task{ID: "t1", Name: "Math Homework"})
	p := &memPersistence{state: init}
	client := &fakeClient{reply: assistant.Reply{Text: "ok"}}

	c := &Chat{Client: client, Persistence: p, Prompt: "what do I have?", Out: &bytes.Buffer{}}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if len(client.gotState.Tasks) != 1 {
		t.Fatalf("request should carry the snapshot, got %+v", client.gotState)
	}
}

func TestInteractiveLoopExits(t *testing.T) {
	p := &memPersistence{state: agenda.NewState()}
	client := &fakeClient{reply: assistant.Reply{
		Commands: []command.Command{{Kind: command.AddHobbies, Texts: []string{"chess"}}},
	}}

	in := strings.NewReader("add chess as a hobby\nexit\n")
	out := &bytes.Buffer{}
	c := &Chat{Client: client, Persistence: p, In: in, Out: out}

	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if len(p.state.Hobbies) != 1 {
		t.Fatalf("hobby not applied from interactive turn: %+v", p.state.Hobbies)
	}
}

func TestInteractiveLoopReportsErrorAndContinues(t *testing.T) {
	p := &memPersistence{state: agenda.NewState()}
	client := &fakeClient{err: errors.New("network down")}

	in := strings.NewReader("hello\nquit\n")
	out := &bytes.Buffer{}
	c := &Chat{Client: client, Persistence: p, In: in, Out: out}

	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("loop should swallow per-turn errors, got %v", err)
	}
	if !strings.Contains(out.String(), "network down") {
		t.Fatalf("error not surfaced to the user: %q", out.String())
	}
}
