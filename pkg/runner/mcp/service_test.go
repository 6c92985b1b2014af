package mcp

import (
	"context"
	"testing"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
)

type memPersistence struct {
	state agenda.State
}

func (m *memPersistence) LoadState(_ context.Context) agenda.State {
	s := m.state.Clone()
	s.Init()
	return s
}

func (m *memPersistence) SaveState(s agenda.State) error {
	m.state = s.Clone()
	return nil
}

func TestServiceCallAddAndRemove(t *testing.T) {
	p := &memPersistence{state: agenda.NewState()}
	svc := NewService(context.Background(), p)

	s, ok := svc.Call("add_tasks", map[string]any{
		"tasks": []any{
			map[string]any{"name": "Math Homework", "criticality": float64(8)},
		},
	})
	if !ok {
		t.Fatalf("expected call to decode")
	}
	if len(s.Tasks) != 1 || s.Tasks[0].Name != "Math Homework" {
		t.Fatalf("task not added: %+v", s.Tasks)
	}
	if len(p.state.Tasks) != 1 {
		t.Fatalf("mutation not persisted")
	}

	s, ok = svc.Call("remove_tasks", map[string]any{"names": []any{"math"}})
	if !ok {
		t.Fatalf("expected call to decode")
	}
	if len(s.Tasks) != 0 {
		t.Fatalf("task not removed: %+v", s.Tasks)
	}
}

func TestServiceCallRejectsMalformed(t *testing.T) {
	p := &memPersistence{state: agenda.NewState()}
	svc := NewService(context.Background(), p)

	if _, ok := svc.Call("add_tasks", map[string]any{"tasks": "nope"}); ok {
		t.Fatalf("malformed args should not decode")
	}
	if _, ok := svc.Call("unknown_tool", map[string]any{}); ok {
		t.Fatalf("unknown tool should not decode")
	}
	if len(p.state.Tasks) != 0 {
		t.Fatalf("rejected calls must not mutate state")
	}
}

func TestServiceStatusAndToggle(t *testing.T) {
	init := agenda.NewState()
	init.Tasks = append(init.Tasks, agenda.Task{ID: "t1", Name: "math", Status: agenda.StatusPending})
	init.Hobbies = append(init.Hobbies, agenda.Hobby{ID: "h1", Name: "chess"})
	p := &memPersistence{state: init}
	svc := NewService(context.Background(), p)

	s := svc.SetTaskStatus("t1", agenda.StatusDone)
	if s.Tasks[0].Status != agenda.StatusDone {
		t.Fatalf("status not set: %+v", s.Tasks[0])
	}

	s = svc.ToggleHobby("h1")
	if !s.Hobbies[0].Done {
		t.Fatalf("hobby not toggled: %+v", s.Hobbies[0])
	}

	s = svc.RemoveByID("t1")
	if len(s.Tasks) != 0 {
		t.Fatalf("task not removed by id: %+v", s.Tasks)
	}
}
