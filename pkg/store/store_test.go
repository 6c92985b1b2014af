package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }
func (c *testConfig) APIKey() string   { return "" }
func (c *testConfig) Model() string    { return DefaultModel }

func testPersistence(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestLoadStateFresh(t *testing.T) {
	p := testPersistence(t)
	s := p.LoadState(context.Background())
	if s.Tasks == nil || s.Schedule == nil || s.Notes == nil || s.Hobbies == nil {
		t.Fatalf("fresh state has nil collections: %+v", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := testPersistence(t)

	s := agenda.NewState()
	s.Tasks = append(s.Tasks,
		agenda.Task{ID: "t1", Name: "Math Homework", Criticality: 7, Priority: agenda.PriorityHigh, Status: agenda.StatusPending},
		agenda.Task{ID: "t2", Name: "History Essay", Criticality: 5, Priority: agenda.PriorityMedium, Status: agenda.StatusDone},
	)
	s.Notes = append(s.Notes, agenda.Note{ID: "n1", Content: "pay tuition"})

	if err := p.SaveState(s); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.LoadState(context.Background())
	if len(got.Tasks) != 2 || got.Tasks[0].ID != "t1" || got.Tasks[1].ID != "t2" {
		t.Fatalf("tasks did not round trip in order: %+v", got.Tasks)
	}
	if got.Tasks[1].Status != agenda.StatusDone {
		t.Fatalf("status lost: %+v", got.Tasks[1])
	}
	if len(got.Notes) != 1 {
		t.Fatalf("notes lost: %+v", got.Notes)
	}
}

func TestLoadStateCorruptBlob(t *testing.T) {
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "state"), []byte("{{{ not json"), 0o644); err != nil {
		t.Fatalf("write corrupt blob: %v", err)
	}

	s := p.LoadState(context.Background())
	if s.Tasks == nil || len(s.Tasks) != 0 {
		t.Fatalf("corrupt blob should load as empty state, got %+v", s)
	}
}

func TestLoadStatePartiallyCorrupt(t *testing.T) {
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	blob := `{"tasks": 42, "notes": [{"id": "n1", "content": "survives"}]}`
	if err := os.WriteFile(filepath.Join(dir, "state"), []byte(blob), 0o644); err != nil {
		t.Fatalf("write blob: %v", err)
	}

	s := p.LoadState(context.Background())
	if len(s.Tasks) != 0 {
		t.Fatalf("corrupt tasks should be empty, got %+v", s.Tasks)
	}
	if len(s.Notes) != 1 || s.Notes[0].Content != "survives" {
		t.Fatalf("valid notes should survive: %+v", s.Notes)
	}
}
