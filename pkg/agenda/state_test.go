package agenda

import (
	"encoding/json"
	"testing"
)

func TestDecodeStateRecoversBadCollection(t *testing.T) {
	blob := []byte(`{
		"tasks": "not a list",
		"notes": [{"id": "n1", "content": "pay tuition"}],
		"hobbies": [{"id": "h1", "name": "chess", "done": true}],
		"schedule": [{"id": "e1", "day": "Monday", "activity": "Algebra"}]
	}`)

	s := DecodeState(blob)

	if len(s.Tasks) != 0 {
		t.Fatalf("expected corrupt tasks to decode empty, got %d", len(s.Tasks))
	}
	if s.Tasks == nil {
		t.Fatalf("tasks must never be nil")
	}
	if len(s.Notes) != 1 || s.Notes[0].Content != "pay tuition" {
		t.Fatalf("notes should survive a corrupt sibling: %+v", s.Notes)
	}
	if len(s.Hobbies) != 1 || !s.Hobbies[0].Done {
		t.Fatalf("hobbies should survive a corrupt sibling: %+v", s.Hobbies)
	}
	if len(s.Schedule) != 1 || s.Schedule[0].Day != "Monday" {
		t.Fatalf("schedule should survive a corrupt sibling: %+v", s.Schedule)
	}
}

func TestDecodeStateGarbage(t *testing.T) {
	for _, blob := range []string{"", "not json at all", "[1,2,3]", "null"} {
		s := DecodeState([]byte(blob))
		if s.Tasks == nil || s.Schedule == nil || s.Notes == nil || s.Hobbies == nil {
			t.Fatalf("decode of %q produced a nil collection", blob)
		}
		if len(s.Tasks)+len(s.Schedule)+len(s.Notes)+len(s.Hobbies) != 0 {
			t.Fatalf("decode of %q produced entities", blob)
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	s := NewState()
	s.Tasks = append(s.Tasks, Task{ID: "t1", Name: "Math Homework", Criticality: 7, Priority: PriorityHigh, Status: StatusPending})
	s.Schedule = append(s.Schedule, ScheduleEvent{ID: "e1", Day: "Monday", Start: "09:00", End: "10:00", Activity: "Algebra", Kind: KindClass})

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := DecodeState(data)
	if len(got.Tasks) != 1 || got.Tasks[0].ID != "t1" || got.Tasks[0].Priority != PriorityHigh {
		t.Fatalf("task did not round trip: %+v", got.Tasks)
	}
	if len(got.Schedule) != 1 || got.Schedule[0].Kind != KindClass {
		t.Fatalf("event did not round trip: %+v", got.Schedule)
	}
}

func TestCloneIsolation(t *testing.T) {
	s := NewState()
	s.Tasks = append(s.Tasks, Task{ID: "t1", Name: "original"})

	c := s.Clone()
	c.Tasks[0].Name = "changed"
	c.Tasks = append(c.Tasks, Task{ID: "t2"})

	if s.Tasks[0].Name != "original" {
		t.Fatalf("clone aliases the source slice")
	}
	if len(s.Tasks) != 1 {
		t.Fatalf("clone append leaked into the source")
	}
}

func TestParseStatus(t *testing.T) {
	if got, ok := ParseStatus(""); !ok || got != StatusPending {
		t.Fatalf("empty status should default to Pending, got %q ok=%v", got, ok)
	}
	if got, ok := ParseStatus("Done"); !ok || got != StatusDone {
		t.Fatalf("Done should parse, got %q ok=%v", got, ok)
	}
	if _, ok := ParseStatus("Finished"); ok {
		t.Fatalf("unknown status should not parse")
	}
}
