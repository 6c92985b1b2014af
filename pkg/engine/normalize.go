package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
	"github.com/DIEGO120000/agenda-test01/pkg/command"
)

// Placeholder text substituted for a missing name or content field. Items
// are never dropped for missing text.
const (
	UntitledTask     = "Untitled task"
	UntitledActivity = "Untitled activity"
	UntitledNote     = "Untitled note"
	UntitledHobby    = "Untitled hobby"
)

const (
	layoutISODate = "2006-01-02"
	layoutClock   = "15:04"
)

// Normalizer turns raw add-command items into well-formed entities: missing
// text gets a placeholder, missing dates get the current moment, criticality
// defaults to 5, priority to Medium, and every entity gets a fresh
// identifier. Creation timestamp and status are always set here, never taken
// from input. The zero value uses the wall clock and random UUIDs.
type Normalizer struct {
	Now   func() time.Time
	NewID func() string
}

func (n Normalizer) now() time.Time {
	if n.Now != nil {
		return n.Now()
	}
	return time.Now()
}

func (n Normalizer) id() string {
	if n.NewID != nil {
		return n.NewID()
	}
	return uuid.NewString()
}

// Tasks normalizes add_tasks items, preserving their order.
func (n Normalizer) Tasks(items []command.TaskItem) []agenda.Task {
	tasks := make([]agenda.Task, 0, len(items))
	for _, it := range items {
		now := n.now()
		t := agenda.Task{
			ID:          n.id(),
			Name:        it.Name,
			Recommended: it.Recommended,
			Due:         it.Due,
			Criticality: it.Criticality,
			Priority:    agenda.ParsePriority(it.Priority),
			Created:     now,
			Status:      agenda.StatusPending,
		}
		if t.Name == "" {
			t.Name = UntitledTask
		}
		if t.Recommended == "" {
			t.Recommended = now.Format(layoutISODate)
		}
		if t.Due == "" {
			t.Due = now.Format(layoutISODate)
		}
		if t.Criticality == 0 {
			t.Criticality = 5
		}
		tasks = append(tasks, t)
	}
	return tasks
}

// Events normalizes add_schedule items.
func (n Normalizer) Events(items []command.EventItem) []agenda.ScheduleEvent {
	events := make([]agenda.ScheduleEvent, 0, len(items))
	for _, it := range items {
		now := n.now()
		e := agenda.ScheduleEvent{
			ID:       n.id(),
			Day:      it.Day,
			Start:    it.Start,
			End:      it.End,
			Activity: it.Activity,
			Kind:     agenda.EventKind(it.Kind),
			Modality: agenda.Modality(it.Modality),
		}
		if e.Activity == "" {
			e.Activity = UntitledActivity
		}
		if e.Start == "" {
			e.Start = now.Format(layoutClock)
		}
		if e.End == "" {
			e.End = now.Format(layoutClock)
		}
		events = append(events, e)
	}
	return events
}

// Notes normalizes add_notes texts.
func (n Normalizer) Notes(texts []string) []agenda.Note {
	notes := make([]agenda.Note, 0, len(texts))
	for _, text := range texts {
		note := agenda.Note{
			ID:      n.id(),
			Content: text,
			Created: n.now(),
		}
		if note.Content == "" {
			note.Content = UntitledNote
		}
		notes = append(notes, note)
	}
	return notes
}

// Hobbies normalizes add_hobbies names. The done flag starts false.
func (n Normalizer) Hobbies(names []string) []agenda.Hobby {
	hobbies := make([]agenda.Hobby, 0, len(names))
	for _, name := range names {
		h := agenda.Hobby{
			ID:   n.id(),
			Name: name,
		}
		if h.Name == "" {
			h.Name = UntitledHobby
		}
		hobbies = append(hobbies, h)
	}
	return hobbies
}
