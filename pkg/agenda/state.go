// Package agenda defines the planner's entity records and the aggregate
// State that holds one insertion-ordered collection of each.
package agenda

import "encoding/json"

// State is the full planner snapshot. The four collections are always
// present, ordered slices; decode substitutes an empty slice for a missing
// or malformed collection rather than failing the load.
type State struct {
	Tasks    []Task          `json:"tasks"`
	Schedule []ScheduleEvent `json:"schedule"`
	Notes    []Note          `json:"notes"`
	Hobbies  []Hobby         `json:"hobbies"`
}

// NewState returns an empty state with all collections allocated.
func NewState() State {
	return State{
		Tasks:    []Task{},
		Schedule: []ScheduleEvent{},
		Notes:    []Note{},
		Hobbies:  []Hobby{},
	}
}

// Init replaces any nil collection with an empty one.
func (s *State) Init() {
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	if s.Schedule == nil {
		s.Schedule = []ScheduleEvent{}
	}
	if s.Notes == nil {
		s.Notes = []Note{}
	}
	if s.Hobbies == nil {
		s.Hobbies = []Hobby{}
	}
}

// Clone returns a deep copy. Entities hold no reference types, so copying
// the slices is enough to keep the canonical value unaliased.
func (s State) Clone() State {
	out := State{
		Tasks:    make([]Task, len(s.Tasks)),
		Schedule: make([]ScheduleEvent, len(s.Schedule)),
		Notes:    make([]Note, len(s.Notes)),
		Hobbies:  make([]Hobby, len(s.Hobbies)),
	}
	copy(out.Tasks, s.Tasks)
	copy(out.Schedule, s.Schedule)
	copy(out.Notes, s.Notes)
	copy(out.Hobbies, s.Hobbies)
	return out
}

// DecodeState parses a persisted snapshot, recovering per collection: a
// field that is absent, not an array, or undecodable becomes an empty
// slice while the remaining collections load normally. It never fails.
func DecodeState(data []byte) State {
	s := NewState()

	var raw struct {
		Tasks    json.RawMessage `json:"tasks"`
		Schedule json.RawMessage `json:"schedule"`
		Notes    json.RawMessage `json:"notes"`
		Hobbies  json.RawMessage `json:"hobbies"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return s
	}

	if raw.Tasks != nil {
		var tasks []Task
		if err := json.Unmarshal(raw.Tasks, &tasks); err == nil && tasks != nil {
			s.Tasks = tasks
		}
	}
	if raw.Schedule != nil {
		var events []ScheduleEvent
		if err := json.Unmarshal(raw.Schedule, &events); err == nil && events != nil {
			s.Schedule = events
		}
	}
	if raw.Notes != nil {
		var notes []Note
		if err := json.Unmarshal(raw.Notes, &notes); err == nil && notes != nil {
			s.Notes = notes
		}
	}
	if raw.Hobbies != nil {
		var hobbies []Hobby
		if err := json.Unmarshal(raw.Hobbies, &hobbies); err == nil && hobbies != nil {
			s.Hobbies = hobbies
		}
	}
	return s
}
