package engine

import (
	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
	"github.com/DIEGO120000/agenda-test01/pkg/command"
)

// Report summarizes one batch: how many commands mutated state and how many
// degraded to no-ops.
type Report struct {
	Applied int
	Skipped int
}

// Dispatcher folds an ordered command batch into a container. It performs no
// I/O; persistence hangs off the container's commit hook.
type Dispatcher struct {
	Normalizer Normalizer
}

// Apply runs each command in order through the container's read-modify-write
// primitive, one transition per command, so command i+1 observes the effect
// of command i and of any user edit committed in between. A command with an
// unknown kind counts as skipped and the rest of the batch still runs.
func (d Dispatcher) Apply(c *Container, batch []command.Command) Report {
	var r Report
	for _, cmd := range batch {
		fn, ok := d.transition(cmd)
		if !ok {
			r.Skipped++
			continue
		}
		c.Update(fn)
		r.Applied++
	}
	return r
}

// transition builds the pure state transition for one command. Each touches
// only the single relevant collection; adds append in item order.
func (d Dispatcher) transition(cmd command.Command) (func(agenda.State) agenda.State, bool) {
	switch cmd.Kind {
	case command.AddTasks:
		items := cmd.Tasks
		return func(s agenda.State) agenda.State {
			s.Tasks = append(s.Tasks, d.Normalizer.Tasks(items)...)
			return s
		}, true

	case command.RemoveTasks:
		criteria := cmd.Criteria
		return func(s agenda.State) agenda.State {
			s.Tasks = removeTasksByName(s.Tasks, criteria)
			return s
		}, true

	case command.AddSchedule:
		items := cmd.Events
		return func(s agenda.State) agenda.State {
			s.Schedule = append(s.Schedule, d.Normalizer.Events(items)...)
			return s
		}, true

	case command.RemoveSchedule:
		criteria := cmd.EventCriteria
		return func(s agenda.State) agenda.State {
			s.Schedule = removeEventsByCriteria(s.Schedule, criteria)
			return s
		}, true

	case command.AddNotes:
		texts := cmd.Texts
		return func(s agenda.State) agenda.State {
			s.Notes = append(s.Notes, d.Normalizer.Notes(texts)...)
			return s
		}, true

	case command.RemoveNotes:
		criteria := cmd.Criteria
		return func(s agenda.State) agenda.State {
			s.Notes = removeNotesByFragment(s.Notes, criteria)
			return s
		}, true

	case command.AddHobbies:
		texts := cmd.Texts
		return func(s agenda.State) agenda.State {
			s.Hobbies = append(s.Hobbies, d.Normalizer.Hobbies(texts)...)
			return s
		}, true

	case command.RemoveHobbies:
		criteria := cmd.Criteria
		return func(s agenda.State) agenda.State {
			s.Hobbies = removeHobbiesByName(s.Hobbies, criteria)
			return s
		}, true
	}

	return nil, false
}
