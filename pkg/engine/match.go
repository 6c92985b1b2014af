package engine

import (
	"strings"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
	"github.com/DIEGO120000/agenda-test01/pkg/command"
)

// matchesFragment reports whether any criterion is a case-insensitive
// substring of field. An empty criteria list matches nothing.
func matchesFragment(field string, criteria []string) bool {
	lowered := strings.ToLower(field)
	for _, c := range criteria {
		if strings.Contains(lowered, strings.ToLower(c)) {
			return true
		}
	}
	return false
}

// matchesEvent reports whether any criterion pair selects the event: the day
// must be equal as given, the activity a case-insensitive substring.
func matchesEvent(e agenda.ScheduleEvent, criteria []command.EventCriterion) bool {
	activity := strings.ToLower(e.Activity)
	for _, c := range criteria {
		if e.Day == c.Day && strings.Contains(activity, strings.ToLower(c.Activity)) {
			return true
		}
	}
	return false
}

// Matching zero entities is a valid no-op, so the remove helpers simply keep
// everything that does not match.

func removeTasksByName(tasks []agenda.Task, criteria []string) []agenda.Task {
	kept := make([]agenda.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchesFragment(t.Name, criteria) {
			kept = append(kept, t)
		}
	}
	return kept
}

func removeNotesByFragment(notes []agenda.Note, criteria []string) []agenda.Note {
	kept := make([]agenda.Note, 0, len(notes))
	for _, n := range notes {
		if !matchesFragment(n.Content, criteria) {
			kept = append(kept, n)
		}
	}
	return kept
}

func removeHobbiesByName(hobbies []agenda.Hobby, criteria []string) []agenda.Hobby {
	kept := make([]agenda.Hobby, 0, len(hobbies))
	for _, h := range hobbies {
		if !matchesFragment(h.Name, criteria) {
			kept = append(kept, h)
		}
	}
	return kept
}

func removeEventsByCriteria(events []agenda.ScheduleEvent, criteria []command.EventCriterion) []agenda.ScheduleEvent {
	kept := make([]agenda.ScheduleEvent, 0, len(events))
	for _, e := range events {
		if !matchesEvent(e, criteria) {
			kept = append(kept, e)
		}
	}
	return kept
}
