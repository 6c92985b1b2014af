package engine

import "github.com/DIEGO120000/agenda-test01/pkg/agenda"

// Direct user edits, expressed as the same pure transitions the dispatcher
// produces so they flow through the container alongside assistant batches.
// An ID that matches nothing leaves state unchanged.

// SetTaskStatus moves a task to the given status. Any status is reachable
// from any other; Done tasks can be reopened.
func SetTaskStatus(id string, status agenda.Status) func(agenda.State) agenda.State {
	return func(s agenda.State) agenda.State {
		for i := range s.Tasks {
			if s.Tasks[i].ID == id {
				s.Tasks[i].Status = status
				break
			}
		}
		return s
	}
}

// UpdateTask applies fn to the task with the given ID. The identifier is
// preserved even if fn rewrites it.
func UpdateTask(id string, fn func(*agenda.Task)) func(agenda.State) agenda.State {
	return func(s agenda.State) agenda.State {
		for i := range s.Tasks {
			if s.Tasks[i].ID == id {
				fn(&s.Tasks[i])
				s.Tasks[i].ID = id
				break
			}
		}
		return s
	}
}

// ToggleHobby flips the done flag of one hobby.
func ToggleHobby(id string) func(agenda.State) agenda.State {
	return func(s agenda.State) agenda.State {
		for i := range s.Hobbies {
			if s.Hobbies[i].ID == id {
				s.Hobbies[i].Toggle()
				break
			}
		}
		return s
	}
}

// RemoveByID deletes whichever entity carries the ID, searching all four
// collections.
func RemoveByID(id string) func(agenda.State) agenda.State {
	return func(s agenda.State) agenda.State {
		for i, t := range s.Tasks {
			if t.ID == id {
				s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
				return s
			}
		}
		for i, e := range s.Schedule {
			if e.ID == id {
				s.Schedule = append(s.Schedule[:i], s.Schedule[i+1:]...)
				return s
			}
		}
		for i, n := range s.Notes {
			if n.ID == id {
				s.Notes = append(s.Notes[:i], s.Notes[i+1:]...)
				return s
			}
		}
		for i, h := range s.Hobbies {
			if h.ID == id {
				s.Hobbies = append(s.Hobbies[:i], s.Hobbies[i+1:]...)
				return s
			}
		}
		return s
	}
}

// ClearSchedule drops every schedule block.
func ClearSchedule() func(agenda.State) agenda.State {
	return func(s agenda.State) agenda.State {
		s.Schedule = []agenda.ScheduleEvent{}
		return s
	}
}
