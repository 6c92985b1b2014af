// Package command defines the closed vocabulary of assistant tool calls and
// the loose decoding that turns a raw (name, args) pair into a typed Command.
package command

// Kind names one of the eight operations the dispatcher understands. The
// kind strings double as the function names declared to the model.
type Kind string

const (
	AddTasks       Kind = "add_tasks"
	RemoveTasks    Kind = "remove_tasks"
	AddSchedule    Kind = "add_schedule"
	RemoveSchedule Kind = "remove_schedule"
	AddNotes       Kind = "add_notes"
	RemoveNotes    Kind = "remove_notes"
	AddHobbies     Kind = "add_hobbies"
	RemoveHobbies  Kind = "remove_hobbies"
)

// TaskItem is the raw shape of one task in an add_tasks call. Every field
// may be missing; the normalizer fills defaults.
type TaskItem struct {
	Name        string
	Recommended string
	Due         string
	Criticality int
	Priority    string
}

// EventItem is the raw shape of one schedule block in an add_schedule call.
type EventItem struct {
	Day      string
	Start    string
	End      string
	Activity string
	Kind     string
	Modality string
}

// EventCriterion selects schedule blocks for removal: Day compares exactly,
// Activity as a case-insensitive substring.
type EventCriterion struct {
	Day      string
	Activity string
}

// Command is a tagged variant: Kind says which payload field is populated.
type Command struct {
	Kind Kind

	Tasks         []TaskItem
	Events        []EventItem
	Texts         []string
	Criteria      []string
	EventCriteria []EventCriterion
}
