package agenda

import (
	"strconv"
	"time"
)

// Priority buckets a task by importance. Values outside the known set are
// stored as given; only the empty string is defaulted.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) String() string {
	return string(p)
}

// ParsePriority maps free text to a Priority, defaulting empty input to Medium.
func ParsePriority(s string) Priority {
	if s == "" {
		return PriorityMedium
	}
	return Priority(s)
}

// Status is the lifecycle state of a task. Any status is reachable from any
// other; Done is not terminal.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In-Progress"
	StatusDone       Status = "Done"
)

func (s Status) String() string {
	return string(s)
}

// ParseStatus maps free text to a Status. Empty input falls back to Pending;
// anything else outside the enumeration reports false.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusDone:
		return Status(s), true
	case "":
		return StatusPending, true
	}
	return StatusPending, false
}

type Task struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Recommended string    `json:"recommended,omitempty"`
	Due         string    `json:"due,omitempty"`
	Criticality int       `json:"criticality"`
	Priority    Priority  `json:"priority"`
	Created     time.Time `json:"created"`
	Status      Status    `json:"status"`
}

func (t *Task) Row() (string, string, string, string, string, string) {
	return t.Name, t.Recommended, t.Due, strconv.Itoa(t.Criticality), t.Priority.String(), t.Status.String()
}
