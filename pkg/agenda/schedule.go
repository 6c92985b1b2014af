package agenda

// EventKind classifies a schedule block.
type EventKind string

const (
	KindClass EventKind = "class"
	KindStudy EventKind = "study"
	KindBreak EventKind = "break"
)

// Modality says how a schedule block is attended. Optional.
type Modality string

const (
	ModalityVirtual  Modality = "Virtual"
	ModalityHybrid   Modality = "Hybrid"
	ModalityInPerson Modality = "In-person"
)

// ScheduleEvent is one recurring weekly block. Day is the full weekday name
// as given by the user or the assistant; it is matched for deletion by exact
// string equality, so it is stored untouched.
type ScheduleEvent struct {
	ID       string    `json:"id"`
	Day      string    `json:"day"`
	Start    string    `json:"start"`
	End      string    `json:"end"`
	Activity string    `json:"activity"`
	Kind     EventKind `json:"kind"`
	Modality Modality  `json:"modality,omitempty"`
}

func (e *ScheduleEvent) Row() (string, string, string, string, string) {
	hours := e.Start
	if e.End != "" {
		hours = e.Start + "-" + e.End
	}
	return e.Day, hours, e.Activity, string(e.Kind), string(e.Modality)
}
