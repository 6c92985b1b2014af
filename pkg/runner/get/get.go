package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/DIEGO120000/agenda-test01/pkg/printers"
	"github.com/DIEGO120000/agenda-test01/pkg/store"
)

// Get renders the current snapshot, either all four collections or one
// named section.
type Get struct {
	ShowID  bool
	Section string

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	s := n.Persistence.LoadState(ctx)
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	switch n.Section {
	case "":
		pp.State(s)
	case "tasks":
		pp.Title("Tasks")
		pp.Tasks(s.Tasks...)
	case "schedule":
		pp.Title("Schedule")
		pp.Schedule(s.Schedule...)
	case "notes":
		pp.Title("Notes")
		pp.Notes(s.Notes...)
	case "hobbies":
		pp.Title("Hobbies")
		pp.Hobbies(s.Hobbies...)
	default:
		return errors.New("unknown section, want tasks, schedule, notes, or hobbies")
	}

	return nil
}
