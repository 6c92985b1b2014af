// Package status provides the runner logic for task status changes and
// hobby toggles.
package status

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
	"github.com/DIEGO120000/agenda-test01/pkg/engine"
	"github.com/DIEGO120000/agenda-test01/pkg/printers"
	"github.com/DIEGO120000/agenda-test01/pkg/store"
)

// Status moves a task to a new status, or toggles a hobby's done flag when
// ToggleHobby is set.
type Status struct {
	ID          string
	Status      agenda.Status
	ToggleHobby bool

	Persistence store.Persistence
}

func (n *Status) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not update, no persistence")
	}
	if n.ID == "" {
		return errors.New("requires an id")
	}

	c := engine.NewContainer(n.Persistence.LoadState(ctx), func(s agenda.State) {
		if err := n.Persistence.SaveState(s); err != nil {
			fmt.Fprintf(os.Stderr, "save state: %s\n", err)
		}
	})

	pp := printers.PrettyPrint{ShowID: true}
	if n.ToggleHobby {
		s := c.Update(engine.ToggleHobby(n.ID))
		pp.Title("Hobbies")
		pp.Hobbies(s.Hobbies...)
		return nil
	}

	s := c.Update(engine.SetTaskStatus(n.ID, n.Status))
	pp.Title("Tasks")
	pp.Tasks(s.Tasks...)
	return nil
}
