package add

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
	"github.com/DIEGO120000/agenda-test01/pkg/command"
	"github.com/DIEGO120000/agenda-test01/pkg/engine"
	"github.com/DIEGO120000/agenda-test01/pkg/printers"
	"github.com/DIEGO120000/agenda-test01/pkg/store"
)

// Add creates one entity by direct user action. Exactly one of Task, Event,
// Note, Hobby should be set; input goes through the same normalizer as
// assistant commands, so defaults and IDs behave identically.
type Add struct {
	Task  *command.TaskItem
	Event *command.EventItem
	Note  string
	Hobby string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	c := engine.NewContainer(n.Persistence.LoadState(ctx), func(s agenda.State) {
		if err := n.Persistence.SaveState(s); err != nil {
			fmt.Fprintf(os.Stderr, "save state: %s\n", err)
		}
	})

	norm := engine.Normalizer{}
	pp := printers.PrettyPrint{}

	switch {
	case n.Task != nil:
		item := *n.Task
		s := c.Update(func(s agenda.State) agenda.State {
			s.Tasks = append(s.Tasks, norm.Tasks([]command.TaskItem{item})...)
			return s
		})
		pp.Title("Tasks")
		pp.Tasks(s.Tasks...)

	case n.Event != nil:
		item := *n.Event
		s := c.Update(func(s agenda.State) agenda.State {
			s.Schedule = append(s.Schedule, norm.Events([]command.EventItem{item})...)
			return s
		})
		pp.Title("Schedule")
		pp.Schedule(s.Schedule...)

	case n.Note != "":
		text := n.Note
		s := c.Update(func(s agenda.State) agenda.State {
			s.Notes = append(s.Notes, norm.Notes([]string{text})...)
			return s
		})
		pp.Title("Notes")
		pp.Notes(s.Notes...)

	case n.Hobby != "":
		name := n.Hobby
		s := c.Update(func(s agenda.State) agenda.State {
			s.Hobbies = append(s.Hobbies, norm.Hobbies([]string{name})...)
			return s
		})
		pp.Title("Hobbies")
		pp.Hobbies(s.Hobbies...)

	default:
		return errors.New("nothing to add")
	}

	return nil
}
