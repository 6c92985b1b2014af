package remove

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

// Target selects which collection a fragment removal applies to.
type Target string

const (
	Tasks    Target = "tasks"
	Schedule Target = "schedule"
	Notes    Target = "notes"
	Hobbies  Target = "hobbies"
)

// Remove deletes entities either by exact ID (any collection), by fragment
// criteria against one collection, by day+activity for schedule blocks, or
// clears the whole schedule with All.
type Remove struct {
	Target Target

	ID       string
	Criteria []string
	Day      string
	Activity string
	All      bool

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	c := engine.NewContainer(n.Persistence.LoadState(ctx), func(s agenda.State) {
		if err := n.Persistence.SaveState(s); err != nil {
			fmt.Fprintf(os.Stderr, "save state: %s\n", err)
		}
	})

	var s agenda.State
	switch {
	case n.ID != "":
		s = c.Update(engine.RemoveByID(n.ID))

	case n.All && n.Target == Schedule:
		s = c.Update(engine.ClearSchedule())

	case n.Target == Schedule:
		if n.Day == "" && n.Activity == "" {
			return errors.New("removing schedule blocks needs --day and --activity (or --all)")
		}
		cmd := command.Command{
			Kind:          command.RemoveSchedule,
			EventCriteria: []command.EventCriterion{{Day: n.Day, Activity: n.Activity}},
		}
		engine.Dispatcher{}.Apply(c, []command.Command{cmd})
		s = c.Load()

	case len(n.Criteria) > 0:
		cmd, ok := fragmentCommand(n.Target, n.Criteria)
		if !ok {
			return fmt.Errorf("unknown remove target %q", n.Target)
		}
		engine.Dispatcher{}.Apply(c, []command.Command{cmd})
		s = c.Load()

	default:
		return errors.New("nothing to remove")
	}

	pp := printers.PrettyPrint{}
	pp.State(s)
	return nil
}

func fragmentCommand(target Target, criteria []string) (command.Command, bool) {
	switch target {
	case Tasks:
		return command.Command{Kind: command.RemoveTasks, Criteria: criteria}, true
	case Notes:
		return command.Command{Kind: command.RemoveNotes, Criteria: criteria}, true
	case Hobbies:
		return command.Command{Kind: command.RemoveHobbies, Criteria: criteria}, true
	}
	return command.Command{}, false
}
