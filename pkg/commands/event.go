package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/DIEGO120000/agenda-test01/pkg/command"
	"github.com/DIEGO120000/agenda-test01/pkg/commands/options"
	"github.com/DIEGO120000/agenda-test01/pkg/runner/add"
	"github.com/DIEGO120000/agenda-test01/pkg/store"
)

func addEvent(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	activity := ""

	cmd := &cobra.Command{
		Use:     "event",
		Aliases: []string{"block"},
		Short:   "Add a weekly schedule block",
		Example: `
agenda add event Algebra Review --day Monday --start 09:00 --end 10:30 --kind class
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an activity")
			}
			activity = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := add.Add{
				Event: &command.EventItem{
					Day:      eo.Day,
					Start:    eo.Start,
					End:      eo.End,
					Activity: activity,
					Kind:     eo.Kind,
					Modality: eo.Modality,
				},
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEventArgs(cmd, eo)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
