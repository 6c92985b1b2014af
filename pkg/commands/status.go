package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
	"github.com/DIEGO120000/agenda-test01/pkg/commands/options"
	"github.com/DIEGO120000/agenda-test01/pkg/runner/status"
	"github.com/DIEGO120000/agenda-test01/pkg/store"
)

func addStatus(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	raw := ""

	cmd := &cobra.Command{
		Use:   "status [Pending|In-Progress|Done]",
		Short: "Move a task to a new status",
		Example: `
agenda status Done --id 171dff69-f8b9-4dca-a1b2-09c8e3f4d511
`,
		ValidArgs: []string{
			agenda.StatusPending.String(),
			agenda.StatusInProgress.String(),
			agenda.StatusDone.String(),
		},
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a status")
			}
			raw = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			next, ok := agenda.ParseStatus(raw)
			if !ok {
				return errors.New("unknown status, want Pending, In-Progress, or Done")
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := status.Status{
				ID:          io.ID,
				Status:      next,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)

	addToggle(topLevel)
}

func addToggle(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Toggle a hobby's done flag",
		Example: `
agenda toggle --id 171dff69-f8b9-4dca-a1b2-09c8e3f4d511
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := status.Status{
				ID:          io.ID,
				ToggleHobby: true,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
