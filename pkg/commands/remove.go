package commands

import (
	"context"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/DIEGO120000/agenda-test01/pkg/commands/options"
	"github.com/DIEGO120000/agenda-test01/pkg/runner/remove"
	"github.com/DIEGO120000/agenda-test01/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove something",
		Example: `
agenda remove task math
agenda remove schedule --day Monday --activity Algebra
agenda remove note --id 171dff69-f8b9-4dca-a1b2-09c8e3f4d511
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	removeFragment(cmd, "task", remove.Tasks, "Remove tasks by name fragment",
		"agenda remove task math history")
	removeFragment(cmd, "note", remove.Notes, "Remove notes by content fragment",
		"agenda remove note tuition")
	removeFragment(cmd, "hobby", remove.Hobbies, "Remove hobbies by name fragment",
		"agenda remove hobby chess")
	removeSchedule(cmd)

	topLevel.AddCommand(cmd)
}

func removeFragment(topLevel *cobra.Command, noun string, target remove.Target, short, example string) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     noun,
		Aliases: []string{noun + "s"},
		Short:   short,
		Example: "\n" + example + "\n",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				Target:      target,
				ID:          io.ID,
				Criteria:    args,
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

func removeSchedule(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	day := ""
	activity := ""
	all := false

	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"event", "events"},
		Short:   "Remove schedule blocks by day and activity, by id, or all of them",
		Example: `
agenda remove schedule --day Monday --activity Algebra
agenda remove schedule --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			// An activity fragment may also come as positional args.
			if activity == "" && len(args) > 0 {
				activity = strings.Join(args, " ")
			}
			s := remove.Remove{
				Target:      remove.Schedule,
				ID:          io.ID,
				Day:         day,
				Activity:    activity,
				All:         all,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&day, "day", "d", "", "Weekday to match exactly.")
	cmd.Flags().StringVar(&activity, "activity", "", "Activity fragment to match.")
	cmd.Flags().BoolVar(&all, "all", false, "Clear the whole schedule.")
	options.AddIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
