package commands

import (
	"context"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/DIEGO120000/agenda-test01/pkg/commands/options"
	"github.com/DIEGO120000/agenda-test01/pkg/runner/get"
	"github.com/DIEGO120000/agenda-test01/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	section := ""

	cmd := &cobra.Command{
		Use:   "get [section]",
		Short: "Show the planner, or one of: tasks, schedule, notes, hobbies",
		Example: `
agenda get
agenda get tasks
agenda get schedule --show-id
`,
		ValidArgs: []string{"tasks", "schedule", "notes", "hobbies"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				section = strings.ToLower(args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Section:     section,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
