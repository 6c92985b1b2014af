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

func addTask(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add a task",
		Example: `
agenda add task finish the algebra problem set --due 2026-09-15 -p High
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task name")
			}
			to.Name = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := add.Add{
				Task: &command.TaskItem{
					Name:        to.Name,
					Recommended: to.Recommended,
					Due:         to.Due,
					Criticality: to.Criticality,
					Priority:    to.Priority,
				},
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
