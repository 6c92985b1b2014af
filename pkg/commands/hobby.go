package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/DIEGO120000/agenda-test01/pkg/runner/add"
	"github.com/DIEGO120000/agenda-test01/pkg/store"
)

func addHobby(topLevel *cobra.Command) {
	name := ""

	cmd := &cobra.Command{
		Use:     "hobby",
		Aliases: []string{"hobbies"},
		Short:   "Add a hobby",
		Example: `
agenda add hobby climbing
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a hobby")
			}
			name = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Hobby:       name,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
