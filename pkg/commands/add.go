package commands

import (
	"github.com/spf13/cobra"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something",
		Example: `
agenda add note remember to pay tuition
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTask(cmd)
	addEvent(cmd)
	addNote(cmd)
	addHobby(cmd)

	topLevel.AddCommand(cmd)
}
