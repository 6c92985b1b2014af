// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions captures the flags for adding a task directly.
type TaskOptions struct {
	Name        string
	Recommended string
	Due         string
	Criticality int
	Priority    string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.Recommended, "start", "",
		`Recommended start date, example: --start="2026-09-01".`)
	cmd.Flags().StringVar(&o.Due, "due", "",
		`Due date, example: --due="2026-09-15".`)
	cmd.Flags().IntVar(&o.Criticality, "criticality", 0,
		"Criticality from 1 to 10. Defaults to 5.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Priority: Low, Medium, or High. Defaults to Medium.")
}
