package options

import (
	"github.com/spf13/cobra"
)

// EventOptions captures the flags for adding a schedule block directly.
type EventOptions struct {
	Day      string
	Start    string
	End      string
	Kind     string
	Modality string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Day, "day", "d", "",
		`Full weekday name, example: --day="Monday".`)
	cmd.Flags().StringVar(&o.Start, "start", "",
		`Start time, example: --start="09:00".`)
	cmd.Flags().StringVar(&o.End, "end", "",
		`End time, example: --end="10:30".`)
	cmd.Flags().StringVar(&o.Kind, "kind", "class",
		"Block kind: class, study, or break.")
	cmd.Flags().StringVar(&o.Modality, "modality", "",
		"Optional modality: Virtual, Hybrid, or In-person.")
}
