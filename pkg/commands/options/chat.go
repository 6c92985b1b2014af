package options

import (
	"github.com/spf13/cobra"
)

// ChatOptions captures the attachment flags for the assistant.
type ChatOptions struct {
	AudioPath string
	FilePath  string
}

func AddChatArgs(cmd *cobra.Command, o *ChatOptions) {
	cmd.Flags().StringVar(&o.AudioPath, "audio", "",
		"Attach an audio recording for the assistant to transcribe.")
	cmd.Flags().StringVar(&o.FilePath, "file", "",
		"Attach a document (e.g. a PDF syllabus) for the assistant to read.")
}
