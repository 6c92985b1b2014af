package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/DIEGO120000/agenda-test01/pkg/assistant"
	"github.com/DIEGO120000/agenda-test01/pkg/commands/options"
	"github.com/DIEGO120000/agenda-test01/pkg/runner/chat"
	"github.com/DIEGO120000/agenda-test01/pkg/store"
)

func addChat(topLevel *cobra.Command) {
	co := &options.ChatOptions{}
	prompt := ""

	cmd := &cobra.Command{
		Use:     "chat [prompt]",
		Aliases: []string{"ask"},
		Short:   "Ask the assistant to read or edit the planner",
		Long: base.Wrap80("Sends the prompt, plus optional audio or document " +
			"attachments, to the assistant along with the current planner " +
			"snapshot. Any changes the assistant requests are applied in order " +
			"and persisted. Without a prompt, opens an interactive session."),
		Example: `
agenda chat add a high priority task to study for the physics exam on friday
agenda chat --file syllabus.pdf build my weekly schedule from this
agenda chat
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			prompt = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.APIKey() == "" {
				return errors.New("no api key configured, set AGENDA_API_KEY or GEMINI_API_KEY")
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}

			s := chat.Chat{
				Client:      &assistant.Gemini{APIKey: cfg.APIKey(), Model: cfg.Model()},
				Persistence: p,
				Prompt:      prompt,
				AudioPath:   co.AudioPath,
				FilePath:    co.FilePath,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddChatArgs(cmd, co)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
