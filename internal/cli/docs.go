package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"livadm/internal/docs"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show on-demand documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, topicList{Topics: docs.Topics()})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `livadm docs` to list topics)", topic))
			}

			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}

			return writeOut(cmd, app, docTopic{Topic: topic, Markdown: body})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no rendering, no JSON envelope)")

	return cmd
}
