package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"livadm/internal/report"
)

func newReportCmd(app *App) *cobra.Command {
	var (
		out       string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a markdown snapshot of the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			md := report.Render(s.doc, time.Now())
			if out == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}
			if err := report.WriteFile(out, md, overwrite); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, reportWritten{Written: []string{out}})
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	return cmd
}
