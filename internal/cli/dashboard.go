package cli

import (
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show record counts and global settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, dashboardSummary{
				Counts:   s.doc.Counts,
				Settings: s.doc.Settings,
			})
		},
	}
	return cmd
}
