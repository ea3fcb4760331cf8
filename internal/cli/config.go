package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"livadm/internal/store"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Local configuration commands",
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigSetCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			path, err := store.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, configView{
				Path:           path,
				Server:         cfg.Server,
				Session:        maskSession(cfg.Session),
				Theme:          cfg.Theme,
				Output:         cfg.Output,
				TimeoutSeconds: cfg.TimeoutSeconds,
			})
		},
	}
	return cmd
}

func newConfigSetCmd(app *App) *cobra.Command {
	var (
		server  string
		session string
		theme   string
		output  string
		timeout int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save configuration values",
		Long: `Save configuration values to the config file.

Only the file is written; LIVADM_* environment overrides are deliberately
not folded in, so a temporary env override never becomes permanent.
Passing an empty value clears the field:

  livadm config set --server https://livadm.example.com
  livadm config set --session ""`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			if cmd.Flags().Changed("server") {
				cfg.Server = strings.TrimSpace(server)
			}
			if cmd.Flags().Changed("session") {
				cfg.Session = strings.TrimSpace(session)
			}
			if cmd.Flags().Changed("theme") {
				cfg.Theme = strings.TrimSpace(theme)
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = strings.TrimSpace(output)
			}
			if cmd.Flags().Changed("timeout") {
				cfg.TimeoutSeconds = timeout
			}
			if err := cfg.Validate(); err != nil {
				return writeErr(cmd, err)
			}
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			path, err := store.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, configView{
				Path:           path,
				Server:         cfg.Server,
				Session:        maskSession(cfg.Session),
				Theme:          cfg.Theme,
				Output:         cfg.Output,
				TimeoutSeconds: cfg.TimeoutSeconds,
			})
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "Base URL of the admin backend")
	cmd.Flags().StringVar(&session, "session", "", "Session cookie value")
	cmd.Flags().StringVar(&theme, "theme", "", "Appearance profile id")
	cmd.Flags().StringVar(&output, "output", "", "Default output format (text or json)")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "Request timeout in seconds")
	return cmd
}

// maskSession keeps just enough of the cookie to tell sessions apart.
func maskSession(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
