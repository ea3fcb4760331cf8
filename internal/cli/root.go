// Package cli is the scriptable command surface. Every mutating
// command runs the same submission pipeline the TUI runs, against a
// freshly fetched document, and reports the outcome toasts; without a
// subcommand the interactive dashboard starts.
package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	log "github.com/sirupsen/logrus"

	"livadm/internal/api"
	"livadm/internal/format"
	"livadm/internal/store"
	"livadm/internal/tui"
)

// App carries the persistent flag state shared by every command.
// Precedence per field: flag, then LIVADM_* environment, then
// ~/.livadm/config.json.
type App struct {
	Server  string
	Session string
	Timeout int

	JSON   bool
	Plain  bool
	Pretty bool
	Debug  bool

	cfg *store.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "livadm",
		Short:        "Terminal admin console for the pickup coordination backend",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  livadm

  # Scriptable commands
  livadm users list
  livadm users toggle dana
  livadm pharmacies assign central --user dana

  # Point at a server once
  livadm config set --server https://admin.example.com
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive dashboard.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		// The dashboard owns the terminal, so its log lines go to a
		// file; plain commands log to stderr.
		interactive := c == cmd && len(args) == 0
		setupLogging(app, interactive)
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Server, "server", "", "Admin backend base URL (overrides LIVADM_SERVER and the saved config)")
	cmd.PersistentFlags().StringVar(&app.Session, "session", "", "Session cookie value (overrides LIVADM_SESSION and the saved config)")
	cmd.PersistentFlags().IntVar(&app.Timeout, "timeout", 0, "Request timeout in seconds (0: client default)")
	cmd.PersistentFlags().BoolVar(&app.JSON, "json", false, "Force JSON output")
	cmd.PersistentFlags().BoolVar(&app.Plain, "plain", false, "Force plain-text output (tables)")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().BoolVar(&app.Debug, "debug", boolEnvDefault("LIVADM_DEBUG", false), "Log request/reconcile detail")

	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newUsersCmd(app))
	cmd.AddCommand(newRegionsCmd(app))
	cmd.AddCommand(newPharmaciesCmd(app))
	cmd.AddCommand(newSettingsCmd(app))
	cmd.AddCommand(newReportCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	client, err := newClient(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}

	prefs, err := store.OpenPrefs(cmd.Context())
	if err != nil {
		// Prefs are never load-bearing; run with defaults.
		log.WithError(err).Warn("ui prefs unavailable")
		return tui.Run(client, nil)
	}
	defer prefs.Close()
	return tui.Run(client, prefs)
}

// resolveConfig loads the saved config once and layers the environment
// and any explicit flags over it.
func resolveConfig(cmd *cobra.Command, app *App) (*store.Config, error) {
	if app.cfg != nil {
		return app.cfg, nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := store.ApplyEnv(cmd.Context(), cfg); err != nil {
		return nil, fmt.Errorf("apply environment: %w", err)
	}
	if app.Server != "" {
		cfg.Server = app.Server
	}
	if app.Session != "" {
		cfg.Session = app.Session
	}
	if app.Timeout > 0 {
		cfg.TimeoutSeconds = app.Timeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	app.cfg = cfg
	return cfg, nil
}

func newClient(cmd *cobra.Command, app *App) (*api.Client, error) {
	cfg, err := resolveConfig(cmd, app)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Server) == "" {
		return nil, errors.New("no server configured; run `livadm config set --server <url>` (or pass --server)")
	}
	return api.New(api.Options{
		BaseURL: cfg.Server,
		Session: cfg.Session,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}), nil
}

// outputFormat resolves the output encoding: explicit flags first, then
// the saved default, then JSON.
func (app *App) outputFormat() string {
	switch {
	case app.JSON:
		return "json"
	case app.Plain:
		return "text"
	}
	if app.cfg != nil && app.cfg.Output != "" {
		return app.cfg.Output
	}
	return "json"
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.outputFormat(), app.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
