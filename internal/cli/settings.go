package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"livadm/internal/mutate"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Global settings commands",
	}
	cmd.AddCommand(newSettingsShowCmd(app))
	cmd.AddCommand(newSettingsSetCmd(app))
	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show global settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, settingsView{Settings: s.doc.Settings})
		},
	}
	return cmd
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var (
		pickupsPerDay   int
		minPhotos       int
		photoSource     string
		requireLocation bool
		showHistory     bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change global settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if photoSource != "" && photoSource != "camera_only" && photoSource != "camera_or_upload" {
				return writeErr(cmd, fmt.Errorf("invalid photo source %q, expected camera_only or camera_or_upload", photoSource))
			}

			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}

			// Unpassed flags keep the server's current values.
			next := s.doc.Settings
			if cmd.Flags().Changed("pickups-per-day") {
				next.AllowedPickupsPerDay = pickupsPerDay
			}
			if cmd.Flags().Changed("min-photos") {
				next.MinRequiredPhotos = minPhotos
			}
			if cmd.Flags().Changed("photo-source") {
				next.PhotoSourceMode = photoSource
			}
			if cmd.Flags().Changed("require-location") {
				next.RequirePickupLocation = requireLocation
			}
			if cmd.Flags().Changed("show-history") {
				next.ShowHistoryToDrivers = showHistory
			}
			return s.submit(cmd, app, mutate.Settings(next))
		},
	}

	cmd.Flags().IntVar(&pickupsPerDay, "pickups-per-day", 0, "Allowed pickups per driver per day")
	cmd.Flags().IntVar(&minPhotos, "min-photos", 0, "Minimum photos per pickup")
	cmd.Flags().StringVar(&photoSource, "photo-source", "", "camera_only or camera_or_upload")
	cmd.Flags().BoolVar(&requireLocation, "require-location", false, "Require a GPS fix on pickups")
	cmd.Flags().BoolVar(&showHistory, "show-history", false, "Let drivers see pickup history")
	return cmd
}
