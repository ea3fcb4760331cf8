package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"livadm/internal/model"
	"livadm/internal/mutate"
)

func newPharmaciesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pharmacies",
		Aliases: []string{"ph"},
		Short:   "Pharmacy commands",
	}
	cmd.AddCommand(newPharmaciesListCmd(app))
	cmd.AddCommand(newPharmaciesCreateCmd(app))
	cmd.AddCommand(newPharmaciesToggleCmd(app))
	cmd.AddCommand(newPharmaciesDeleteCmd(app))
	cmd.AddCommand(newPharmaciesAssignCmd(app))
	cmd.AddCommand(newPharmaciesUnassignCmd(app))
	cmd.AddCommand(newPharmaciesCutoffsCmd(app))
	return cmd
}

func newPharmaciesListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pharmacies with their assigned drivers",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, pharmacyList{Pharmacies: docPharmacies(s.doc)})
		},
	}
	return cmd
}

func newPharmaciesCreateCmd(app *App) *cobra.Command {
	var (
		name    string
		region  string
		address string
		cutoff  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pharmacy",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			row, ok := s.regionByRef(region)
			if !ok {
				return writeErr(cmd, errNotFound("region", region))
			}
			sub, err := mutate.CreatePharmacy(name, row.Region.ID, address, cutoff)
			if err != nil {
				return writeErr(cmd, err)
			}
			return s.submit(cmd, app, sub)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Pharmacy name")
	cmd.Flags().StringVar(&region, "region", "", "Region id or name")
	cmd.Flags().StringVar(&address, "address", "", "Street address")
	cmd.Flags().StringVar(&cutoff, "cutoff", "", "Default weekday cutoff (HH:MM)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("region")
	return cmd
}

func newPharmaciesToggleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <pharmacy>",
		Short: "Toggle a pharmacy between active and inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			row, ok := s.pharmacyByRef(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("pharmacy", args[0]))
			}
			return s.submit(cmd, app, mutate.TogglePharmacy(row.Pharmacy))
		},
	}
	return cmd
}

func newPharmaciesDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <pharmacy>",
		Short: "Delete a pharmacy and its assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return writeErr(cmd, errNeedsYes("pharmacy "+args[0]))
			}
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			row, ok := s.pharmacyByRef(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("pharmacy", args[0]))
			}
			return s.submit(cmd, app, mutate.DeletePharmacy(row.Pharmacy.ID))
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the delete")
	return cmd
}

func newPharmaciesAssignCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "assign <pharmacy>",
		Short: "Assign a driver to a pharmacy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			prow, ok := s.pharmacyByRef(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("pharmacy", args[0]))
			}
			urow, ok := s.userByRef(user)
			if !ok {
				return writeErr(cmd, errNotFound("user", user))
			}
			// Same restriction the dashboard's picker applies.
			if !urow.User.Role.Assignable() {
				return writeErr(cmd, fmt.Errorf("%s has role %s and cannot take assignments", urow.User.Login, urow.User.Role))
			}
			return s.submit(cmd, app, mutate.AssignUser(prow.Pharmacy.ID, urow.User.ID))
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User id or login")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newPharmaciesUnassignCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "unassign <pharmacy>",
		Short: "Remove a driver from a pharmacy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			prow, ok := s.pharmacyByRef(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("pharmacy", args[0]))
			}
			urow, ok := s.userByRef(user)
			if !ok {
				return writeErr(cmd, errNotFound("user", user))
			}
			for _, chip := range prow.Chips {
				if chip.UserID == urow.User.ID {
					return s.submit(cmd, app, mutate.Unassign(prow.Pharmacy.ID, chip))
				}
			}
			return writeErr(cmd, fmt.Errorf("%s is not assigned to %s", urow.User.Login, prow.Pharmacy.Name))
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User id or login")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newPharmaciesCutoffsCmd(app *App) *cobra.Command {
	var dayFlags [7]string
	var defaultCutoff string

	cmd := &cobra.Command{
		Use:   "cutoffs <pharmacy>",
		Short: "Set weekly pickup cutoffs",
		Long: `Set per-weekday pickup cutoff times for a pharmacy.

Weekday flags replace only the days you pass; other days keep their
current cutoff. An empty value clears the day:

  livadm pharmacies cutoffs central --mon 09:00 --sat ""

--default sets the pharmacy's single default weekday cutoff instead and
cannot be combined with weekday flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dayChanged := false
			for _, key := range model.DayKeys {
				if cmd.Flags().Changed(key) {
					dayChanged = true
				}
			}
			useDefault := cmd.Flags().Changed("default")
			if useDefault && dayChanged {
				return writeErr(cmd, errors.New("--default cannot be combined with weekday flags"))
			}
			if !useDefault && !dayChanged {
				return writeErr(cmd, errors.New("nothing to change; pass weekday flags or --default"))
			}

			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			row, ok := s.pharmacyByRef(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("pharmacy", args[0]))
			}

			if useDefault {
				sub, err := mutate.DefaultCutoff(row.Pharmacy.ID, defaultCutoff)
				if err != nil {
					return writeErr(cmd, err)
				}
				return s.submit(cmd, app, sub)
			}

			// Start from the current week so untouched days survive the batch post.
			var days [7]string
			for i, key := range model.DayKeys {
				days[i] = row.Pharmacy.Cutoffs.Get(key)
				if cmd.Flags().Changed(key) {
					days[i] = dayFlags[i]
				}
			}
			sub, err := mutate.CutoffsWeek(row.Pharmacy.ID, days)
			if err != nil {
				return writeErr(cmd, err)
			}
			return s.submit(cmd, app, sub)
		},
	}

	for i, key := range model.DayKeys {
		cmd.Flags().StringVar(&dayFlags[i], key, "", "Cutoff for "+key+" (HH:MM, empty clears)")
	}
	cmd.Flags().StringVar(&defaultCutoff, "default", "", "Default weekday cutoff (HH:MM, empty clears)")
	return cmd
}
