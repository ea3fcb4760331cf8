package cli

import (
	"github.com/spf13/cobra"

	"livadm/internal/model"
	"livadm/internal/mutate"
)

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User commands",
	}
	cmd.AddCommand(newUsersListCmd(app))
	cmd.AddCommand(newUsersCreateCmd(app))
	cmd.AddCommand(newUsersToggleCmd(app))
	cmd.AddCommand(newUsersDeleteCmd(app))
	cmd.AddCommand(newUsersPasswdCmd(app))
	cmd.AddCommand(newUsersGPSCmd(app))
	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, userList{Users: docUsers(s.doc)})
		},
	}
	return cmd
}

func newUsersCreateCmd(app *App) *cobra.Command {
	var (
		login    string
		password string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate before fetching the dashboard so bad input fails fast.
			sub, err := mutate.CreateUser(login, password, role)
			if err != nil {
				return writeErr(cmd, err)
			}
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return s.submit(cmd, app, sub)
		},
	}

	cmd.Flags().StringVar(&login, "login", "", "Login name")
	cmd.Flags().StringVar(&password, "password", "", "Initial password")
	cmd.Flags().StringVar(&role, "role", string(model.RoleDriver), "Role (admin or driver)")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUsersToggleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <user>",
		Short: "Toggle a user between active and inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			row, ok := s.userByRef(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("user", args[0]))
			}
			return s.submit(cmd, app, mutate.ToggleUser(row.User))
		},
	}
	return cmd
}

func newUsersDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <user>",
		Short: "Delete a user and their pickups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return writeErr(cmd, errNeedsYes("user "+args[0]))
			}
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			row, ok := s.userByRef(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("user", args[0]))
			}
			return s.submit(cmd, app, mutate.DeleteUser(row.User.ID))
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the delete")
	return cmd
}

func newUsersPasswdCmd(app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "passwd <user>",
		Short: "Set a new password for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			row, ok := s.userByRef(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("user", args[0]))
			}
			sub, err := mutate.Password(row.User.ID, password)
			if err != nil {
				return writeErr(cmd, err)
			}
			return s.submit(cmd, app, sub)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "New password (6 characters minimum)")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUsersGPSCmd(app *App) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "gps <user>",
		Short: "Set a user's pickup-location requirement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.ParseGPSMode(mode)
			if err != nil {
				return writeErr(cmd, err)
			}
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			row, ok := s.userByRef(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("user", args[0]))
			}
			return s.submit(cmd, app, mutate.GPSMode(row.User.ID, m))
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "inherit, require, or no")
	_ = cmd.MarkFlagRequired("mode")
	return cmd
}
