package cli

import (
	"github.com/spf13/cobra"

	"livadm/internal/mutate"
)

func newRegionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "Region commands",
	}
	cmd.AddCommand(newRegionsListCmd(app))
	cmd.AddCommand(newRegionsCreateCmd(app))
	cmd.AddCommand(newRegionsToggleCmd(app))
	cmd.AddCommand(newRegionsDeleteCmd(app))
	return cmd
}

func newRegionsListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, regionList{Regions: docRegions(s.doc)})
		},
	}
	return cmd
}

func newRegionsCreateCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a region",
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := mutate.CreateRegion(name)
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

	cmd.Flags().StringVar(&name, "name", "", "Region name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newRegionsToggleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <region>",
		Short: "Toggle a region between active and inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			row, ok := s.regionByRef(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("region", args[0]))
			}
			return s.submit(cmd, app, mutate.ToggleRegion(row.Region))
		},
	}
	return cmd
}

func newRegionsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <region>",
		Short: "Delete a region and its pharmacies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return writeErr(cmd, errNeedsYes("region "+args[0]))
			}
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			row, ok := s.regionByRef(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("region", args[0]))
			}
			return s.submit(cmd, app, mutate.DeleteRegion(row.Region.ID))
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the delete")
	return cmd
}
