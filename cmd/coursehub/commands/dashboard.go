package commands

import (
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the top courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := appCtx.DashboardView
			if err := v.Init(cmd.Context()); err != nil {
				return err
			}
			return printCourses(cmd, v.Courses())
		},
	}
	addQueryFlag(cmd)
	return cmd
}
