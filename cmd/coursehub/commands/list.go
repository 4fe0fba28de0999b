package commands

import (
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := appCtx.CoursesView
			if err := v.Init(cmd.Context()); err != nil {
				return err
			}
			return printCourses(cmd, v.Courses())
		},
	}
	addQueryFlag(cmd)
	return cmd
}
