package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"coursehub/internal/domain"
)

func getCmd() *cobra.Command {
	var no404 bool
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var (
				c  domain.Course
				ok bool
			)
			// --no404 uses the id filter, where a missing course is not a failure.
			if no404 {
				c, ok, err = appCtx.Courses.FindCourse(cmd.Context(), id)
			} else {
				c, ok, err = appCtx.Courses.GetCourse(cmd.Context(), id)
			}
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "course %d not found\n", id)
				return nil
			}
			return printCourses(cmd, []domain.Course{c})
		},
	}
	cmd.Flags().BoolVar(&no404, "no404", false, "look the id up with a filter query instead of the item path")
	addQueryFlag(cmd)
	return cmd
}
