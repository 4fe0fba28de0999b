package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Find courses whose name contains term",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := appCtx.Courses.SearchCourses(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printCourses(cmd, courses)
		},
	}
	addQueryFlag(cmd)
	return cmd
}
