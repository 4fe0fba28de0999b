package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a course",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("course name required")
			}
			c, ok, err := appCtx.CoursesView.Add(cmd.Context(), name)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "course not added")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added course %d: %s\n", c.ID, c.Name)
			return nil
		},
	}
}
