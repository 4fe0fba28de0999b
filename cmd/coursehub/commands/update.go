package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// update <id> <name>: load the course, rename it and save it back.
func updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Rename a course",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			name := strings.TrimSpace(strings.Join(args[1:], " "))
			if name == "" {
				return fmt.Errorf("course name required")
			}

			v := appCtx.DetailView
			ok, err := v.Load(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "course %d not found\n", id)
				return nil
			}
			v.SetName(name)
			if err := v.Save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated course %d: %s\n", id, name)
			return nil
		},
	}
}
