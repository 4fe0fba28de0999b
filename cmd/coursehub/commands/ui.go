package commands

import (
	"github.com/spf13/cobra"

	"coursehub/internal/tui"
)

func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Start the interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), appCtx.Wire)
		},
	}
}
