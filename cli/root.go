// Package cli wires the command surface: check, rooms and history.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ryokan-check",
		Short:         "Monitor room availability at Japanese ryokan",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCheckCmd())
	root.AddCommand(newRoomsCmd())
	root.AddCommand(newHistoryCmd())
	return root
}

// Execute runs the CLI. The returned error means a non-zero exit.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
