package hooks

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wabridge/hookctl/cmd"
	"github.com/wabridge/hookctl/pkg/client"
)

func enableCommand() *cobra.Command {
	return toggleCommand("enable", "Enable a webhook", true)
}

func disableCommand() *cobra.Command {
	return toggleCommand("disable", "Disable a webhook", false)
}

func toggleCommand(use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			id, err := cmd.ParseID(args[0])
			if err != nil {
				return err
			}

			if err := client.FromContext(ctx).SetEnabled(ctx, id, enabled); err != nil {
				return fmt.Errorf("failed to toggle webhook: %w", err)
			}

			fmt.Fprintf(c.OutOrStdout(), "Webhook %sd successfully\n", use)
			return nil
		},
	}
}
