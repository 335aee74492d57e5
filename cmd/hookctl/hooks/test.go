package hooks

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wabridge/hookctl/cmd"
	"github.com/wabridge/hookctl/pkg/client"
)

func testCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test ID",
		Short: "Send a test delivery",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			id, err := cmd.ParseID(args[0])
			if err != nil {
				return err
			}

			if err := client.FromContext(ctx).TestWebhook(ctx, id); err != nil {
				return fmt.Errorf("webhook test failed: %w", err)
			}

			fmt.Fprintln(c.OutOrStdout(), "Webhook test successful")
			return nil
		},
	}
}
