package hooks

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wabridge/hookctl/pkg/client"
)

func pingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the bridge API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			cl := client.FromContext(ctx)
			if err := cl.Probe(ctx); err != nil {
				return fmt.Errorf("cannot connect to bridge API at %s: %w", cl.BaseURL(), err)
			}

			fmt.Fprintf(c.OutOrStdout(), "Bridge API at %s is reachable\n", cl.BaseURL())
			return nil
		},
	}
}
