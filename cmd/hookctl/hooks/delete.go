package hooks

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wabridge/hookctl/cmd"
	"github.com/wabridge/hookctl/pkg/client"
	"github.com/wabridge/hookctl/pkg/ui"
)

func deleteCommand() *cobra.Command {
	var yes bool
	c := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a webhook and its logs",
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			id, err := cmd.ParseID(args[0])
			if err != nil {
				return err
			}

			cl := client.FromContext(ctx)
			if !yes {
				w, err := lookup(ctx, cl, id)
				if err != nil {
					return err
				}

				fmt.Fprintf(c.OutOrStdout(), "%s [y/N] ", ui.DeletePrompt(w.Label()))
				answer, _ := bufio.NewReader(c.InOrStdin()).ReadString('\n')
				fmt.Fprintln(c.OutOrStdout())
				switch strings.ToLower(strings.TrimSpace(answer)) {
				case "y", "yes":
				default:
					fmt.Fprintln(c.OutOrStdout(), "Aborted")
					return nil
				}
			}

			if err := cl.DeleteWebhook(ctx, id); err != nil {
				return fmt.Errorf("failed to delete webhook: %w", err)
			}

			fmt.Fprintln(c.OutOrStdout(), "Webhook deleted successfully")
			return nil
		},
	}

	c.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return c
}
