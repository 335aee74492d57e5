package hooks

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/wabridge/hookctl/cmd"
	"github.com/wabridge/hookctl/pkg/client"
	"github.com/wabridge/hookctl/pkg/webhook"
)

func logsCommand() *cobra.Command {
	var ojson bool
	c := &cobra.Command{
		Use:   "logs ID",
		Short: "Show the delivery logs of a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			id, err := cmd.ParseID(args[0])
			if err != nil {
				return err
			}

			logs, err := client.FromContext(ctx).ListLogs(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get webhook logs: %w", err)
			}
			webhook.SortLogs(logs)

			if ojson {
				return cmd.WriteJSON(c.OutOrStdout(), logs)
			}

			fmt.Fprintln(c.OutOrStdout(), webhook.CountLabel(len(logs)))
			if len(logs) == 0 {
				return nil
			}

			t := table.New().Headers("ID", "Status", "Attempt", "Trigger", "Response", "Message", "Created")
			for _, l := range logs {
				t = t.Row(
					strconv.FormatInt(l.ID, 10),
					l.Status().String(),
					strconv.Itoa(l.Attempt()),
					l.Trigger(),
					l.ResponseSummary(),
					webhook.Preview(l.Message(), 40),
					relativeTime(l.CreatedAt),
				)
			}
			fmt.Fprintln(c.OutOrStdout(), t)
			return nil
		},
	}

	c.Flags().BoolVar(&ojson, "json", false, "output as JSON")

	return c
}
