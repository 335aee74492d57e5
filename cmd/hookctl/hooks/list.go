package hooks

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
	"github.com/wabridge/hookctl/cmd"
	"github.com/wabridge/hookctl/pkg/client"
	"github.com/wabridge/hookctl/pkg/webhook"
)

func listCommand() *cobra.Command {
	var name string
	var ojson bool
	c := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List webhooks",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			hooks, err := client.FromContext(ctx).ListWebhooks(ctx)
			if err != nil {
				return fmt.Errorf("failed to load webhooks: %w", err)
			}

			if name != "" {
				g, err := glob.Compile(name)
				if err != nil {
					return fmt.Errorf("invalid name pattern: %w", err)
				}
				filtered := make([]webhook.Webhook, 0, len(hooks))
				for _, h := range hooks {
					if g.Match(h.Name) {
						filtered = append(filtered, h)
					}
				}
				hooks = filtered
			}

			if ojson {
				return cmd.WriteJSON(c.OutOrStdout(), hooks)
			}

			if len(hooks) == 0 {
				fmt.Fprintln(c.OutOrStdout(), "No webhooks configured")
				return nil
			}

			t := table.New().Headers("ID", "Name", "URL", "Triggers", "Status", "Created")
			for _, h := range hooks {
				t = t.Row(
					strconv.FormatInt(h.ID, 10),
					h.Label(),
					h.URL,
					webhook.FormatTriggers(h.Triggers),
					h.StatusText(),
					relativeTime(h.CreatedAt),
				)
			}
			fmt.Fprintln(c.OutOrStdout(), t)
			return nil
		},
	}

	c.Flags().StringVarP(&name, "name", "n", "", "only list webhooks whose name matches the glob `PATTERN`")
	c.Flags().BoolVar(&ojson, "json", false, "output as JSON")

	return c
}

func relativeTime(s string) string {
	t, ok := webhook.ParseTime(s)
	if !ok {
		if s == "" {
			return "-"
		}
		return s
	}
	return humanize.Time(t)
}
