// Package hooks implements the webhook commands of hookctl.
package hooks

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wabridge/hookctl/pkg/client"
	"github.com/wabridge/hookctl/pkg/webhook"
)

// Commands returns the webhook commands.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		listCommand(),
		createCommand(),
		updateCommand(),
		deleteCommand(),
		enableCommand(),
		disableCommand(),
		testCommand(),
		logsCommand(),
		pingCommand(),
	}
}

// lookup returns the webhook with the given ID from the API list.
func lookup(ctx context.Context, c *client.Client, id int64) (webhook.Webhook, error) {
	hooks, err := c.ListWebhooks(ctx)
	if err != nil {
		return webhook.Webhook{}, err
	}

	w, ok := webhook.Find(hooks, id)
	if !ok {
		return webhook.Webhook{}, fmt.Errorf("webhook %d not found", id)
	}
	return w, nil
}
