package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/wabridge/hookctl/pkg/client"
	"github.com/wabridge/hookctl/pkg/webhook"
)

// Results of API calls. Each carries what the dispatcher needs to reconcile
// the state once the call returns.
type (
	probeMsg struct {
		err error
	}

	webhooksMsg struct {
		webhooks []webhook.Webhook
		err      error
	}

	savedMsg struct {
		update bool
		err    error
	}

	toggledMsg struct {
		enabled bool
		err     error
	}

	deletedMsg struct {
		id  int64
		err error
	}

	testedMsg struct {
		err error
	}

	logsMsg struct {
		id   int64
		logs []webhook.Log
		err  error
	}
)

func probeCmd(ctx context.Context, c *client.Client) tea.Cmd {
	return func() tea.Msg {
		return probeMsg{err: c.Probe(ctx)}
	}
}

func loadWebhooksCmd(ctx context.Context, c *client.Client) tea.Cmd {
	return func() tea.Msg {
		hooks, err := c.ListWebhooks(ctx)
		return webhooksMsg{webhooks: hooks, err: err}
	}
}

func saveWebhookCmd(ctx context.Context, c *client.Client, id int64, w webhook.Webhook) tea.Cmd {
	return func() tea.Msg {
		var err error
		if id != 0 {
			_, err = c.UpdateWebhook(ctx, id, w)
		} else {
			_, err = c.CreateWebhook(ctx, w)
		}
		return savedMsg{update: id != 0, err: err}
	}
}

func toggleWebhookCmd(ctx context.Context, c *client.Client, id int64, enabled bool) tea.Cmd {
	return func() tea.Msg {
		return toggledMsg{enabled: enabled, err: c.SetEnabled(ctx, id, enabled)}
	}
}

func deleteWebhookCmd(ctx context.Context, c *client.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{id: id, err: c.DeleteWebhook(ctx, id)}
	}
}

func testWebhookCmd(ctx context.Context, c *client.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		return testedMsg{err: c.TestWebhook(ctx, id)}
	}
}

func loadLogsCmd(ctx context.Context, c *client.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		logs, err := c.ListLogs(ctx, id)
		return logsMsg{id: id, logs: logs, err: err}
	}
}
