package database

import (
	"context"

	"github.com/wabridge/hookctl/pkg/db"
	"github.com/wabridge/hookctl/pkg/db/models"
	"github.com/wabridge/hookctl/pkg/store"
)

type webhookStore struct{}

var _ store.WebhookStore = (*webhookStore)(nil)

// GetWebhooks implements store.WebhookStore.
func (*webhookStore) GetWebhooks(ctx context.Context, h db.Handler) ([]models.Webhook, error) {
	var webhooks []models.Webhook
	query := h.Rebind("SELECT * FROM webhooks ORDER BY id ASC;")
	err := h.SelectContext(ctx, &webhooks, query)
	return webhooks, db.WrapError(err)
}

// GetWebhookByID implements store.WebhookStore.
func (*webhookStore) GetWebhookByID(ctx context.Context, h db.Handler, id int64) (models.Webhook, error) {
	var webhook models.Webhook
	query := h.Rebind("SELECT * FROM webhooks WHERE id = ?;")
	err := h.GetContext(ctx, &webhook, query, id)
	return webhook, db.WrapError(err)
}

// CreateWebhook implements store.WebhookStore.
func (*webhookStore) CreateWebhook(ctx context.Context, h db.Handler, name string, url string, secret string, enabled bool) (int64, error) {
	var id int64
	query := h.Rebind(`INSERT INTO webhooks (name, url, secret_token, enabled, updated_at)
			VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP) RETURNING id;`)
	err := h.GetContext(ctx, &id, query, name, url, secret, enabled)
	return id, db.WrapError(err)
}

// UpdateWebhookByID implements store.WebhookStore.
func (*webhookStore) UpdateWebhookByID(ctx context.Context, h db.Handler, id int64, name string, url string, secret string, enabled bool) error {
	query := h.Rebind(`UPDATE webhooks SET name = ?, url = ?, secret_token = ?, enabled = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?;`)
	_, err := h.ExecContext(ctx, query, name, url, secret, enabled, id)
	return db.WrapError(err)
}

// SetWebhookEnabledByID implements store.WebhookStore.
func (*webhookStore) SetWebhookEnabledByID(ctx context.Context, h db.Handler, id int64, enabled bool) error {
	query := h.Rebind("UPDATE webhooks SET enabled = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?;")
	_, err := h.ExecContext(ctx, query, enabled, id)
	return db.WrapError(err)
}

// DeleteWebhookByID implements store.WebhookStore.
func (*webhookStore) DeleteWebhookByID(ctx context.Context, h db.Handler, id int64) error {
	query := h.Rebind("DELETE FROM webhooks WHERE id = ?;")
	_, err := h.ExecContext(ctx, query, id)
	return db.WrapError(err)
}

// GetWebhookTriggersByWebhookID implements store.WebhookStore.
func (*webhookStore) GetWebhookTriggersByWebhookID(ctx context.Context, h db.Handler, webhookID int64) ([]models.WebhookTrigger, error) {
	var triggers []models.WebhookTrigger
	query := h.Rebind("SELECT * FROM webhook_triggers WHERE webhook_id = ? ORDER BY id ASC;")
	err := h.SelectContext(ctx, &triggers, query, webhookID)
	return triggers, db.WrapError(err)
}

// CreateWebhookTriggers implements store.WebhookStore.
func (*webhookStore) CreateWebhookTriggers(ctx context.Context, h db.Handler, webhookID int64, triggers []models.WebhookTrigger) error {
	query := h.Rebind(`INSERT INTO webhook_triggers (webhook_id, trigger_type, trigger_value, match_type, enabled)
			VALUES (?, ?, ?, ?, ?);`)
	for _, t := range triggers {
		if _, err := h.ExecContext(ctx, query, webhookID, t.TriggerType, t.TriggerValue, t.MatchType, t.Enabled); err != nil {
			return db.WrapError(err)
		}
	}

	return nil
}

// DeleteWebhookTriggersByWebhookID implements store.WebhookStore.
func (*webhookStore) DeleteWebhookTriggersByWebhookID(ctx context.Context, h db.Handler, webhookID int64) error {
	query := h.Rebind("DELETE FROM webhook_triggers WHERE webhook_id = ?;")
	_, err := h.ExecContext(ctx, query, webhookID)
	return db.WrapError(err)
}

// GetWebhookLogsByWebhookID implements store.WebhookStore.
func (*webhookStore) GetWebhookLogsByWebhookID(ctx context.Context, h db.Handler, webhookID int64) ([]models.WebhookLog, error) {
	var logs []models.WebhookLog
	query := h.Rebind("SELECT * FROM webhook_logs WHERE webhook_id = ? ORDER BY created_at DESC, id DESC;")
	err := h.SelectContext(ctx, &logs, query, webhookID)
	return logs, db.WrapError(err)
}

// CreateWebhookLog implements store.WebhookStore.
func (*webhookStore) CreateWebhookLog(ctx context.Context, h db.Handler, l models.WebhookLog) (int64, error) {
	var id int64
	query := h.Rebind(`INSERT INTO webhook_logs (webhook_id, event_id, attempt_count, trigger_type, trigger_value,
			message_id, chat_jid, payload, response_status, response_body, delivered_at, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id;`)
	err := h.GetContext(ctx, &id, query, l.WebhookID, l.EventID, l.AttemptCount, l.TriggerType, l.TriggerValue,
		l.MessageID, l.ChatJID, l.Payload, l.ResponseStatus, l.ResponseBody, l.DeliveredAt, l.CreatedAt)
	return id, db.WrapError(err)
}

// DeleteWebhookLogsByWebhookID implements store.WebhookStore.
func (*webhookStore) DeleteWebhookLogsByWebhookID(ctx context.Context, h db.Handler, webhookID int64) error {
	query := h.Rebind("DELETE FROM webhook_logs WHERE webhook_id = ?;")
	_, err := h.ExecContext(ctx, query, webhookID)
	return db.WrapError(err)
}
