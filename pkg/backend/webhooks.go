package backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"
	"github.com/wabridge/hookctl/pkg/db"
	"github.com/wabridge/hookctl/pkg/db/models"
	"github.com/wabridge/hookctl/pkg/webhook"
)

// Webhooks returns all webhooks with their triggers.
func (b *Backend) Webhooks(ctx context.Context) ([]webhook.Webhook, error) {
	var hooks []webhook.Webhook
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		ms, err := b.store.GetWebhooks(ctx, tx)
		if err != nil {
			return err
		}

		hooks = make([]webhook.Webhook, 0, len(ms))
		for _, m := range ms {
			triggers, err := b.store.GetWebhookTriggersByWebhookID(ctx, tx, m.ID)
			if err != nil {
				return err
			}
			hooks = append(hooks, toWebhook(m, triggers))
		}

		return nil
	}); err != nil {
		return nil, db.WrapError(err)
	}

	return hooks, nil
}

// Webhook returns a webhook by its ID.
func (b *Backend) Webhook(ctx context.Context, id int64) (webhook.Webhook, error) {
	var wh webhook.Webhook
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		wh, err = b.webhook(ctx, tx, id)
		return err
	}); err != nil {
		return webhook.Webhook{}, err
	}

	return wh, nil
}

func (b *Backend) webhook(ctx context.Context, h db.Handler, id int64) (webhook.Webhook, error) {
	m, err := b.store.GetWebhookByID(ctx, h, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return webhook.Webhook{}, ErrWebhookNotFound
		}
		return webhook.Webhook{}, err
	}

	triggers, err := b.store.GetWebhookTriggersByWebhookID(ctx, h, id)
	if err != nil {
		return webhook.Webhook{}, err
	}

	return toWebhook(m, triggers), nil
}

// CreateWebhook validates and stores a new webhook.
func (b *Backend) CreateWebhook(ctx context.Context, w webhook.Webhook) (webhook.Webhook, error) {
	w, err := validateWebhook(w)
	if err != nil {
		return webhook.Webhook{}, err
	}

	var created webhook.Webhook
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		id, err := b.store.CreateWebhook(ctx, tx, w.Name, w.URL, w.SecretToken, w.Enabled)
		if err != nil {
			return err
		}

		if err := b.store.CreateWebhookTriggers(ctx, tx, id, toTriggerModels(w.Triggers)); err != nil {
			return err
		}

		created, err = b.webhook(ctx, tx, id)
		return err
	}); err != nil {
		return webhook.Webhook{}, db.WrapError(err)
	}

	b.logger.Info("webhook created", "id", created.ID, "name", created.Name)
	return created, nil
}

// UpdateWebhook replaces a webhook and its triggers.
func (b *Backend) UpdateWebhook(ctx context.Context, id int64, w webhook.Webhook) (webhook.Webhook, error) {
	w, err := validateWebhook(w)
	if err != nil {
		return webhook.Webhook{}, err
	}

	var updated webhook.Webhook
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if _, err := b.webhook(ctx, tx, id); err != nil {
			return err
		}

		if err := b.store.UpdateWebhookByID(ctx, tx, id, w.Name, w.URL, w.SecretToken, w.Enabled); err != nil {
			return err
		}

		if err := b.store.DeleteWebhookTriggersByWebhookID(ctx, tx, id); err != nil {
			return err
		}

		if err := b.store.CreateWebhookTriggers(ctx, tx, id, toTriggerModels(w.Triggers)); err != nil {
			return err
		}

		updated, err = b.webhook(ctx, tx, id)
		return err
	}); err != nil {
		return webhook.Webhook{}, db.WrapError(err)
	}

	b.logger.Info("webhook updated", "id", id)
	return updated, nil
}

// SetWebhookEnabled enables or disables a webhook.
func (b *Backend) SetWebhookEnabled(ctx context.Context, id int64, enabled bool) (webhook.Webhook, error) {
	var wh webhook.Webhook
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if _, err := b.webhook(ctx, tx, id); err != nil {
			return err
		}

		if err := b.store.SetWebhookEnabledByID(ctx, tx, id, enabled); err != nil {
			return err
		}

		var err error
		wh, err = b.webhook(ctx, tx, id)
		return err
	}); err != nil {
		return webhook.Webhook{}, db.WrapError(err)
	}

	b.logger.Info("webhook toggled", "id", id, "enabled", enabled)
	return wh, nil
}

// DeleteWebhook deletes a webhook together with its triggers and delivery
// logs.
func (b *Backend) DeleteWebhook(ctx context.Context, id int64) error {
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if _, err := b.webhook(ctx, tx, id); err != nil {
			return err
		}

		if err := b.store.DeleteWebhookLogsByWebhookID(ctx, tx, id); err != nil {
			return err
		}

		if err := b.store.DeleteWebhookTriggersByWebhookID(ctx, tx, id); err != nil {
			return err
		}

		return b.store.DeleteWebhookByID(ctx, tx, id)
	}); err != nil {
		return db.WrapError(err)
	}

	b.logger.Info("webhook deleted", "id", id)
	return nil
}

// WebhookLogs returns the delivery logs of a webhook, newest first.
func (b *Backend) WebhookLogs(ctx context.Context, id int64) ([]webhook.Log, error) {
	var logs []webhook.Log
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if _, err := b.webhook(ctx, tx, id); err != nil {
			return err
		}

		ms, err := b.store.GetWebhookLogsByWebhookID(ctx, tx, id)
		if err != nil {
			return err
		}

		logs = lo.Map(ms, func(m models.WebhookLog, _ int) webhook.Log {
			return toLog(m)
		})
		return nil
	}); err != nil {
		return nil, db.WrapError(err)
	}

	return logs, nil
}

func validateWebhook(w webhook.Webhook) (webhook.Webhook, error) {
	w.Triggers = lo.Map(w.Triggers, func(t webhook.Trigger, _ int) webhook.Trigger {
		return t.Normalize()
	})
	if err := w.Validate(); err != nil {
		return w, ValidationError{err}
	}

	triggerTypes := lo.ToAnySlice(webhook.TriggerTypes())
	matchTypes := lo.ToAnySlice(webhook.MatchTypes())
	for i := range w.Triggers {
		t := &w.Triggers[i]
		if err := validation.ValidateStruct(t,
			validation.Field(&t.Type, validation.Required, validation.In(triggerTypes...)),
			validation.Field(&t.Match, validation.In(matchTypes...)),
			validation.Field(&t.Value, validation.When(t.Type != webhook.TriggerAll, validation.Required)),
		); err != nil {
			return w, ValidationError{fmt.Errorf("trigger %d: %w", i+1, err)}
		}
	}

	return w, nil
}

func toWebhook(m models.Webhook, triggers []models.WebhookTrigger) webhook.Webhook {
	return webhook.Webhook{
		ID:          m.ID,
		Name:        m.Name,
		URL:         m.URL,
		SecretToken: m.SecretToken,
		Enabled:     m.Enabled,
		Triggers: lo.Map(triggers, func(t models.WebhookTrigger, _ int) webhook.Trigger {
			return webhook.Trigger{
				Type:    webhook.TriggerType(t.TriggerType),
				Value:   t.TriggerValue,
				Match:   webhook.MatchType(t.MatchType),
				Enabled: t.Enabled,
			}
		}),
		CreatedAt: formatTime(m.CreatedAt),
	}
}

func toTriggerModels(triggers []webhook.Trigger) []models.WebhookTrigger {
	return lo.Map(triggers, func(t webhook.Trigger, _ int) models.WebhookTrigger {
		return models.WebhookTrigger{
			TriggerType:  string(t.Type),
			TriggerValue: t.Value,
			MatchType:    string(t.Match),
			Enabled:      t.Enabled,
		}
	})
}

func toLog(m models.WebhookLog) webhook.Log {
	l := webhook.Log{
		ID:           m.ID,
		WebhookID:    m.WebhookID,
		CreatedAt:    formatTime(m.CreatedAt),
		AttemptCount: m.AttemptCount,
		TriggerType:  m.TriggerType,
		TriggerValue: m.TriggerValue,
		MessageID:    m.MessageID,
		ChatJID:      m.ChatJID,
		Payload:      webhook.Text(m.Payload),
	}
	if m.ResponseStatus.Valid {
		l.ResponseStatus = int(m.ResponseStatus.Int64)
	}
	if m.ResponseBody.Valid {
		l.ResponseBody = webhook.Text(m.ResponseBody.String)
	}
	if m.DeliveredAt.Valid {
		l.DeliveredAt = formatTime(m.DeliveredAt.Time)
	}
	return l
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
