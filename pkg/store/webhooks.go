package store

import (
	"context"

	"github.com/wabridge/hookctl/pkg/db"
	"github.com/wabridge/hookctl/pkg/db/models"
)

// WebhookStore is an interface for managing webhooks.
type WebhookStore interface {
	// GetWebhooks returns all webhooks ordered by ID.
	GetWebhooks(ctx context.Context, h db.Handler) ([]models.Webhook, error)
	// GetWebhookByID returns a webhook by its ID.
	GetWebhookByID(ctx context.Context, h db.Handler, id int64) (models.Webhook, error)
	// CreateWebhook creates a webhook and returns its ID.
	CreateWebhook(ctx context.Context, h db.Handler, name string, url string, secret string, enabled bool) (int64, error)
	// UpdateWebhookByID updates a webhook by its ID.
	UpdateWebhookByID(ctx context.Context, h db.Handler, id int64, name string, url string, secret string, enabled bool) error
	// SetWebhookEnabledByID enables or disables a webhook.
	SetWebhookEnabledByID(ctx context.Context, h db.Handler, id int64, enabled bool) error
	// DeleteWebhookByID deletes a webhook by its ID.
	DeleteWebhookByID(ctx context.Context, h db.Handler, id int64) error

	// GetWebhookTriggersByWebhookID returns the triggers of a webhook.
	GetWebhookTriggersByWebhookID(ctx context.Context, h db.Handler, webhookID int64) ([]models.WebhookTrigger, error)
	// CreateWebhookTriggers creates triggers for a webhook.
	CreateWebhookTriggers(ctx context.Context, h db.Handler, webhookID int64, triggers []models.WebhookTrigger) error
	// DeleteWebhookTriggersByWebhookID deletes all triggers of a webhook.
	DeleteWebhookTriggersByWebhookID(ctx context.Context, h db.Handler, webhookID int64) error

	// GetWebhookLogsByWebhookID returns the delivery logs of a webhook.
	GetWebhookLogsByWebhookID(ctx context.Context, h db.Handler, webhookID int64) ([]models.WebhookLog, error)
	// CreateWebhookLog records a delivery attempt and returns its ID.
	CreateWebhookLog(ctx context.Context, h db.Handler, log models.WebhookLog) (int64, error)
	// DeleteWebhookLogsByWebhookID deletes all delivery logs of a webhook.
	DeleteWebhookLogsByWebhookID(ctx context.Context, h db.Handler, webhookID int64) error
}
