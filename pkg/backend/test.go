package backend

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wabridge/hookctl/pkg/db"
	"github.com/wabridge/hookctl/pkg/db/models"
	"github.com/wabridge/hookctl/pkg/delivery"
	"github.com/wabridge/hookctl/pkg/webhook"
)

const (
	testEvent    = "test"
	testChatJID  = "test@bridge.local"
	testChatName = "hookctl test"
)

// TestWebhook sends a test payload to a webhook and records the attempt.
// The recorded log is returned even when the delivery failed, in which case
// the error wraps ErrDeliveryFailed.
func (b *Backend) TestWebhook(ctx context.Context, id int64) (webhook.Log, error) {
	start := time.Now()
	wh, err := b.Webhook(ctx, id)
	if err != nil {
		return webhook.Log{}, err
	}

	msgID, err := uuid.NewRandom()
	if err != nil {
		return webhook.Log{}, err //nolint:wrapcheck
	}

	payload := map[string]any{
		"event":     testEvent,
		"timestamp": start.UTC().Format(time.RFC3339),
		"webhook": map[string]any{
			"id":   wh.ID,
			"name": wh.Name,
		},
		"message": map[string]any{
			"id":        msgID.String(),
			"chat_jid":  testChatJID,
			"chat_name": testChatName,
			"sender":    "hookctl",
			"text":      "This is a test message sent by the hookctl bridge.",
			"timestamp": start.UTC().Format(time.RFC3339),
		},
		"metadata": map[string]any{
			"processing_time_ms": time.Since(start).Milliseconds(),
		},
	}

	res, err := b.sender.Send(ctx, delivery.Request{
		URL:     wh.URL,
		Secret:  wh.SecretToken,
		Event:   testEvent,
		Payload: payload,
	})
	if err != nil {
		return webhook.Log{}, fmt.Errorf("send test delivery: %w", err)
	}

	m := models.WebhookLog{
		WebhookID:    wh.ID,
		EventID:      res.ID.String(),
		AttemptCount: 1,
		TriggerType:  testEvent,
		TriggerValue: "manual",
		MessageID:    msgID.String(),
		ChatJID:      testChatJID,
		Payload:      string(res.Body),
		CreatedAt:    start.UTC(),
	}
	if res.Status != 0 {
		m.ResponseStatus = sql.NullInt64{Int64: int64(res.Status), Valid: true}
		m.ResponseBody = sql.NullString{String: res.Response, Valid: true}
	} else if res.Err != nil {
		m.ResponseBody = sql.NullString{String: res.Err.Error(), Valid: true}
	}
	if res.OK() {
		m.DeliveredAt = sql.NullTime{Time: start.Add(res.Duration).UTC(), Valid: true}
	}

	m.ID, err = b.store.CreateWebhookLog(ctx, b.db, m)
	if err != nil {
		return webhook.Log{}, db.WrapError(err)
	}

	l := toLog(m)
	b.logger.Info("test delivery", "id", wh.ID, "status", res.Status, "duration", res.Duration, "err", res.Err)

	switch {
	case res.Err != nil:
		return l, fmt.Errorf("%w: %v", ErrDeliveryFailed, res.Err)
	case !res.OK():
		return l, fmt.Errorf("%w: target responded with status %d", ErrDeliveryFailed, res.Status)
	}

	return l, nil
}
