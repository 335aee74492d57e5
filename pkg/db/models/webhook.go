// Package models holds the database models of the development bridge.
package models

import (
	"database/sql"
	"time"
)

// Webhook is a registered webhook.
type Webhook struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	URL         string    `db:"url"`
	SecretToken string    `db:"secret_token"`
	Enabled     bool      `db:"enabled"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// WebhookTrigger is a trigger of a webhook.
type WebhookTrigger struct {
	ID           int64  `db:"id"`
	WebhookID    int64  `db:"webhook_id"`
	TriggerType  string `db:"trigger_type"`
	TriggerValue string `db:"trigger_value"`
	MatchType    string `db:"match_type"`
	Enabled      bool   `db:"enabled"`
}

// WebhookLog is a recorded delivery attempt.
type WebhookLog struct {
	ID             int64          `db:"id"`
	WebhookID      int64          `db:"webhook_id"`
	EventID        string         `db:"event_id"`
	AttemptCount   int            `db:"attempt_count"`
	TriggerType    string         `db:"trigger_type"`
	TriggerValue   string         `db:"trigger_value"`
	MessageID      string         `db:"message_id"`
	ChatJID        string         `db:"chat_jid"`
	Payload        string         `db:"payload"`
	ResponseStatus sql.NullInt64  `db:"response_status"`
	ResponseBody   sql.NullString `db:"response_body"`
	DeliveredAt    sql.NullTime   `db:"delivered_at"`
	CreatedAt      time.Time      `db:"created_at"`
}
