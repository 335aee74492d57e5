package migrate

import (
	"context"

	"github.com/wabridge/hookctl/pkg/db"
)

const (
	webhookLogsName    = "webhook logs"
	webhookLogsVersion = 2
)

var webhookLogs = Migration{
	Name:    webhookLogsName,
	Version: webhookLogsVersion,
	Migrate: func(ctx context.Context, h db.Handler) error {
		return migrateUp(ctx, h, webhookLogsVersion, webhookLogsName)
	},
	Rollback: func(ctx context.Context, h db.Handler) error {
		return migrateDown(ctx, h, webhookLogsVersion, webhookLogsName)
	},
}
