package migrate

import (
	"context"

	"github.com/wabridge/hookctl/pkg/db"
)

const (
	createTablesName    = "create tables"
	createTablesVersion = 1
)

var createTables = Migration{
	Name:    createTablesName,
	Version: createTablesVersion,
	Migrate: func(ctx context.Context, h db.Handler) error {
		return migrateUp(ctx, h, createTablesVersion, createTablesName)
	},
	Rollback: func(ctx context.Context, h db.Handler) error {
		return migrateDown(ctx, h, createTablesVersion, createTablesName)
	},
}
