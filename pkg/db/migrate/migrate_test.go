package migrate

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/wabridge/hookctl/pkg/db"
	"github.com/wabridge/hookctl/pkg/db/internal/test"
)

func TestMigrate(t *testing.T) {
	is := is.New(t)
	ctx := context.TODO()
	dbx, err := test.OpenSqlite(ctx, t)
	is.NoErr(err)
	is.NoErr(Migrate(ctx, dbx))

	// Running again is a no-op.
	is.NoErr(Migrate(ctx, dbx))

	var version int64
	is.NoErr(dbx.Get(&version, "SELECT MAX(version) FROM migrations"))
	is.Equal(version, int64(len(migrations)))

	is.NoErr(dbx.Transaction(func(tx *db.Tx) error {
		is.True(hasTable(tx, "webhooks"))
		is.True(hasTable(tx, "webhook_triggers"))
		is.True(hasTable(tx, "webhook_logs"))
		return nil
	}))
}

func TestRollback(t *testing.T) {
	is := is.New(t)
	ctx := context.TODO()
	dbx, err := test.OpenSqlite(ctx, t)
	is.NoErr(err)
	is.NoErr(Migrate(ctx, dbx))
	is.NoErr(Rollback(ctx, dbx))

	is.NoErr(dbx.Transaction(func(tx *db.Tx) error {
		is.True(!hasTable(tx, "webhook_logs"))
		is.True(hasTable(tx, "webhooks"))
		return nil
	}))
}

func TestToSnakeCase(t *testing.T) {
	is := is.New(t)
	is.Equal(toSnakeCase("create tables"), "create_tables")
	is.Equal(toSnakeCase("webhook logs"), "webhook_logs")
	is.Equal(toSnakeCase("WebhookLogs"), "webhook_logs")
}
