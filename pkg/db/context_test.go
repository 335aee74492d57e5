package db_test

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/wabridge/hookctl/pkg/db"
	"github.com/wabridge/hookctl/pkg/db/internal/test"
)

func TestBadFromContext(t *testing.T) {
	is := is.New(t)
	is.True(db.FromContext(context.TODO()) == nil)
}

func TestGoodFromContext(t *testing.T) {
	is := is.New(t)
	ctx := context.TODO()
	dbx, err := test.OpenSqlite(ctx, t)
	is.NoErr(err)
	ctx = db.WithContext(ctx, dbx)
	is.Equal(db.FromContext(ctx), dbx)
}

func TestCloseContext(t *testing.T) {
	is := is.New(t)
	is.NoErr(db.CloseContext(context.TODO()))

	dbx, err := test.OpenSqlite(context.TODO(), t)
	is.NoErr(err)
	ctx := db.WithContext(context.TODO(), dbx)
	is.NoErr(db.CloseContext(ctx))
	is.True(dbx.PingContext(ctx) != nil)
}
