package db

import (
	"context"
	"database/sql"
)

// Handler is the query surface shared by *DB and *Tx.
type Handler interface {
	DriverName() string
	Rebind(string) string

	Get(interface{}, string, ...interface{}) error
	Exec(string, ...interface{}) (sql.Result, error)

	GetContext(context.Context, interface{}, string, ...interface{}) error
	SelectContext(context.Context, interface{}, string, ...interface{}) error
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
}

var (
	_ Handler = (*DB)(nil)
	_ Handler = (*Tx)(nil)
)
