package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/charmbracelet/log"
)

// trace logs a query once it has finished. It is a no-op unless the
// database was opened in verbose mode.
func trace(l *log.Logger, query string, args []interface{}) func(error) {
	if l == nil {
		return func(error) {}
	}

	start := time.Now()
	return func(err error) {
		kv := []interface{}{"query", query, "args", args, "took", time.Since(start)}
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			kv = append(kv, "err", err)
		}
		l.Debug("query", kv...)
	}
}

// Get runs a query that returns a single row and scans it into dest.
func (d *DB) Get(dest interface{}, query string, args ...interface{}) error {
	done := trace(d.logger, query, args)
	err := d.DB.Get(dest, query, args...)
	done(err)
	return err
}

// Exec runs a statement.
func (d *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	done := trace(d.logger, query, args)
	res, err := d.DB.Exec(query, args...)
	done(err)
	return res, err
}

// GetContext is Get with a context.
func (d *DB) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	done := trace(d.logger, query, args)
	err := d.DB.GetContext(ctx, dest, query, args...)
	done(err)
	return err
}

// SelectContext runs a query and scans all rows into dest.
func (d *DB) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	done := trace(d.logger, query, args)
	err := d.DB.SelectContext(ctx, dest, query, args...)
	done(err)
	return err
}

// ExecContext is Exec with a context.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	done := trace(d.logger, query, args)
	res, err := d.DB.ExecContext(ctx, query, args...)
	done(err)
	return res, err
}

// Get runs a query inside the transaction.
func (t *Tx) Get(dest interface{}, query string, args ...interface{}) error {
	done := trace(t.logger, query, args)
	err := t.Tx.Get(dest, query, args...)
	done(err)
	return err
}

// Exec runs a statement inside the transaction.
func (t *Tx) Exec(query string, args ...interface{}) (sql.Result, error) {
	done := trace(t.logger, query, args)
	res, err := t.Tx.Exec(query, args...)
	done(err)
	return res, err
}

// GetContext is Get with a context.
func (t *Tx) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	done := trace(t.logger, query, args)
	err := t.Tx.GetContext(ctx, dest, query, args...)
	done(err)
	return err
}

// SelectContext runs a query inside the transaction and scans all rows
// into dest.
func (t *Tx) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	done := trace(t.logger, query, args)
	err := t.Tx.SelectContext(ctx, dest, query, args...)
	done(err)
	return err
}

// ExecContext is Exec with a context.
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	done := trace(t.logger, query, args)
	res, err := t.Tx.ExecContext(ctx, query, args...)
	done(err)
	return res, err
}
