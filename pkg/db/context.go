package db

import (
	"context"
	"fmt"
)

type contextKey struct{}

// FromContext returns the bridge database carried by ctx, or nil.
func FromContext(ctx context.Context) *DB {
	d, _ := ctx.Value(contextKey{}).(*DB)
	return d
}

// WithContext attaches the bridge database to ctx.
func WithContext(ctx context.Context, d *DB) context.Context {
	return context.WithValue(ctx, contextKey{}, d)
}

// CloseContext closes the database carried by ctx, if any.
func CloseContext(ctx context.Context) error {
	d := FromContext(ctx)
	if d == nil {
		return nil
	}
	if err := d.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
