package client

import "context"

// ContextKey is the context key for the client.
var ContextKey = struct{ string }{"client"}

// FromContext returns the client from the context.
func FromContext(ctx context.Context) *Client {
	if c, ok := ctx.Value(ContextKey).(*Client); ok {
		return c
	}

	return nil
}

// WithContext returns a new context with the client.
func WithContext(ctx context.Context, c *Client) context.Context {
	return context.WithValue(ctx, ContextKey, c)
}
