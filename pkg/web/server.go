// Package web serves the HTTP API of the development bridge.
package web

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// APIPrefix is the path under which the webhook API is served.
const APIPrefix = "/api"

// NewRouter returns a new HTTP router.
func NewRouter(ctx context.Context) http.Handler {
	logger := log.FromContext(ctx).WithPrefix("http")
	router := mux.NewRouter()

	// Health routes
	HealthController(ctx, router)

	// Webhook API routes
	api := router.PathPrefix(APIPrefix).Subrouter()
	api.Use(metricsMiddleware)
	WebhookController(ctx, api)

	for _, r := range []*mux.Router{router, api} {
		r.NotFoundHandler = http.HandlerFunc(renderNotFound)
		r.MethodNotAllowedHandler = http.HandlerFunc(renderMethodNotAllowed)
	}

	// Context handler
	// Adds context to the request
	h := NewLoggingMiddleware(router, logger)
	h = NewContextHandler(ctx)(h)
	h = handlers.CompressHandler(h)
	h = handlers.RecoveryHandler()(h)

	return h
}
