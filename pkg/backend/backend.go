// Package backend implements the webhook operations of the development
// bridge on top of the store.
package backend

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/wabridge/hookctl/pkg/config"
	"github.com/wabridge/hookctl/pkg/db"
	"github.com/wabridge/hookctl/pkg/delivery"
	"github.com/wabridge/hookctl/pkg/store"
)

// Backend is the bridge backend that manages webhooks, their triggers and
// their delivery logs.
type Backend struct {
	ctx    context.Context
	cfg    *config.Config
	db     *db.DB
	store  store.Store
	logger *log.Logger
	sender *delivery.Sender
}

// New returns a new bridge backend.
func New(ctx context.Context, cfg *config.Config, db *db.DB, st store.Store) *Backend {
	logger := log.FromContext(ctx).WithPrefix("backend")
	return &Backend{
		ctx:    ctx,
		cfg:    cfg,
		db:     db,
		store:  st,
		logger: logger,
		sender: delivery.NewSender(cfg.Bridge.BlockPrivateTargets, cfg.API.Timeout),
	}
}
