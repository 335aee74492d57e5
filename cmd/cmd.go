package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/wabridge/hookctl/pkg/backend"
	"github.com/wabridge/hookctl/pkg/client"
	"github.com/wabridge/hookctl/pkg/config"
	"github.com/wabridge/hookctl/pkg/db"
	"github.com/wabridge/hookctl/pkg/store"
	"github.com/wabridge/hookctl/pkg/store/database"
)

// ErrInvalidID is returned when a webhook ID argument is not a positive
// integer.
var ErrInvalidID = errors.New("invalid webhook ID")

// InitClientContext creates the API client and stores it in the command
// context.
func InitClientContext(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return config.ErrNilConfig
	}

	cmd.SetContext(client.WithContext(ctx, client.New(ctx, cfg)))
	return nil
}

// InitBackendContext opens the bridge database and stores the database,
// store and backend in the command context.
func InitBackendContext(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return config.ErrNilConfig
	}
	if _, err := os.Stat(cfg.DataPath); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(cfg.DataPath, os.ModePerm); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	dbx, err := db.Open(ctx, cfg.Bridge.DB.Driver, cfg.Bridge.DB.DataSource)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	ctx = db.WithContext(ctx, dbx)
	dbstore := database.New(ctx, dbx)
	ctx = store.WithContext(ctx, dbstore)
	be := backend.New(ctx, cfg, dbx, dbstore)
	ctx = backend.WithContext(ctx, be)

	cmd.SetContext(ctx)

	return nil
}

// CloseDBContext closes the database context.
func CloseDBContext(cmd *cobra.Command, _ []string) error {
	return db.CloseContext(cmd.Context())
}

// ParseID parses a webhook ID argument.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	bts, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	bts = append(bts, '\n')
	_, err = w.Write(bts)
	return err
}
