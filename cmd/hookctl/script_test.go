package main

import (
	"context"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/rogpeppe/go-internal/testscript"
	"github.com/wabridge/hookctl/pkg/backend"
	"github.com/wabridge/hookctl/pkg/config"
	"github.com/wabridge/hookctl/pkg/db"
	"github.com/wabridge/hookctl/pkg/db/migrate"
	"github.com/wabridge/hookctl/pkg/store/database"
	"github.com/wabridge/hookctl/pkg/web"
)

var update = flag.Bool("update", false, "update script files")

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"hookctl": run,
	}))
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:           "./testdata/",
		UpdateScripts: *update,
		Setup: func(e *testscript.Env) error {
			data := filepath.Join(e.WorkDir, ".hookctl")
			cfg := config.DefaultConfig()
			cfg.DataPath = data
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := os.MkdirAll(data, os.ModePerm); err != nil {
				return err
			}

			ctx := config.WithContext(context.Background(), cfg)
			ctx = log.WithContext(ctx, log.New(io.Discard))
			dbx, err := db.Open(ctx, cfg.Bridge.DB.Driver, cfg.Bridge.DB.DataSource)
			if err != nil {
				return err
			}
			if err := migrate.Migrate(ctx, dbx); err != nil {
				return err
			}
			st := database.New(ctx, dbx)
			ctx = backend.WithContext(ctx, backend.New(ctx, cfg, dbx, st))

			api := httptest.NewServer(web.NewRouter(ctx))
			ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.Copy(io.Discard, r.Body) // nolint: errcheck
				io.WriteString(w, `{"message":"received"}`) // nolint: errcheck
			}))
			fail := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.Copy(io.Discard, r.Body) // nolint: errcheck
				w.WriteHeader(http.StatusInternalServerError)
				io.WriteString(w, `{"message":"target is down"}`) // nolint: errcheck
			}))
			e.Defer(func() {
				api.Close()
				ok.Close()
				fail.Close()
				dbx.Close() // nolint: errcheck
			})

			e.Setenv("HOOKCTL_DATA_PATH", data)
			e.Setenv("HOOKCTL_API_URL", api.URL+web.APIPrefix)
			e.Setenv("TARGET_URL", ok.URL)
			e.Setenv("FAILING_URL", fail.URL)
			return nil
		},
	})
}
