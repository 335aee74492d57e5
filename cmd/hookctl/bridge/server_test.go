package bridge

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matryer/is"
	"github.com/wabridge/hookctl/pkg/backend"
	"github.com/wabridge/hookctl/pkg/config"
	"github.com/wabridge/hookctl/pkg/db"
	"github.com/wabridge/hookctl/pkg/db/migrate"
	"github.com/wabridge/hookctl/pkg/store/database"
	"github.com/wabridge/hookctl/pkg/test"
)

func get(is *is.I, url string) string {
	res, err := http.Get(url) // nolint: noctx
	is.NoErr(err)
	defer res.Body.Close() // nolint: errcheck
	is.Equal(res.StatusCode, http.StatusOK)
	body, err := io.ReadAll(res.Body)
	is.NoErr(err)
	return string(body)
}

func TestServer(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.DataPath = t.TempDir()
	cfg.Bridge.ListenAddr = test.Addr()
	cfg.Bridge.Stats.Enabled = true
	cfg.Bridge.Stats.ListenAddr = test.Addr()
	cfg.Bridge.DB.DataSource = filepath.Join(cfg.DataPath, "bridge.db")
	is.NoErr(cfg.Validate())

	ctx := config.WithContext(context.Background(), cfg)
	ctx = log.WithContext(ctx, log.New(io.Discard))
	dbx, err := db.Open(ctx, cfg.Bridge.DB.Driver, cfg.Bridge.DB.DataSource)
	is.NoErr(err)
	defer dbx.Close() // nolint: errcheck
	is.NoErr(migrate.Migrate(ctx, dbx))
	ctx = db.WithContext(ctx, dbx)
	ctx = backend.WithContext(ctx, backend.New(ctx, cfg, dbx, database.New(ctx, dbx)))

	s, err := NewServer(ctx)
	is.NoErr(err)

	errc := make(chan error, 1)
	go func() {
		errc <- s.Start()
	}()
	is.NoErr(test.WaitForAddr(cfg.Bridge.ListenAddr, 5*time.Second))
	is.NoErr(test.WaitForAddr(cfg.Bridge.Stats.ListenAddr, 5*time.Second))

	is.Equal(get(is, "http://"+cfg.Bridge.ListenAddr+"/readyz"), "200 OK")
	is.True(strings.Contains(get(is, "http://"+cfg.Bridge.ListenAddr+"/api/webhooks"), `"success":true`))
	metrics := get(is, "http://"+cfg.Bridge.Stats.ListenAddr+"/metrics")
	is.True(strings.Contains(metrics, `hookctl_bridge_http_requests_total{code="200",method="GET",route="/api/webhooks"}`))

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	is.NoErr(s.Shutdown(shutdown))
	is.NoErr(<-errc)
}
