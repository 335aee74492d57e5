package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestParseEnv(t *testing.T) {
	is := is.New(t)
	td := t.TempDir()
	t.Setenv("HOOKCTL_DATA_PATH", td)
	t.Setenv("HOOKCTL_API_URL", "https://bridge.example.com/api/")
	t.Setenv("HOOKCTL_API_TIMEOUT", "15s")
	t.Setenv("HOOKCTL_UI_TOAST_DURATION", "2s")
	t.Setenv("HOOKCTL_BRIDGE_STATS_ENABLED", "true")
	cfg := DefaultConfig()
	is.NoErr(cfg.ParseEnv())
	is.Equal(cfg.DataPath, td)
	is.Equal(cfg.API.URL, "https://bridge.example.com/api")
	is.Equal(cfg.API.Timeout, 15*time.Second)
	is.Equal(cfg.UI.ToastDuration, 2*time.Second)
	is.True(cfg.Bridge.Stats.Enabled)
	is.Equal(cfg.Bridge.DB.DataSource, filepath.Join(td, "bridge.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"))
}

func TestInvalidAPIURL(t *testing.T) {
	for _, u := range []string{
		"",
		"localhost:8080/api",
		"ftp://bridge.example.com",
		"http://",
	} {
		t.Run(u, func(t *testing.T) {
			is := is.New(t)
			cfg := DefaultConfig()
			cfg.DataPath = t.TempDir()
			cfg.API.URL = u
			is.True(errors.Is(cfg.Validate(), ErrInvalidAPIURL))
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.DataPath = t.TempDir()
	cfg.UI.ToastDuration = 0
	cfg.API.Timeout = -time.Second
	cfg.Log.Path = "hookctl.log"
	is.NoErr(cfg.Validate())
	is.Equal(cfg.UI.ToastDuration, 5*time.Second)
	is.Equal(cfg.API.Timeout, time.Duration(0))
	is.Equal(cfg.Log.Path, filepath.Join(cfg.DataPath, "hookctl.log"))
}

func TestWriteAndParseConfig(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.DataPath = t.TempDir()
	cfg.API.URL = "http://10.0.0.2:9000/api"
	cfg.API.Timeout = 30 * time.Second
	cfg.UI.ToastDuration = 3 * time.Second
	cfg.UI.StaticCursor = true
	is.NoErr(cfg.WriteConfig())
	is.True(cfg.Exist())

	parsed := &Config{DataPath: cfg.DataPath}
	is.NoErr(parsed.Parse())
	is.Equal(parsed.API.URL, "http://10.0.0.2:9000/api")
	is.Equal(parsed.API.Timeout, 30*time.Second)
	is.Equal(parsed.UI.ToastDuration, 3*time.Second)
	is.True(parsed.UI.StaticCursor)
	is.Equal(parsed.Log.Format, "text")
	is.Equal(parsed.Bridge.ListenAddr, ":8080")
}

func TestCustomConfigLocation(t *testing.T) {
	is := is.New(t)
	td := t.TempDir()
	path := filepath.Join(td, "custom.yaml")
	is.NoErr(os.WriteFile(path, []byte("api:\n  url: https://custom.example.com/api\n"), 0o600))
	t.Setenv("HOOKCTL_CONFIG_LOCATION", path)
	t.Setenv("HOOKCTL_DATA_PATH", td)

	cfg := DefaultConfig()
	is.Equal(cfg.ConfigPath(), path)
	is.NoErr(cfg.Parse())
	is.Equal(cfg.API.URL, "https://custom.example.com/api")

	// A missing custom location falls back to the data directory.
	t.Setenv("HOOKCTL_CONFIG_LOCATION", filepath.Join(td, "nonexistent.yaml"))
	cfg = DefaultConfig()
	is.Equal(cfg.ConfigPath(), filepath.Join(td, "config.yaml"))
}

func TestEnviron(t *testing.T) {
	is := is.New(t)
	var cfg *Config
	is.Equal(len(cfg.Environ()), 0)
	envs := DefaultConfig().Environ()
	is.True(len(envs) > 0)
	is.Equal(envs[1], "HOOKCTL_API_URL=http://localhost:8080/api")
}
