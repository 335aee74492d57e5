package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNilConfig is returned when a nil config is passed to a function.
	ErrNilConfig = errors.New("nil config")

	// ErrInvalidAPIURL is returned when the bridge API URL is not an absolute
	// http(s) URL.
	ErrInvalidAPIURL = errors.New("api url must be an absolute http or https URL")
)

// APIConfig is the configuration of the remote bridge API.
type APIConfig struct {
	// URL is the base address of the bridge API, e.g.
	// "http://localhost:8080/api". Webhook endpoints are resolved relative
	// to it.
	URL string `env:"URL" yaml:"url"`

	// Timeout is the maximum duration of a single request.
	// A value of 0 means no timeout.
	Timeout time.Duration `env:"TIMEOUT" yaml:"timeout"`
}

// UIConfig is the terminal UI configuration.
type UIConfig struct {
	// ToastDuration is how long a notification stays on screen.
	ToastDuration time.Duration `env:"TOAST_DURATION" yaml:"toast_duration"`

	// NoColor disables colors.
	NoColor bool `env:"NO_COLOR" yaml:"no_color"`

	// StaticCursor disables cursor blinking in text inputs.
	StaticCursor bool `env:"STATIC_CURSOR" yaml:"static_cursor"`
}

// LogConfig is the logger configuration.
type LogConfig struct {
	// Format is the format of the logs.
	// Valid values are "json", "logfmt", and "text".
	Format string `env:"FORMAT" yaml:"format"`

	// Time format for the log `ts` field.
	// Format must be described in Golang's time format.
	TimeFormat string `env:"TIME_FORMAT" yaml:"time_format"`

	// Path to a file to write logs to.
	// If not set, logs will be written to stderr, except in the UI where
	// they are discarded.
	Path string `env:"PATH" yaml:"path"`
}

// DBConfig is the database connection configuration of the development
// bridge.
type DBConfig struct {
	// Driver is the driver for the database.
	Driver string `env:"DRIVER" yaml:"driver"`

	// DataSource is the database data source name.
	DataSource string `env:"DATA_SOURCE" yaml:"data_source"`
}

// StatsConfig is the configuration for the bridge stats server.
type StatsConfig struct {
	// Enabled is whether the stats server is enabled.
	Enabled bool `env:"ENABLED" yaml:"enabled"`

	// ListenAddr is the address on which the stats server will listen.
	ListenAddr string `env:"LISTEN_ADDR" yaml:"listen_addr"`
}

// BridgeConfig is the configuration of the development bridge server.
type BridgeConfig struct {
	// ListenAddr is the address on which the bridge API will listen.
	ListenAddr string `env:"LISTEN_ADDR" yaml:"listen_addr"`

	// DB is the bridge database configuration.
	DB DBConfig `envPrefix:"DB_" yaml:"db"`

	// Stats is the bridge stats server configuration.
	Stats StatsConfig `envPrefix:"STATS_" yaml:"stats"`

	// BlockPrivateTargets refuses test deliveries to loopback, private and
	// link-local addresses.
	BlockPrivateTargets bool `env:"BLOCK_PRIVATE_TARGETS" yaml:"block_private_targets"`
}

// Config is the configuration for hookctl.
type Config struct {
	// API is the remote bridge API configuration.
	API APIConfig `envPrefix:"API_" yaml:"api"`

	// UI is the terminal UI configuration.
	UI UIConfig `envPrefix:"UI_" yaml:"ui"`

	// Log is the logger configuration.
	Log LogConfig `envPrefix:"LOG_" yaml:"log"`

	// Bridge is the development bridge configuration.
	Bridge BridgeConfig `envPrefix:"BRIDGE_" yaml:"bridge"`

	// DataPath is the path to the directory where hookctl keeps its config
	// file and the development bridge database.
	DataPath string `env:"DATA_PATH" yaml:"-"`
}

// Environ returns the config as a list of environment variables.
func (c *Config) Environ() []string {
	if c == nil {
		return nil
	}

	return []string{
		fmt.Sprintf("HOOKCTL_DATA_PATH=%s", c.DataPath),
		fmt.Sprintf("HOOKCTL_API_URL=%s", c.API.URL),
		fmt.Sprintf("HOOKCTL_API_TIMEOUT=%s", c.API.Timeout),
		fmt.Sprintf("HOOKCTL_UI_TOAST_DURATION=%s", c.UI.ToastDuration),
		fmt.Sprintf("HOOKCTL_UI_NO_COLOR=%t", c.UI.NoColor),
		fmt.Sprintf("HOOKCTL_UI_STATIC_CURSOR=%t", c.UI.StaticCursor),
		fmt.Sprintf("HOOKCTL_LOG_FORMAT=%s", c.Log.Format),
		fmt.Sprintf("HOOKCTL_LOG_TIME_FORMAT=%s", c.Log.TimeFormat),
		fmt.Sprintf("HOOKCTL_LOG_PATH=%s", c.Log.Path),
		fmt.Sprintf("HOOKCTL_BRIDGE_LISTEN_ADDR=%s", c.Bridge.ListenAddr),
		fmt.Sprintf("HOOKCTL_BRIDGE_DB_DRIVER=%s", c.Bridge.DB.Driver),
		fmt.Sprintf("HOOKCTL_BRIDGE_DB_DATA_SOURCE=%s", c.Bridge.DB.DataSource),
		fmt.Sprintf("HOOKCTL_BRIDGE_STATS_ENABLED=%t", c.Bridge.Stats.Enabled),
		fmt.Sprintf("HOOKCTL_BRIDGE_STATS_LISTEN_ADDR=%s", c.Bridge.Stats.ListenAddr),
		fmt.Sprintf("HOOKCTL_BRIDGE_BLOCK_PRIVATE_TARGETS=%t", c.Bridge.BlockPrivateTargets),
	}
}

// IsDebug returns true if hookctl is running in debug mode.
func IsDebug() bool {
	debug, _ := strconv.ParseBool(os.Getenv("HOOKCTL_DEBUG"))
	return debug
}

// IsVerbose returns true if hookctl is running in verbose mode.
// Verbose mode is only enabled if debug mode is enabled.
func IsVerbose() bool {
	verbose, _ := strconv.ParseBool(os.Getenv("HOOKCTL_VERBOSE"))
	return IsDebug() && verbose
}

// parseFile parses the given file as a configuration file.
// The file must be in YAML format.
func parseFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close() // nolint: errcheck
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	return cfg.Validate()
}

// ParseFile parses the config from the default file path.
// This also calls Validate() on the config.
func (c *Config) ParseFile() error {
	return parseFile(c, c.ConfigPath())
}

// ParseConfig parses the config from the given file path.
// This also calls Validate() on the config.
func ParseConfig(cfg *Config, path string) error {
	return parseFile(cfg, path)
}

// parseEnv parses the environment variables as a configuration file.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix: "HOOKCTL_",
	}); err != nil {
		return fmt.Errorf("parse environment variables: %w", err)
	}

	return cfg.Validate()
}

// ParseEnv parses the config from the environment variables.
// This also calls Validate() on the config.
func (c *Config) ParseEnv() error {
	return parseEnv(c)
}

// Parse parses the config from the config file, when it exists, and the
// environment variables.
// This also calls Validate() on the config.
func (c *Config) Parse() error {
	if c.Exist() {
		if err := c.ParseFile(); err != nil {
			return err
		}
	}

	return c.ParseEnv()
}

// writeConfig writes the configuration to the given file.
func writeConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(newConfigFile(cfg)), 0o644) // nolint: errcheck, gosec
}

// WriteConfig writes the configuration to the default file.
func (c *Config) WriteConfig() error {
	return writeConfig(c, c.ConfigPath())
}

// DefaultDataPath returns the path to the data directory.
// It uses the HOOKCTL_DATA_PATH environment variable if set, otherwise it
// uses "$XDG_CONFIG_HOME/hookctl" and falls back to "data".
func DefaultDataPath() string {
	if dp := os.Getenv("HOOKCTL_DATA_PATH"); dp != "" {
		return dp
	}

	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "hookctl")
	}

	return "data"
}

// ConfigPath returns the path to the config file.
// HOOKCTL_CONFIG_LOCATION takes precedence over the data directory when it
// points to an existing file.
func (c *Config) ConfigPath() string { // nolint:revive
	if path := os.Getenv("HOOKCTL_CONFIG_LOCATION"); exist(path) {
		return path
	}

	return filepath.Join(c.DataPath, "config.yaml")
}

func exist(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Exist returns true if the config file exists.
func (c *Config) Exist() bool {
	return exist(c.ConfigPath())
}

// DefaultConfig returns the default Config. All the path values are relative
// to the data directory.
// Use Validate() to validate the config and ensure absolute paths.
func DefaultConfig() *Config {
	return &Config{
		DataPath: DefaultDataPath(),
		API: APIConfig{
			URL: "http://localhost:8080/api",
		},
		UI: UIConfig{
			ToastDuration: 5 * time.Second,
		},
		Log: LogConfig{
			Format:     "text",
			TimeFormat: time.DateTime,
		},
		Bridge: BridgeConfig{
			ListenAddr: ":8080",
			DB: DBConfig{
				Driver: "sqlite",
				DataSource: "bridge.db" +
					"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
			},
			Stats: StatsConfig{
				ListenAddr: "localhost:8081",
			},
		},
	}
}

// Validate validates the configuration.
// It updates the configuration with absolute paths.
func (c *Config) Validate() error {
	// Use absolute paths
	if !filepath.IsAbs(c.DataPath) {
		dp, err := filepath.Abs(c.DataPath)
		if err != nil {
			return err
		}
		c.DataPath = dp
	}

	c.API.URL = strings.TrimSuffix(strings.TrimSpace(c.API.URL), "/")
	u, err := url.Parse(c.API.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidAPIURL, c.API.URL)
	}

	if c.API.Timeout < 0 {
		c.API.Timeout = 0
	}

	if c.UI.ToastDuration <= 0 {
		c.UI.ToastDuration = 5 * time.Second
	}

	if c.Log.Path != "" && !filepath.IsAbs(c.Log.Path) {
		c.Log.Path = filepath.Join(c.DataPath, c.Log.Path)
	}

	if strings.HasPrefix(c.Bridge.DB.Driver, "sqlite") &&
		!filepath.IsAbs(c.Bridge.DB.DataSource) &&
		!strings.HasPrefix(c.Bridge.DB.DataSource, ":memory:") &&
		!strings.HasPrefix(c.Bridge.DB.DataSource, "file:") {
		c.Bridge.DB.DataSource = filepath.Join(c.DataPath, c.Bridge.DB.DataSource)
	}

	return nil
}
