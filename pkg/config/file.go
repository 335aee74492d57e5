package config

import (
	"bytes"
	"text/template"
)

var configFileTmpl = template.Must(template.New("config").Parse(`# hookctl configuration

# The bridge API hookctl talks to.
api:
  # Base address of the bridge API. Webhook endpoints live under it,
  # e.g. {{ .API.URL }}/webhooks.
  url: "{{ .API.URL }}"

  # Maximum duration of a single request, e.g. "30s".
  # A value of 0 means no timeout.
  timeout: "{{ .API.Timeout }}"

# Terminal UI configuration.
ui:
  # How long a notification stays on screen.
  toast_duration: "{{ .UI.ToastDuration }}"

  # Disable colors.
  no_color: {{ .UI.NoColor }}

  # Disable cursor blinking in text inputs.
  static_cursor: {{ .UI.StaticCursor }}

# Logging configuration.
log:
  # Log format to use. Valid values are "json", "logfmt", and "text".
  format: "{{ .Log.Format }}"
  # Time format for the log "timestamp" field.
  # Should be described in Golang's time format.
  time_format: "{{ .Log.TimeFormat }}"
  # Path to the log file. Leave empty to write to stderr.
  # The UI never logs to the terminal, set a path to keep its logs.
  #path: "{{ .Log.Path }}"

# The development bridge, started with "hookctl bridge".
bridge:
  # The address on which the bridge API will listen.
  listen_addr: "{{ .Bridge.ListenAddr }}"

  # Refuse test deliveries to loopback, private and link-local addresses.
  block_private_targets: {{ .Bridge.BlockPrivateTargets }}

  # The bridge database. Supported drivers are "sqlite" and "postgres".
  db:
    driver: "{{ .Bridge.DB.Driver }}"
    data_source: "{{ .Bridge.DB.DataSource }}"

  # Prometheus metrics for the bridge.
  stats:
    enabled: {{ .Bridge.Stats.Enabled }}
    listen_addr: "{{ .Bridge.Stats.ListenAddr }}"
`))

func newConfigFile(cfg *Config) string {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var b bytes.Buffer
	configFileTmpl.Execute(&b, cfg) // nolint: errcheck

	return b.String()
}
