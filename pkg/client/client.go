// Package client is a JSON client for the bridge webhook API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/wabridge/hookctl/pkg/config"
	"github.com/wabridge/hookctl/pkg/version"
	"github.com/wabridge/hookctl/pkg/webhook"
)

// ErrUnreachable is returned by Probe when the API does not answer with a
// healthy status.
var ErrUnreachable = errors.New("bridge API unreachable")

// Client talks to the bridge webhook API.
type Client struct {
	base   string
	http   *http.Client
	logger *log.Logger
}

// New returns a new client for the configured API.
func New(ctx context.Context, cfg *config.Config) *Client {
	return &Client{
		base:   strings.TrimSuffix(cfg.API.URL, "/"),
		http:   &http.Client{Timeout: cfg.API.Timeout},
		logger: log.FromContext(ctx).WithPrefix("client"),
	}
}

// BaseURL returns the API base address.
func (c *Client) BaseURL() string {
	return c.base
}

// Probe checks that the API is reachable. A 404 counts as reachable since
// the API may be running without any webhook yet.
func (c *Client) Probe(ctx context.Context) error {
	res, err := c.do(ctx, http.MethodGet, "/webhooks", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer res.Body.Close() // nolint: errcheck
	io.Copy(io.Discard, res.Body) // nolint: errcheck

	if isOK(res.StatusCode) || res.StatusCode == http.StatusNotFound {
		return nil
	}
	return fmt.Errorf("%w: status %d", ErrUnreachable, res.StatusCode)
}

// ListWebhooks returns all webhooks. Both the {success, data} envelope and a
// bare array are accepted; any other shape yields an empty list.
func (c *Client) ListWebhooks(ctx context.Context) ([]webhook.Webhook, error) {
	body, err := c.call(ctx, http.MethodGet, "/webhooks", nil)
	if err != nil {
		return nil, err
	}

	return decodeList[webhook.Webhook](body, true), nil
}

// CreateWebhook creates a webhook and returns the created record when the
// API sends one back.
func (c *Client) CreateWebhook(ctx context.Context, w webhook.Webhook) (webhook.Webhook, error) {
	body, err := c.call(ctx, http.MethodPost, "/webhooks", w)
	if err != nil {
		return webhook.Webhook{}, err
	}

	return decodeRecord(body, w), nil
}

// UpdateWebhook replaces the webhook with the given id.
func (c *Client) UpdateWebhook(ctx context.Context, id int64, w webhook.Webhook) (webhook.Webhook, error) {
	w.ID = id
	body, err := c.call(ctx, http.MethodPut, webhookPath(id), w)
	if err != nil {
		return webhook.Webhook{}, err
	}

	return decodeRecord(body, w), nil
}

// DeleteWebhook deletes the webhook with the given id.
func (c *Client) DeleteWebhook(ctx context.Context, id int64) error {
	_, err := c.call(ctx, http.MethodDelete, webhookPath(id), nil)
	return err
}

// SetEnabled enables or disables a webhook.
func (c *Client) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	_, err := c.call(ctx, http.MethodPost, webhookPath(id)+"/enable", map[string]bool{"enabled": enabled})
	return err
}

// TestWebhook asks the bridge to send a test delivery.
func (c *Client) TestWebhook(ctx context.Context, id int64) error {
	_, err := c.call(ctx, http.MethodPost, webhookPath(id)+"/test", nil)
	return err
}

// ListLogs returns the delivery logs of a webhook. Only the data field of
// the response is read; anything else yields an empty list.
func (c *Client) ListLogs(ctx context.Context, id int64) ([]webhook.Log, error) {
	body, err := c.call(ctx, http.MethodGet, webhookPath(id)+"/logs", nil)
	if err != nil {
		return nil, err
	}

	return decodeList[webhook.Log](body, false), nil
}

func webhookPath(id int64) string {
	return "/webhooks/" + strconv.FormatInt(id, 10)
}

// call performs a request and returns the body of a 2xx response. Other
// statuses are returned as *APIError.
func (c *Client) call(ctx context.Context, method, path string, v any) ([]byte, error) {
	var body io.Reader
	if v != nil {
		bts, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(bts)
	}

	res, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close() // nolint: errcheck

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if !isOK(res.StatusCode) {
		return nil, newAPIError(res, data)
	}

	return data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	url := c.base + path
	c.logger.Debug("request", "method", method, "url", url)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		c.logger.Error("request failed", "method", method, "url", url, "err", err)
		return nil, err //nolint:wrapcheck
	}

	c.logger.Debug("response", "method", method, "url", url, "status", res.StatusCode)
	return res, nil
}

func isOK(code int) bool {
	return code >= 200 && code < 300
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// decodeList extracts a list from a response body. With bare set, a
// top-level array is accepted as well as an envelope whose success flag is
// set; otherwise only the data field is read.
func decodeList[T any](body []byte, bare bool) []T {
	body = bytes.TrimSpace(body)
	list := []T{}
	if bare && bytes.HasPrefix(body, []byte("[")) {
		if err := json.Unmarshal(body, &list); err != nil {
			return []T{}
		}
		return list
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return list
	}
	if bare && !env.Success {
		return list
	}
	if !bytes.HasPrefix(bytes.TrimSpace(env.Data), []byte("[")) {
		return list
	}
	if err := json.Unmarshal(env.Data, &list); err != nil {
		return []T{}
	}
	return list
}

// decodeRecord extracts a webhook from an envelope or a bare object, falling
// back to the sent record.
func decodeRecord(body []byte, sent webhook.Webhook) webhook.Webhook {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && bytes.HasPrefix(bytes.TrimSpace(env.Data), []byte("{")) {
		body = env.Data
	}

	var w webhook.Webhook
	if err := json.Unmarshal(body, &w); err != nil || w.ID == 0 {
		return sent
	}
	return w
}
