package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/wabridge/hookctl/pkg/config"
	"github.com/wabridge/hookctl/pkg/webhook"
)

func newClient(tb testing.TB, h http.HandlerFunc) *Client {
	tb.Helper()
	srv := httptest.NewServer(h)
	tb.Cleanup(srv.Close)
	cfg := config.DefaultConfig()
	cfg.API.URL = srv.URL + "/api"
	return New(context.TODO(), cfg)
}

func respond(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		io.WriteString(w, body) // nolint: errcheck
	}
}

func TestProbe(t *testing.T) {
	cases := []struct {
		code int
		ok   bool
	}{
		{http.StatusOK, true},
		{http.StatusNoContent, true},
		{http.StatusNotFound, true},
		{http.StatusInternalServerError, false},
		{http.StatusUnauthorized, false},
	}
	for _, c := range cases {
		t.Run(http.StatusText(c.code), func(t *testing.T) {
			is := is.New(t)
			err := newClient(t, respond(c.code, "")).Probe(context.TODO())
			if c.ok {
				is.NoErr(err)
				return
			}
			is.True(errors.Is(err, ErrUnreachable))
		})
	}
}

func TestProbeTransportError(t *testing.T) {
	is := is.New(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	cfg := config.DefaultConfig()
	cfg.API.URL = srv.URL
	is.True(errors.Is(New(context.TODO(), cfg).Probe(context.TODO()), ErrUnreachable))
}

func TestListWebhooksShapes(t *testing.T) {
	cases := map[string]struct {
		body string
		want int
	}{
		"envelope":         {`{"success":true,"data":[{"id":1,"name":"a"},{"id":2,"name":"b"}]}`, 2},
		"bare array":       {`[{"id":1,"name":"a"}]`, 1},
		"unsuccessful":     {`{"success":false,"data":[{"id":1}]}`, 0},
		"data not a list":  {`{"success":true,"data":{"id":1}}`, 0},
		"null data":        {`{"success":true,"data":null}`, 0},
		"other object":     {`{"webhooks":[{"id":1}]}`, 0},
		"scalar":           {`42`, 0},
		"not json":         {`hello`, 0},
		"empty":            {``, 0},
		"empty array":      {`[]`, 0},
		"envelope no data": {`{"success":true}`, 0},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			hooks, err := newClient(t, respond(http.StatusOK, c.body)).ListWebhooks(context.TODO())
			is.NoErr(err)
			is.True(hooks != nil)
			is.Equal(len(hooks), c.want)
		})
	}
}

func TestListWebhooksError(t *testing.T) {
	is := is.New(t)
	_, err := newClient(t, respond(http.StatusInternalServerError, `{"error":"db down"}`)).ListWebhooks(context.TODO())
	var apiErr *APIError
	is.True(errors.As(err, &apiErr))
	is.Equal(apiErr.Status, http.StatusInternalServerError)
	is.Equal(err.Error(), "db down")
}

func TestAPIErrorMessage(t *testing.T) {
	cases := []struct {
		name   string
		status string
		code   int
		body   string
		want   string
	}{
		{"error field", "400 Bad Request", 400, `{"error":"bad name","message":"ignored"}`, "bad name"},
		{"message field", "400 Bad Request", 400, `{"message":"try again"}`, "try again"},
		{"non json", "502 Bad Gateway", 502, `<html>`, "Bad Gateway"},
		{"empty fields", "500 Internal Server Error", 500, `{"error":""}`, "Internal Server Error"},
		{"no status text", "599", 599, ``, "HTTP error! status: 599"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			is := is.New(t)
			err := newAPIError(&http.Response{Status: c.status, StatusCode: c.code}, []byte(c.body))
			is.Equal(err.Status, c.code)
			is.Equal(err.Error(), c.want)
		})
	}
}

func TestWriteRequests(t *testing.T) {
	is := is.New(t)
	type call struct {
		method, path, body, contentType, userAgent string
	}
	var calls []call
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, call{r.Method, r.URL.Path, string(body), r.Header.Get("Content-Type"), r.Header.Get("User-Agent")})
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/webhooks":
			respond(http.StatusCreated, `{"success":true,"data":{"id":7,"name":"a","webhook_url":"https://x","enabled":true,"triggers":[]}}`)(w, r)
		case r.Method == http.MethodPut:
			respond(http.StatusOK, `{"id":7,"name":"b","webhook_url":"https://x","enabled":true,"triggers":[]}`)(w, r)
		default:
			respond(http.StatusOK, `{"success":true}`)(w, r)
		}
	})
	ctx := context.TODO()

	created, err := c.CreateWebhook(ctx, webhook.Webhook{Name: "a", URL: "https://x"})
	is.NoErr(err)
	is.Equal(created.ID, int64(7))

	updated, err := c.UpdateWebhook(ctx, 7, webhook.Webhook{Name: "b", URL: "https://x"})
	is.NoErr(err)
	is.Equal(updated.Name, "b")

	is.NoErr(c.SetEnabled(ctx, 7, false))
	is.NoErr(c.TestWebhook(ctx, 7))
	is.NoErr(c.DeleteWebhook(ctx, 7))

	is.Equal(len(calls), 5)
	is.Equal(calls[1].method, http.MethodPut)
	is.Equal(calls[1].path, "/api/webhooks/7")
	is.True(strings.Contains(calls[1].body, `"id":7`))
	is.Equal(calls[2].path, "/api/webhooks/7/enable")
	is.Equal(calls[2].body, `{"enabled":false}`)
	is.Equal(calls[2].contentType, "application/json")
	is.Equal(calls[3].path, "/api/webhooks/7/test")
	is.Equal(calls[3].body, "")
	is.Equal(calls[4].method, http.MethodDelete)
	for _, c := range calls {
		is.True(strings.HasPrefix(c.userAgent, "hookctl/"))
	}
}

func TestCreateWebhookFallsBackToSentRecord(t *testing.T) {
	is := is.New(t)
	c := newClient(t, respond(http.StatusOK, `{"success":true,"message":"ok"}`))
	w, err := c.CreateWebhook(context.TODO(), webhook.Webhook{Name: "a", URL: "https://x"})
	is.NoErr(err)
	is.Equal(w.Name, "a")
}

func TestListLogs(t *testing.T) {
	cases := map[string]struct {
		body string
		want int
	}{
		"data":       {`{"success":true,"data":[{"id":1},{"id":2}]}`, 2},
		"no success": {`{"data":[{"id":1}]}`, 1},
		"bare array": {`[{"id":1}]`, 0},
		"null data":  {`{"data":null}`, 0},
		"other":      {`{"logs":[]}`, 0},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			logs, err := newClient(t, respond(http.StatusOK, c.body)).ListLogs(context.TODO(), 3)
			is.NoErr(err)
			is.Equal(len(logs), c.want)
		})
	}
}

func TestListLogsPath(t *testing.T) {
	is := is.New(t)
	var path string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}}) // nolint: errcheck
	})
	_, err := c.ListLogs(context.TODO(), 12)
	is.NoErr(err)
	is.Equal(path, "/api/webhooks/12/logs")
}

func TestTimeout(t *testing.T) {
	is := is.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()
	cfg := config.DefaultConfig()
	cfg.API.URL = srv.URL
	cfg.API.Timeout = 20 * time.Millisecond
	_, err := New(context.TODO(), cfg).ListWebhooks(context.TODO())
	is.True(err != nil)
}

func TestContext(t *testing.T) {
	is := is.New(t)
	ctx := context.TODO()
	is.True(FromContext(ctx) == nil)
	c := New(ctx, config.DefaultConfig())
	is.Equal(FromContext(WithContext(ctx, c)), c)
}
