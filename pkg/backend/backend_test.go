package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/wabridge/hookctl/pkg/config"
	"github.com/wabridge/hookctl/pkg/db"
	"github.com/wabridge/hookctl/pkg/db/migrate"
	"github.com/wabridge/hookctl/pkg/store/database"
	"github.com/wabridge/hookctl/pkg/webhook"
)

func setup(tb testing.TB) (context.Context, *Backend) {
	tb.Helper()
	is := is.New(tb)
	ctx := context.TODO()
	cfg := config.DefaultConfig()
	cfg.DataPath = tb.TempDir()
	ctx = config.WithContext(ctx, cfg)

	dbx, err := db.Open(ctx, "sqlite", filepath.Join(cfg.DataPath, "bridge.db"))
	is.NoErr(err)
	tb.Cleanup(func() {
		if err := dbx.Close(); err != nil {
			tb.Error(err)
		}
	})
	is.NoErr(migrate.Migrate(ctx, dbx))

	return ctx, New(ctx, cfg, dbx, database.New(ctx, dbx))
}

func newWebhook(url string) webhook.Webhook {
	return webhook.Webhook{
		Name:        "orders",
		URL:         url,
		SecretToken: "s3cret",
		Enabled:     true,
		Triggers: []webhook.Trigger{
			{Type: webhook.TriggerKeyword, Value: "order", Match: webhook.MatchContains, Enabled: true},
			{Type: webhook.TriggerAll, Value: "dropped", Enabled: true},
		},
	}
}

func TestWebhookLifecycle(t *testing.T) {
	is := is.New(t)
	ctx, be := setup(t)

	hooks, err := be.Webhooks(ctx)
	is.NoErr(err)
	is.Equal(len(hooks), 0)

	created, err := be.CreateWebhook(ctx, newWebhook("https://example.com/hook"))
	is.NoErr(err)
	is.True(created.ID > 0)
	is.True(created.CreatedAt != "")
	is.Equal(created.Triggers, []webhook.Trigger{
		{Type: webhook.TriggerKeyword, Value: "order", Match: webhook.MatchContains, Enabled: true},
		{Type: webhook.TriggerAll, Value: "", Match: webhook.MatchExact, Enabled: true},
	})

	update := newWebhook("https://example.com/v2")
	update.Name = "orders v2"
	update.Triggers = []webhook.Trigger{{Type: webhook.TriggerSender, Value: "alice", Enabled: true}}
	updated, err := be.UpdateWebhook(ctx, created.ID, update)
	is.NoErr(err)
	is.Equal(updated.Name, "orders v2")
	is.Equal(updated.URL, "https://example.com/v2")
	is.Equal(len(updated.Triggers), 1)
	is.Equal(updated.Triggers[0].Match, webhook.MatchExact)

	toggled, err := be.SetWebhookEnabled(ctx, created.ID, false)
	is.NoErr(err)
	is.True(!toggled.Enabled)

	hooks, err = be.Webhooks(ctx)
	is.NoErr(err)
	is.Equal(len(hooks), 1)
	is.Equal(hooks[0].Name, "orders v2")

	is.NoErr(be.DeleteWebhook(ctx, created.ID))
	_, err = be.Webhook(ctx, created.ID)
	is.True(errors.Is(err, ErrWebhookNotFound))
	is.True(errors.Is(be.DeleteWebhook(ctx, created.ID), ErrWebhookNotFound))
}

func TestCreateWebhookValidation(t *testing.T) {
	ctx, be := setup(t)
	cases := map[string]struct {
		modify func(w *webhook.Webhook)
		err    error
	}{
		"no name":     {func(w *webhook.Webhook) { w.Name = "" }, webhook.ErrNameRequired},
		"bad url":     {func(w *webhook.Webhook) { w.URL = "nope" }, webhook.ErrInvalidURL},
		"no triggers": {func(w *webhook.Webhook) { w.Triggers = nil }, webhook.ErrNoTriggers},
		"unknown trigger": {func(w *webhook.Webhook) {
			w.Triggers = []webhook.Trigger{{Type: "bogus", Value: "x"}}
		}, nil},
		"missing value": {func(w *webhook.Webhook) {
			w.Triggers = []webhook.Trigger{{Type: webhook.TriggerKeyword}}
		}, nil},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			w := newWebhook("https://example.com")
			c.modify(&w)
			_, err := be.CreateWebhook(ctx, w)
			var verr ValidationError
			is.True(errors.As(err, &verr))
			if c.err != nil {
				is.True(errors.Is(err, c.err))
			}
		})
	}
}

func TestTestWebhook(t *testing.T) {
	is := is.New(t)
	ctx, be := setup(t)

	status := http.StatusOK
	var signature string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature = r.Header.Get("X-Webhook-Signature")
		io.Copy(io.Discard, r.Body) // nolint: errcheck
		w.WriteHeader(status)
		io.WriteString(w, `{"message":"nope"}`) // nolint: errcheck
	}))
	defer srv.Close()

	created, err := be.CreateWebhook(ctx, newWebhook(srv.URL))
	is.NoErr(err)

	l, err := be.TestWebhook(ctx, created.ID)
	is.NoErr(err)
	is.True(signature != "")
	is.Equal(l.Status(), webhook.StatusSuccess)
	is.Equal(l.ChatInfo(), "hookctl test (test@bridge.local)")

	status = http.StatusInternalServerError
	l, err = be.TestWebhook(ctx, created.ID)
	is.True(errors.Is(err, ErrDeliveryFailed))
	is.Equal(l.Status(), webhook.StatusError)
	is.Equal(l.ErrorMessage(), "nope")

	logs, err := be.WebhookLogs(ctx, created.ID)
	is.NoErr(err)
	is.Equal(len(logs), 2)
	is.Equal(logs[0].ResponseStatus, http.StatusInternalServerError)
	is.True(logs[0].PayloadJSON().Valid())

	// Deleting a webhook removes its logs.
	is.NoErr(be.DeleteWebhook(ctx, created.ID))
	_, err = be.WebhookLogs(ctx, created.ID)
	is.True(errors.Is(err, ErrWebhookNotFound))
	var count int
	is.NoErr(be.db.Get(&count, "SELECT COUNT(*) FROM webhook_logs"))
	is.Equal(count, 0)

	_, err = be.TestWebhook(ctx, created.ID)
	is.True(errors.Is(err, ErrWebhookNotFound))
}
