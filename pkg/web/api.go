package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/wabridge/hookctl/pkg/backend"
	"github.com/wabridge/hookctl/pkg/webhook"
)

// maxBodySize bounds request bodies of the webhook API.
const maxBodySize = 1 << 20

var errInvalidID = errors.New("invalid webhook id")

// WebhookController registers the webhook API routes.
func WebhookController(_ context.Context, r *mux.Router) {
	r.HandleFunc("/webhooks", listWebhooks).Methods(http.MethodGet)
	r.HandleFunc("/webhooks", createWebhook).Methods(http.MethodPost)
	r.HandleFunc("/webhooks/{id:[0-9]+}", getWebhook).Methods(http.MethodGet)
	r.HandleFunc("/webhooks/{id:[0-9]+}", updateWebhook).Methods(http.MethodPut)
	r.HandleFunc("/webhooks/{id:[0-9]+}", deleteWebhook).Methods(http.MethodDelete)
	r.HandleFunc("/webhooks/{id:[0-9]+}/enable", enableWebhook).Methods(http.MethodPost)
	r.HandleFunc("/webhooks/{id:[0-9]+}/test", testWebhook).Methods(http.MethodPost)
	r.HandleFunc("/webhooks/{id:[0-9]+}/logs", listWebhookLogs).Methods(http.MethodGet)
}

func listWebhooks(w http.ResponseWriter, r *http.Request) {
	hooks, err := backend.FromContext(r.Context()).Webhooks(r.Context())
	if err != nil {
		renderBackendError(w, r, err)
		return
	}

	renderData(w, r, http.StatusOK, "", hooks)
}

func getWebhook(w http.ResponseWriter, r *http.Request) {
	id, ok := webhookID(w, r)
	if !ok {
		return
	}

	wh, err := backend.FromContext(r.Context()).Webhook(r.Context(), id)
	if err != nil {
		renderBackendError(w, r, err)
		return
	}

	renderData(w, r, http.StatusOK, "", wh)
}

func createWebhook(w http.ResponseWriter, r *http.Request) {
	var body webhook.Webhook
	if !decodeBody(w, r, &body) {
		return
	}

	wh, err := backend.FromContext(r.Context()).CreateWebhook(r.Context(), body)
	if err != nil {
		renderBackendError(w, r, err)
		return
	}

	renderData(w, r, http.StatusCreated, "Webhook created successfully", wh)
}

func updateWebhook(w http.ResponseWriter, r *http.Request) {
	id, ok := webhookID(w, r)
	if !ok {
		return
	}

	var body webhook.Webhook
	if !decodeBody(w, r, &body) {
		return
	}

	wh, err := backend.FromContext(r.Context()).UpdateWebhook(r.Context(), id, body)
	if err != nil {
		renderBackendError(w, r, err)
		return
	}

	renderData(w, r, http.StatusOK, "Webhook updated successfully", wh)
}

func deleteWebhook(w http.ResponseWriter, r *http.Request) {
	id, ok := webhookID(w, r)
	if !ok {
		return
	}

	if err := backend.FromContext(r.Context()).DeleteWebhook(r.Context(), id); err != nil {
		renderBackendError(w, r, err)
		return
	}

	renderData(w, r, http.StatusOK, "Webhook deleted successfully", nil)
}

func enableWebhook(w http.ResponseWriter, r *http.Request) {
	id, ok := webhookID(w, r)
	if !ok {
		return
	}

	var body struct {
		Enabled *bool `json:"enabled"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Enabled == nil {
		renderError(w, r, http.StatusBadRequest, errors.New("enabled is required"))
		return
	}

	wh, err := backend.FromContext(r.Context()).SetWebhookEnabled(r.Context(), id, *body.Enabled)
	if err != nil {
		renderBackendError(w, r, err)
		return
	}

	msg := "Webhook disabled successfully"
	if wh.Enabled {
		msg = "Webhook enabled successfully"
	}
	renderData(w, r, http.StatusOK, msg, wh)
}

func testWebhook(w http.ResponseWriter, r *http.Request) {
	id, ok := webhookID(w, r)
	if !ok {
		return
	}

	l, err := backend.FromContext(r.Context()).TestWebhook(r.Context(), id)
	if err != nil {
		renderBackendError(w, r, err)
		return
	}

	renderData(w, r, http.StatusOK, "Test webhook sent successfully", l)
}

func listWebhookLogs(w http.ResponseWriter, r *http.Request) {
	id, ok := webhookID(w, r)
	if !ok {
		return
	}

	logs, err := backend.FromContext(r.Context()).WebhookLogs(r.Context(), id)
	if err != nil {
		renderBackendError(w, r, err)
		return
	}

	renderData(w, r, http.StatusOK, "", logs)
}

func webhookID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		renderError(w, r, http.StatusBadRequest, errInvalidID)
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v); err != nil {
		renderError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

func renderBackendError(w http.ResponseWriter, r *http.Request, err error) {
	var verr backend.ValidationError
	switch {
	case errors.Is(err, backend.ErrWebhookNotFound):
		renderError(w, r, http.StatusNotFound, err)
	case errors.As(err, &verr):
		renderError(w, r, http.StatusBadRequest, err)
	case errors.Is(err, backend.ErrDeliveryFailed):
		renderError(w, r, http.StatusBadGateway, err)
	default:
		log.FromContext(r.Context()).Error("internal error", "err", err)
		renderError(w, r, http.StatusInternalServerError, errors.New(http.StatusText(http.StatusInternalServerError)))
	}
}
