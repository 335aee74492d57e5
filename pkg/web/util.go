package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
)

// envelope is the shape of every API response.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func renderStatus(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
		io.WriteString(w, fmt.Sprintf("%d %s", code, http.StatusText(code))) //nolint:errcheck,gosec
	}
}

func renderJSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.FromContext(r.Context()).Error("error encoding json", "err", err)
	}
}

func renderData(w http.ResponseWriter, r *http.Request, statusCode int, message string, data any) {
	renderJSON(w, r, statusCode, envelope{Success: true, Message: message, Data: data})
}

func renderError(w http.ResponseWriter, r *http.Request, statusCode int, err error) {
	renderJSON(w, r, statusCode, envelope{Error: err.Error()})
}

func renderNotFound(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusNotFound, envelope{Error: http.StatusText(http.StatusNotFound)})
}

func renderMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusMethodNotAllowed, envelope{Error: http.StatusText(http.StatusMethodNotAllowed)})
}
