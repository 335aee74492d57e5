package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is returned for non-2xx responses.
type APIError struct {
	// Status is the HTTP status code.
	Status int
	// Message is the best description of the failure available.
	Message string
}

// Error implements error.
func (e *APIError) Error() string {
	return e.Message
}

// newAPIError builds an APIError from a response. The message is taken from
// the body's error field, then its message field, then the status text, and
// finally a generic description.
func newAPIError(res *http.Response, body []byte) *APIError {
	e := &APIError{Status: res.StatusCode}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			e.Message = payload.Error
		case payload.Message != "":
			e.Message = payload.Message
		}
	}
	if e.Message == "" {
		e.Message = statusText(res)
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("HTTP error! status: %d", res.StatusCode)
	}

	return e
}

// statusText returns the reason phrase sent by the server, if any.
func statusText(res *http.Response) string {
	// res.Status is "404 Not Found".
	_, text, _ := strings.Cut(res.Status, " ")
	return strings.TrimSpace(text)
}
