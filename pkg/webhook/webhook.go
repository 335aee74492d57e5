// Package webhook defines the webhook subscription model shared by the API
// client, the terminal UI and the development bridge.
package webhook

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrNameRequired is returned when a webhook has no name.
	ErrNameRequired = errors.New("webhook name is required")
	// ErrURLRequired is returned when a webhook has no URL.
	ErrURLRequired = errors.New("webhook URL is required")
	// ErrInvalidURL is returned when the webhook URL is not an absolute URL.
	ErrInvalidURL = errors.New("please enter a valid webhook URL")
	// ErrNoTriggers is returned when a webhook has no triggers.
	ErrNoTriggers = errors.New("at least one trigger is required")
)

// Webhook is a registered outbound notification target.
type Webhook struct {
	ID          int64     `json:"id,omitempty"`
	Name        string    `json:"name"`
	URL         string    `json:"webhook_url"`
	SecretToken string    `json:"secret_token,omitempty"`
	Enabled     bool      `json:"enabled"`
	Triggers    []Trigger `json:"triggers"`
	// CreatedAt is kept as sent by the server and only parsed for display.
	CreatedAt string `json:"created_at,omitempty"`
}

// Validate checks the webhook is ready to be persisted. Rules are checked in
// order and the first failing rule's error is returned: name, URL presence,
// URL validity, triggers.
func (w Webhook) Validate() error {
	for _, check := range []struct {
		value interface{}
		rule  validation.Rule
		err   error
	}{
		{w.Name, validation.Required, ErrNameRequired},
		{w.URL, validation.Required, ErrURLRequired},
		{w.URL, validation.By(absoluteURL), ErrInvalidURL},
		{w.Triggers, validation.Required, ErrNoTriggers},
	} {
		if validation.Validate(check.value, check.rule) != nil {
			return check.err
		}
	}

	return nil
}

// Label returns the webhook name, or a placeholder built from its ID when
// the name is empty.
func (w Webhook) Label() string {
	if w.Name != "" {
		return w.Name
	}
	return fmt.Sprintf("Webhook %d", w.ID)
}

// StatusText returns "Enabled" or "Disabled".
func (w Webhook) StatusText() string {
	if w.Enabled {
		return "Enabled"
	}
	return "Disabled"
}

// IsAbsoluteURL reports whether s parses as an absolute URL.
func IsAbsoluteURL(s string) bool {
	return absoluteURL(s) == nil
}

func absoluteURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	if u.Scheme == "" || (u.Host == "" && u.Opaque == "") {
		return ErrInvalidURL
	}
	return nil
}

// Find returns the webhook with the given ID.
func Find(webhooks []Webhook, id int64) (Webhook, bool) {
	for _, w := range webhooks {
		if w.ID == id {
			return w, true
		}
	}
	return Webhook{}, false
}
