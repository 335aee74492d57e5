package backend

import "errors"

var (
	// ErrWebhookNotFound is returned when a webhook does not exist.
	ErrWebhookNotFound = errors.New("webhook not found")
	// ErrDeliveryFailed is returned when a test delivery did not get a 2xx
	// answer.
	ErrDeliveryFailed = errors.New("delivery failed")
)

// ValidationError is returned when a webhook submitted to the bridge is
// invalid.
type ValidationError struct {
	Err error
}

// Error implements error.
func (e ValidationError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e ValidationError) Unwrap() error {
	return e.Err
}
