// Package delivery sends webhook payloads on behalf of the development
// bridge.
package delivery

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/wabridge/hookctl/pkg/version"
)

const (
	// SignatureHeader carries the HMAC-SHA256 of the body, hex encoded and
	// prefixed with "sha256=".
	SignatureHeader = "X-Webhook-Signature"
	// EventHeader carries the event name.
	EventHeader = "X-Webhook-Event"
	// DeliveryHeader carries the delivery ID.
	DeliveryHeader = "X-Webhook-Delivery"

	// maxResponseBody is the number of response bytes kept in a log.
	maxResponseBody = 64 << 10
)

var deliveryCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "hookctl",
	Subsystem: "bridge",
	Name:      "deliveries_total",
	Help:      "The total number of webhook deliveries",
}, []string{"event", "status"})

// Request is a payload to deliver.
type Request struct {
	URL     string
	Secret  string
	Event   string
	Payload any
}

// Result is the outcome of a delivery.
type Result struct {
	// ID identifies the delivery.
	ID uuid.UUID
	// Body is the request body that was sent.
	Body []byte
	// Status is the response status code, zero when no response arrived.
	Status int
	// Response is the beginning of the response body.
	Response string
	// Err is the transport error, if any.
	Err error
	// Duration is the round trip time.
	Duration time.Duration
}

// OK reports whether the target answered with a 2xx status.
func (r Result) OK() bool {
	return r.Err == nil && r.Status >= 200 && r.Status < 300
}

// Sender delivers payloads over HTTP.
type Sender struct {
	client       *http.Client
	blockPrivate bool
}

// NewSender returns a sender. When blockPrivate is set, targets resolving to
// internal addresses are refused before and at dial time.
func NewSender(blockPrivate bool, timeout time.Duration) *Sender {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			if blockPrivate {
				host, _, err := net.SplitHostPort(addr)
				if err != nil {
					return nil, err //nolint:wrapcheck
				}
				if ip := net.ParseIP(host); ip != nil {
					if err := ValidateIP(ip); err != nil {
						return nil, fmt.Errorf("blocked connection to %s: %w", host, err)
					}
				}
			}
			return dialer.DialContext(ctx, network, addr)
		},
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Sender{
		blockPrivate: blockPrivate,
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			// Redirects could bypass the address checks.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Sign returns the signature header value of body for secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body) // nolint: errcheck
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Send posts the JSON encoded payload to the target. A non-nil error means
// the request could not be built; transport failures are reported in
// Result.Err.
func (s *Sender) Send(ctx context.Context, req Request) (Result, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Result{}, err //nolint:wrapcheck
	}

	body, err := json.Marshal(req.Payload)
	if err != nil {
		return Result{}, fmt.Errorf("encode payload: %w", err)
	}

	res := Result{ID: id, Body: body}
	if s.blockPrivate {
		if err := ValidateURL(ctx, req.URL); err != nil {
			res.Err = err
			deliveryCounter.WithLabelValues(req.Event, "blocked").Inc()
			return res, nil
		}
	}

	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.URL, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}

	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("User-Agent", version.UserAgent())
	hreq.Header.Set(EventHeader, req.Event)
	hreq.Header.Set(DeliveryHeader, id.String())
	if req.Secret != "" {
		hreq.Header.Set(SignatureHeader, Sign(req.Secret, body))
	}

	start := time.Now()
	hres, err := s.client.Do(hreq)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		deliveryCounter.WithLabelValues(req.Event, "error").Inc()
		return res, nil
	}

	defer hres.Body.Close() // nolint: errcheck
	b, err := io.ReadAll(io.LimitReader(hres.Body, maxResponseBody))
	if err != nil {
		res.Err = fmt.Errorf("read response: %w", err)
	}

	res.Status = hres.StatusCode
	res.Response = string(b)
	deliveryCounter.WithLabelValues(req.Event, fmt.Sprintf("%d", hres.StatusCode)).Inc()

	return res, nil
}
