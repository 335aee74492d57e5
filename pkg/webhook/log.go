package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Status is the delivery state of a log entry.
type Status string

const (
	// StatusSuccess means the delivery was acknowledged.
	StatusSuccess Status = "success"
	// StatusError means the target answered with a non-2xx status.
	StatusError Status = "error"
	// StatusPending means no answer was recorded yet.
	StatusPending Status = "pending"
)

// String returns the status in upper case, as shown on badges.
func (s Status) String() string {
	return strings.ToUpper(string(s))
}

// Text is a JSON field the server may send either as a string or as an
// arbitrary JSON value. Non-string values are kept as their raw encoding.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*t = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		*t = Text(b)
	}
	return nil
}

// Log is a server-recorded delivery attempt of a webhook.
type Log struct {
	ID           int64  `json:"id,omitempty"`
	WebhookID    int64  `json:"webhook_id,omitempty"`
	CreatedAt    string `json:"created_at"`
	AttemptCount int    `json:"attempt_count"`
	TriggerType  string `json:"trigger_type"`
	TriggerValue string `json:"trigger_value"`
	MessageID    string `json:"message_id"`
	ChatJID      string `json:"chat_jid"`
	Payload      Text   `json:"payload"`
	// ResponseStatus is zero when the target never answered.
	ResponseStatus int  `json:"response_status,omitempty"`
	ResponseBody   Text `json:"response_body,omitempty"`
	// DeliveredAt is empty until the delivery is acknowledged.
	DeliveredAt string `json:"delivered_at,omitempty"`
}

// Status classifies the log entry. A recorded response status decides on
// its own; otherwise a delivery timestamp means success.
func (l Log) Status() Status {
	switch {
	case l.ResponseStatus != 0:
		if l.ResponseStatus >= 200 && l.ResponseStatus < 300 {
			return StatusSuccess
		}
		return StatusError
	case l.DeliveredAt != "":
		return StatusSuccess
	default:
		return StatusPending
	}
}

// Attempt returns the attempt number, defaulting to 1.
func (l Log) Attempt() int {
	if l.AttemptCount <= 0 {
		return 1
	}
	return l.AttemptCount
}

// Trigger describes the trigger that fired this delivery.
func (l Log) Trigger() string {
	return l.TriggerType + ": " + l.TriggerValue
}

// Message returns the message ID or "N/A".
func (l Log) Message() string {
	if l.MessageID == "" {
		return "N/A"
	}
	return l.MessageID
}

// PayloadJSON decodes the payload.
func (l Log) PayloadJSON() JSONText {
	return DecodeJSON(string(l.Payload))
}

// ResponseJSON decodes the response body.
func (l Log) ResponseJSON() JSONText {
	return DecodeJSON(string(l.ResponseBody))
}

// ChatInfo returns the chat name from the payload followed by the chat JID,
// or the chat JID alone when the payload carries no chat name.
func (l Log) ChatInfo() string {
	if name := l.PayloadJSON().String("message", "chat_name"); name != "" {
		return fmt.Sprintf("%s (%s)", name, l.ChatJID)
	}
	if l.ChatJID == "" {
		return "N/A"
	}
	return l.ChatJID
}

// ResponseSummary describes the target's answer.
func (l Log) ResponseSummary() string {
	if l.ResponseStatus == 0 {
		if l.DeliveredAt != "" {
			return "Delivered successfully"
		}
		return "N/A"
	}

	s := fmt.Sprintf("HTTP %d", l.ResponseStatus)
	if l.ResponseBody == "" {
		return s
	}
	body := string(l.ResponseBody)
	if msg := l.ResponseJSON().String("message"); msg != "" {
		body = msg
	}
	return s + " - " + Preview(body, PreviewLength)
}

// ProcessingTime returns the processing time reported in the payload
// metadata, e.g. "12ms".
func (l Log) ProcessingTime() string {
	ms, ok := l.PayloadJSON().Number("metadata", "processing_time_ms")
	if !ok {
		ms = 0
	}
	return strconv.FormatFloat(ms, 'f', -1, 64) + "ms"
}

// ErrorMessage returns the message explaining a failed delivery, or an empty
// string when the entry did not fail or carries no response body.
func (l Log) ErrorMessage() string {
	if l.Status() != StatusError || l.ResponseBody == "" {
		return ""
	}
	j := l.ResponseJSON()
	for _, key := range []string{"message", "error"} {
		if s := j.String(key); s != "" {
			return s
		}
	}
	return string(l.ResponseBody)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	time.DateTime,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	time.DateOnly,
}

// ParseTime parses a server timestamp.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortLogs sorts logs newest first. Entries whose timestamp cannot be parsed
// are treated as the oldest and keep their relative order.
func SortLogs(logs []Log) {
	keys := make(map[int]time.Time, len(logs))
	idx := make([]int, len(logs))
	for i := range logs {
		idx[i] = i
		if t, ok := ParseTime(logs[i].CreatedAt); ok {
			keys[i] = t
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]].After(keys[idx[b]])
	})
	sorted := make([]Log, len(logs))
	for i, j := range idx {
		sorted[i] = logs[j]
	}
	copy(logs, sorted)
}

// CountLabel returns "1 log entry" or "N log entries".
func CountLabel(n int) string {
	if n == 1 {
		return "1 log entry"
	}
	return fmt.Sprintf("%d log entries", n)
}
