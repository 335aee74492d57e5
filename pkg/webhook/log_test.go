package webhook

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestLogStatus(t *testing.T) {
	cases := []struct {
		log  Log
		want Status
	}{
		{Log{ResponseStatus: 200}, StatusSuccess},
		{Log{ResponseStatus: 299}, StatusSuccess},
		{Log{ResponseStatus: 300}, StatusError},
		{Log{ResponseStatus: 500}, StatusError},
		{Log{ResponseStatus: 199}, StatusError},
		{Log{DeliveredAt: "2024-01-01T00:00:00Z"}, StatusSuccess},
		{Log{}, StatusPending},
	}
	for _, c := range cases {
		is := is.New(t)
		is.Equal(c.log.Status(), c.want)
	}
	is := is.New(t)
	is.Equal(StatusPending.String(), "PENDING")
}

func TestSortLogs(t *testing.T) {
	is := is.New(t)
	logs := []Log{
		{ID: 1, CreatedAt: "2024-01-01T10:00:00Z"},
		{ID: 2, CreatedAt: "garbage"},
		{ID: 3, CreatedAt: "2024-01-03 10:00:00"},
		{ID: 4, CreatedAt: "2024-01-02T10:00:00.123456+02:00"},
		{ID: 5, CreatedAt: ""},
	}
	SortLogs(logs)
	ids := make([]int64, len(logs))
	for i, l := range logs {
		ids[i] = l.ID
	}
	is.Equal(ids, []int64{3, 4, 1, 2, 5})
}

func TestCountLabel(t *testing.T) {
	is := is.New(t)
	is.Equal(CountLabel(0), "0 log entries")
	is.Equal(CountLabel(1), "1 log entry")
	is.Equal(CountLabel(3), "3 log entries")
}

func TestPreview(t *testing.T) {
	is := is.New(t)
	is.Equal(Preview("short", 100), "short")
	exact := strings.Repeat("a", 100)
	is.Equal(Preview(exact, 100), exact)
	long := strings.Repeat("é", 150)
	is.Equal(Preview(long, 100), strings.Repeat("é", 100)+"...")
}

func TestResponseSummary(t *testing.T) {
	is := is.New(t)
	is.Equal(Log{}.ResponseSummary(), "N/A")
	is.Equal(Log{DeliveredAt: "x"}.ResponseSummary(), "Delivered successfully")
	is.Equal(Log{ResponseStatus: 204}.ResponseSummary(), "HTTP 204")
	is.Equal(Log{ResponseStatus: 500, ResponseBody: `{"message":"boom"}`}.ResponseSummary(), "HTTP 500 - boom")
	long := strings.Repeat("x", 120)
	is.Equal(Log{ResponseStatus: 502, ResponseBody: Text(long)}.ResponseSummary(), "HTTP 502 - "+strings.Repeat("x", 100)+"...")
}

func TestLogDerivations(t *testing.T) {
	is := is.New(t)
	l := Log{
		ChatJID:        "123@g.us",
		Payload:        `{"message":{"chat_name":"Team"},"metadata":{"processing_time_ms":42}}`,
		ResponseStatus: 500,
		ResponseBody:   `{"error":"upstream down"}`,
	}
	is.Equal(l.ChatInfo(), "Team (123@g.us)")
	is.Equal(l.ProcessingTime(), "42ms")
	is.Equal(l.ErrorMessage(), "upstream down")
	is.Equal(l.Attempt(), 1)
	is.Equal(l.Message(), "N/A")

	l = Log{ChatJID: "123@g.us", Payload: "{not json", ResponseStatus: 404, ResponseBody: "plain"}
	is.Equal(l.ChatInfo(), "123@g.us")
	is.Equal(l.ProcessingTime(), "0ms")
	is.Equal(l.ErrorMessage(), "plain")
	is.Equal(Log{}.ChatInfo(), "N/A")
	is.Equal(Log{ResponseStatus: 200, ResponseBody: "ok"}.ErrorMessage(), "")
}

func TestLogJSON(t *testing.T) {
	is := is.New(t)
	var logs []Log
	is.NoErr(json.Unmarshal([]byte(`[
		{"created_at":"2024-01-01T00:00:00Z","payload":"{\"a\":1}","response_status":null,"response_body":null},
		{"created_at":"2024-01-01T00:00:00Z","payload":{"a":2},"response_status":201,"delivered_at":"2024-01-01T00:00:01Z"}
	]`), &logs))
	is.Equal(logs[0].Payload, Text(`{"a":1}`))
	is.Equal(logs[0].Status(), StatusPending)
	is.Equal(logs[1].Payload, Text(`{"a":2}`))
	is.Equal(logs[1].Status(), StatusSuccess)
}

func TestDecodeJSON(t *testing.T) {
	is := is.New(t)
	j := DecodeJSON(`{"a":{"b":"c","n":1.5}}`)
	is.True(j.Valid())
	is.Equal(j.String("a", "b"), "c")
	n, ok := j.Number("a", "n")
	is.True(ok)
	is.Equal(n, 1.5)
	is.Equal(j.String("a", "missing"), "")
	is.Equal(j.Indent(), "{\n  \"a\": {\n    \"b\": \"c\",\n    \"n\": 1.5\n  }\n}")

	bad := DecodeJSON("hello")
	is.True(!bad.Valid())
	is.Equal(bad.Indent(), "hello")
	is.True(!DecodeJSON("").Valid())
}

func TestFormatDate(t *testing.T) {
	is := is.New(t)
	is.Equal(FormatDate(""), "Unknown")
	is.Equal(FormatDate("yesterday"), "Invalid date")
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	is.Equal(FormatDate(ts.Format(time.RFC3339)), ts.Local().Format(time.DateTime))
}
