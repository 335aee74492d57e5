package logs

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matryer/is"
	"github.com/muesli/termenv"
	"github.com/wabridge/hookctl/pkg/ui/common"
	"github.com/wabridge/hookctl/pkg/ui/styles"
	"github.com/wabridge/hookctl/pkg/webhook"
)

func newLogs() *Logs {
	c := common.NewCommon(context.TODO(), lipgloss.NewRenderer(io.Discard), 100, 60)
	l := New(c)
	l.SetSize(100, 60)
	return l
}

func TestTitle(t *testing.T) {
	is := is.New(t)
	hooks := []webhook.Webhook{{ID: 3, Name: "orders"}}
	is.Equal(Title(hooks, 3), "Logs - orders")
	is.Equal(Title(hooks, 4), "Logs - Webhook 4")
}

func TestSetLogs(t *testing.T) {
	is := is.New(t)
	l := newLogs()
	l.Open(3, "Logs - orders")
	is.True(strings.Contains(l.View(), "Loading logs..."))

	in := []webhook.Log{
		{ID: 1, CreatedAt: "2024-05-01T10:00:00Z"},
		{ID: 2, CreatedAt: "not a date"},
		{ID: 3, CreatedAt: "2024-05-02T10:00:00Z"},
	}
	l.SetLogs(in)
	is.Equal(l.CountLabel(), "3 log entries")
	is.Equal(l.Logs()[0].ID, int64(3))
	is.Equal(l.Logs()[1].ID, int64(1))
	is.Equal(l.Logs()[2].ID, int64(2))
	// The input is left untouched.
	is.Equal(in[0].ID, int64(1))

	l.SetLogs(nil)
	is.Equal(l.CountLabel(), "0 log entries")
	is.True(strings.Contains(l.View(), "No delivery logs for this webhook yet."))
}

func TestKeys(t *testing.T) {
	is := is.New(t)
	l := newLogs()

	// Nothing to refresh while closed.
	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	is.Equal(cmd, nil)

	l.Open(5, "Logs - Webhook 5")
	l.SetLogs([]webhook.Log{{ID: 1, Payload: `{"event":"test"}`}})
	_, cmd = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	is.Equal(cmd(), RefreshMsg{ID: 5})

	_, cmd = l.Update(tea.KeyMsg{Type: tea.KeyEsc})
	is.Equal(cmd(), CloseMsg{})

	is.True(!strings.Contains(l.View(), `"event"`))
	l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	is.True(strings.Contains(l.View(), `"event": "test"`))
}

func TestRenderEntry(t *testing.T) {
	is := is.New(t)
	st := styles.DefaultStyles(lipgloss.NewRenderer(io.Discard))
	l := webhook.Log{
		ID:             1,
		AttemptCount:   2,
		TriggerType:    "keyword",
		TriggerValue:   "order",
		ChatJID:        "123@s.whatsapp.net",
		ResponseStatus: 500,
		ResponseBody:   `{"error":"boom"}`,
		Payload:        `{"message":{"chat_name":"Shop"},"metadata":{"processing_time_ms":12}}`,
	}

	v := RenderEntry(st, termenv.Ascii, l, false, false, 100)
	for _, want := range []string{
		"ERROR",
		"Unknown",
		"2",
		"keyword: order",
		"N/A",
		"Shop (123@s.whatsapp.net)",
		`HTTP 500 - {"error":"boom"}`,
		"12ms",
		"boom",
	} {
		is.True(strings.Contains(v, want))
	}

	l = webhook.Log{ID: 2, DeliveredAt: "2024-05-01T10:00:00Z"}
	v = RenderEntry(st, termenv.Ascii, l, true, false, 100)
	is.True(strings.Contains(v, "SUCCESS"))
	is.True(strings.Contains(v, "Delivered successfully"))
	is.True(!strings.Contains(v, "Error"))
}
