package list

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matryer/is"
	"github.com/wabridge/hookctl/pkg/ui/common"
	"github.com/wabridge/hookctl/pkg/webhook"
)

func newList() *List {
	c := common.NewCommon(context.TODO(), lipgloss.NewRenderer(io.Discard), 80, 30)
	l := New(c)
	l.SetSize(80, 30)
	return l
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func msgOf(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestEmptyAndLoading(t *testing.T) {
	is := is.New(t)
	l := newList()
	l.SetLoading(true)
	is.True(strings.Contains(l.View(), "Loading webhooks..."))

	l.SetWebhooks([]webhook.Webhook{})
	is.True(strings.Contains(l.View(), "No webhooks configured. Press n to add one."))

	// Actions on an empty list do nothing, but adding still works.
	_, cmd := l.Update(keyMsg("e"))
	is.Equal(cmd, nil)
	_, cmd = l.Update(keyMsg("n"))
	is.Equal(msgOf(cmd), NewMsg{})
}

func TestCards(t *testing.T) {
	is := is.New(t)
	l := newList()
	l.SetWebhooks([]webhook.Webhook{
		{ID: 1, Name: "orders", URL: "https://example.com/orders", Enabled: true, CreatedAt: "bogus"},
		{ID: 2, URL: "https://example.com/other", Triggers: []webhook.Trigger{{Type: webhook.TriggerKeyword, Value: "hi"}}},
	})
	v := l.View()
	is.True(strings.Contains(v, "orders"))
	is.True(strings.Contains(v, "Enabled"))
	is.True(strings.Contains(v, "Triggers: No triggers configured"))
	is.True(strings.Contains(v, "Created: Invalid date"))
	is.True(strings.Contains(v, "Webhook 2"))
	is.True(strings.Contains(v, "Disabled"))
	is.True(strings.Contains(v, "Triggers: keyword: hi"))
}

func TestActions(t *testing.T) {
	is := is.New(t)
	l := newList()
	hooks := []webhook.Webhook{
		{ID: 1, Name: "a", Enabled: true},
		{ID: 7, Name: "b", Enabled: false},
	}
	l.SetWebhooks(hooks)

	_, cmd := l.Update(keyMsg("space"))
	is.Equal(msgOf(cmd), ToggleMsg{ID: 1, Enabled: false})

	l.Update(keyMsg("down"))
	w, ok := l.Selected()
	is.True(ok)
	is.Equal(w.ID, int64(7))

	_, cmd = l.Update(keyMsg("space"))
	is.Equal(msgOf(cmd), ToggleMsg{ID: 7, Enabled: true})
	_, cmd = l.Update(keyMsg("d"))
	is.Equal(msgOf(cmd), DeleteMsg{ID: 7, Name: "b"})
	_, cmd = l.Update(keyMsg("t"))
	is.Equal(msgOf(cmd), TestMsg{ID: 7})
	_, cmd = l.Update(keyMsg("l"))
	is.Equal(msgOf(cmd), LogsMsg{ID: 7})
	_, cmd = l.Update(keyMsg("r"))
	is.Equal(msgOf(cmd), RefreshMsg{})

	// The cursor stays in range when the list shrinks.
	l.SetWebhooks(hooks[:1])
	w, ok = l.Selected()
	is.True(ok)
	is.Equal(w.ID, int64(1))
}
