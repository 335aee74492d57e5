// Package list implements the webhook list view.
package list

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wabridge/hookctl/pkg/ui/common"
	"github.com/wabridge/hookctl/pkg/ui/components/viewport"
	"github.com/wabridge/hookctl/pkg/webhook"
)

// NewMsg requests the creation form.
type NewMsg struct{}

// EditMsg requests the edit form for a webhook.
type EditMsg struct {
	Webhook webhook.Webhook
}

// ToggleMsg requests enabling or disabling a webhook.
type ToggleMsg struct {
	ID      int64
	Enabled bool
}

// DeleteMsg requests the deletion of a webhook.
type DeleteMsg struct {
	ID   int64
	Name string
}

// TestMsg requests a test delivery.
type TestMsg struct {
	ID int64
}

// LogsMsg requests the logs of a webhook.
type LogsMsg struct {
	ID int64
}

// RefreshMsg requests a reload of the list.
type RefreshMsg struct{}

// List is the webhook list view. It renders whatever was last given to
// SetWebhooks.
type List struct {
	common   common.Common
	vp       *viewport.Viewport
	webhooks []webhook.Webhook
	cursor   int
	loading  bool
}

// New returns a new list view.
func New(c common.Common) *List {
	return &List{
		common: c,
		vp:     viewport.New(c),
	}
}

// SetSize implements common.Component.
func (l *List) SetSize(width, height int) {
	l.common.SetSize(width, height)
	l.vp.SetSize(width, height)
	l.render()
}

// SetWebhooks replaces the listed webhooks.
func (l *List) SetWebhooks(hooks []webhook.Webhook) {
	l.webhooks = hooks
	l.loading = false
	if l.cursor >= len(hooks) {
		l.cursor = len(hooks) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.render()
}

// SetLoading sets the loading indicator.
func (l *List) SetLoading(loading bool) {
	l.loading = loading
	l.render()
}

// Webhooks returns the listed webhooks.
func (l *List) Webhooks() []webhook.Webhook {
	return l.webhooks
}

// Selected returns the webhook under the cursor.
func (l *List) Selected() (webhook.Webhook, bool) {
	if l.cursor < 0 || l.cursor >= len(l.webhooks) {
		return webhook.Webhook{}, false
	}
	return l.webhooks[l.cursor], true
}

// ShortHelp implements help.KeyMap.
func (l *List) ShortHelp() []key.Binding {
	k := l.common.KeyMap
	return []key.Binding{k.New, k.Edit, k.Toggle, k.Test, k.Logs, k.Delete}
}

// FullHelp implements help.KeyMap.
func (l *List) FullHelp() [][]key.Binding {
	k := l.common.KeyMap
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.New, k.Edit, k.Delete},
		{k.Toggle, k.Test, k.Logs},
		{k.Refresh},
	}
}

// Init implements tea.Model.
func (l *List) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (l *List) Update(msg tea.Msg) (common.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	k := l.common.KeyMap
	switch {
	case key.Matches(km, k.Up):
		if l.cursor > 0 {
			l.cursor--
			l.render()
		}
		return l, nil
	case key.Matches(km, k.Down):
		if l.cursor < len(l.webhooks)-1 {
			l.cursor++
			l.render()
		}
		return l, nil
	case key.Matches(km, k.New):
		return l, send(NewMsg{})
	case key.Matches(km, k.Refresh):
		return l, send(RefreshMsg{})
	}

	w, ok := l.Selected()
	if !ok {
		return l, nil
	}
	switch {
	case key.Matches(km, k.Edit):
		return l, send(EditMsg{Webhook: w})
	case key.Matches(km, k.Toggle):
		return l, send(ToggleMsg{ID: w.ID, Enabled: !w.Enabled})
	case key.Matches(km, k.Delete):
		return l, send(DeleteMsg{ID: w.ID, Name: w.Label()})
	case key.Matches(km, k.Test):
		return l, send(TestMsg{ID: w.ID})
	case key.Matches(km, k.Logs):
		return l, send(LogsMsg{ID: w.ID})
	}

	return l, nil
}

// View implements tea.Model.
func (l *List) View() string {
	return l.vp.View()
}

func (l *List) render() {
	st := l.common.Styles
	switch {
	case l.loading && len(l.webhooks) == 0:
		l.vp.SetContent(st.Spinner.Render("Loading webhooks..."))
		return
	case len(l.webhooks) == 0:
		l.vp.SetContent(st.NoContent.Render("No webhooks configured. Press n to add one."))
		return
	}

	cards := make([]string, len(l.webhooks))
	top, bottom := 0, 0
	line := 0
	for i, w := range l.webhooks {
		cards[i] = RenderCard(st, w, i == l.cursor, l.common.Width)
		h := lipgloss.Height(cards[i])
		if i == l.cursor {
			top, bottom = line, line+h-1
		}
		line += h
	}
	l.vp.SetContent(strings.Join(cards, "\n"))
	l.vp.EnsureVisible(top, bottom)
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

func truncate(s string, n int) string {
	return common.TruncateString(s, n)
}
