// Package logs implements the delivery logs view of a webhook.
package logs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wabridge/hookctl/pkg/ui/common"
	"github.com/wabridge/hookctl/pkg/ui/components/viewport"
	"github.com/wabridge/hookctl/pkg/webhook"
)

// RefreshMsg requests the logs of the webhook again.
type RefreshMsg struct {
	ID int64
}

// CloseMsg is sent when the logs view is closed.
type CloseMsg struct{}

// Logs shows the delivery logs of one webhook, newest first.
type Logs struct {
	common   common.Common
	vp       *viewport.Viewport
	id       int64
	title    string
	logs     []webhook.Log
	cursor   int
	expanded bool
	loading  bool
}

// New returns a new logs view.
func New(c common.Common) *Logs {
	return &Logs{
		common: c,
		vp:     viewport.New(c),
	}
}

// Title returns the title of the logs pane for a webhook.
func Title(hooks []webhook.Webhook, id int64) string {
	if w, ok := webhook.Find(hooks, id); ok {
		return "Logs - " + w.Name
	}
	return fmt.Sprintf("Logs - Webhook %d", id)
}

// Open scopes the view to a webhook and clears the previous entries.
func (l *Logs) Open(id int64, title string) {
	l.id = id
	l.title = title
	l.logs = nil
	l.cursor = 0
	l.expanded = false
	l.loading = true
	l.render()
}

// Close clears the active webhook.
func (l *Logs) Close() {
	l.id = 0
	l.logs = nil
	l.loading = false
}

// ID returns the id of the active webhook, zero when closed.
func (l *Logs) ID() int64 {
	return l.id
}

// Title returns the pane title.
func (l *Logs) Title() string {
	return l.title
}

// SetLoading sets the loading indicator.
func (l *Logs) SetLoading(loading bool) {
	l.loading = loading
	l.render()
}

// SetLogs replaces the entries. They are shown sorted by creation time,
// newest first.
func (l *Logs) SetLogs(logs []webhook.Log) {
	l.logs = make([]webhook.Log, len(logs))
	copy(l.logs, logs)
	webhook.SortLogs(l.logs)
	l.loading = false
	if l.cursor >= len(l.logs) {
		l.cursor = 0
	}
	l.render()
}

// Logs returns the shown entries.
func (l *Logs) Logs() []webhook.Log {
	return l.logs
}

// CountLabel returns the entry count summary.
func (l *Logs) CountLabel() string {
	return webhook.CountLabel(len(l.logs))
}

// SetSize implements common.Component.
func (l *Logs) SetSize(width, height int) {
	l.common.SetSize(width, height)
	l.vp.SetSize(width, height-2)
	l.render()
}

// ShortHelp implements help.KeyMap.
func (l *Logs) ShortHelp() []key.Binding {
	k := l.common.KeyMap
	return []key.Binding{k.Up, k.Down, k.Expand, k.Refresh, k.Back}
}

// FullHelp implements help.KeyMap.
func (l *Logs) FullHelp() [][]key.Binding {
	k := l.common.KeyMap
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Expand, k.Refresh},
		{k.Back},
	}
}

// Init implements tea.Model.
func (l *Logs) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (l *Logs) Update(msg tea.Msg) (common.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		_, cmd := l.vp.Update(msg)
		return l, cmd
	}

	k := l.common.KeyMap
	switch {
	case key.Matches(km, k.Back):
		return l, func() tea.Msg { return CloseMsg{} }
	case key.Matches(km, k.Refresh):
		if l.id == 0 {
			return l, nil
		}
		id := l.id
		return l, func() tea.Msg { return RefreshMsg{ID: id} }
	case key.Matches(km, k.Up):
		if l.cursor > 0 {
			l.cursor--
			l.expanded = false
			l.render()
		}
	case key.Matches(km, k.Down):
		if l.cursor < len(l.logs)-1 {
			l.cursor++
			l.expanded = false
			l.render()
		}
	case key.Matches(km, k.Expand):
		if len(l.logs) > 0 {
			l.expanded = !l.expanded
			l.render()
		}
	default:
		_, cmd := l.vp.Update(msg)
		return l, cmd
	}
	return l, nil
}

// View implements tea.Model.
func (l *Logs) View() string {
	st := l.common.Styles
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		st.Logs.Title.Render(l.title),
		st.Logs.Count.Render(l.CountLabel()),
	)
	return st.Logs.Base.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", l.vp.View()))
}

func (l *Logs) render() {
	st := l.common.Styles
	switch {
	case l.loading:
		l.vp.SetContent(st.Spinner.Render("Loading logs..."))
		return
	case len(l.logs) == 0:
		l.vp.SetContent(st.NoContent.Render("No delivery logs for this webhook yet."))
		return
	}

	entries := make([]string, len(l.logs))
	top, bottom, line := 0, 0, 0
	profile := l.common.ColorProfile()
	for i, e := range l.logs {
		active := i == l.cursor
		entries[i] = RenderEntry(st, profile, e, active, active && l.expanded, l.common.Width)
		h := lipgloss.Height(entries[i])
		if active {
			top, bottom = line, line+h-1
		}
		line += h
	}
	l.vp.SetContent(strings.Join(entries, "\n"))
	l.vp.EnsureVisible(top, bottom)
}
