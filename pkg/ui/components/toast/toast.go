// Package toast implements a single-slot transient notification.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/wabridge/hookctl/pkg/ui/common"
)

// Kind is the kind of a notification.
type Kind int

// Notification kinds.
const (
	Info Kind = iota
	Success
	Error
)

// DefaultDuration is how long a notification is shown when no duration is
// configured.
const DefaultDuration = 5 * time.Second

// ExpireMsg hides the notification with the given sequence number.
type ExpireMsg struct {
	Seq int
}

// Model is a single-slot notification. Showing a message replaces the
// current one.
type Model struct {
	common   common.Common
	duration time.Duration
	seq      int
	text     string
	kind     Kind
	visible  bool
}

// New returns a new notification model.
func New(c common.Common, d time.Duration) *Model {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Model{
		common:   c,
		duration: d,
	}
}

// SetSize implements common.Component.
func (m *Model) SetSize(width, height int) {
	m.common.SetSize(width, height)
}

// Show displays a message and returns the command that expires it.
func (m *Model) Show(kind Kind, text string) tea.Cmd {
	m.seq++
	m.text = text
	m.kind = kind
	m.visible = true
	seq := m.seq
	return tea.Tick(m.duration, func(time.Time) tea.Msg {
		return ExpireMsg{Seq: seq}
	})
}

// Dismiss hides the current message.
func (m *Model) Dismiss() {
	m.visible = false
}

// Visible reports whether a message is shown.
func (m *Model) Visible() bool {
	return m.visible
}

// Text returns the current message.
func (m *Model) Text() string {
	return m.text
}

// Kind returns the kind of the current message.
func (m *Model) Kind() Kind {
	return m.kind
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (common.Model, tea.Cmd) {
	if msg, ok := msg.(ExpireMsg); ok && msg.Seq == m.seq {
		m.visible = false
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}
	st := m.common.Styles.Toast.Info
	switch m.kind {
	case Success:
		st = m.common.Styles.Toast.Success
	case Error:
		st = m.common.Styles.Toast.Error
	}
	w := m.common.Width - st.GetHorizontalFrameSize()
	return st.Render(common.TruncateString(m.text, w))
}
