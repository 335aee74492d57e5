// Package confirm implements a yes/no confirmation dialog.
package confirm

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wabridge/hookctl/pkg/ui/common"
)

// ResultMsg reports the answer to a confirmation.
type ResultMsg struct {
	ID        int64
	Confirmed bool
}

// Model is a confirmation dialog about a single item.
type Model struct {
	common common.Common
	title  string
	prompt string
	id     int64
	active bool
}

// New returns a new, inactive dialog.
func New(c common.Common) *Model {
	return &Model{common: c}
}

// SetSize implements common.Component.
func (m *Model) SetSize(width, height int) {
	m.common.SetSize(width, height)
}

// Open activates the dialog for the item with the given id.
func (m *Model) Open(id int64, title, prompt string) {
	m.id = id
	m.title = title
	m.prompt = prompt
	m.active = true
}

// Active reports whether the dialog is open.
func (m *Model) Active() bool {
	return m.active
}

// Prompt returns the question asked.
func (m *Model) Prompt() string {
	return m.prompt
}

// ShortHelp implements help.KeyMap.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.common.KeyMap.Confirm, m.common.KeyMap.Cancel}
}

// FullHelp implements help.KeyMap.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (common.Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.common.KeyMap.Confirm):
			return m, m.close(true)
		case key.Matches(msg, m.common.KeyMap.Cancel):
			return m, m.close(false)
		}
	}
	return m, nil
}

func (m *Model) close(confirmed bool) tea.Cmd {
	m.active = false
	id := m.id
	return func() tea.Msg {
		return ResultMsg{ID: id, Confirmed: confirmed}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.active {
		return ""
	}
	st := m.common.Styles.Dialog
	w := m.common.Width - st.Base.GetHorizontalFrameSize()
	if w > 72 {
		w = 72
	}
	return st.Base.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render(m.title),
		st.Body.Render(m.prompt),
		st.Button.Render("[y] Yes   [n] No"),
	))
}
