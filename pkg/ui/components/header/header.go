package header

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wabridge/hookctl/pkg/ui/common"
)

// Header represents a header component.
type Header struct {
	common common.Common
	text   string
	info   string
}

// New creates a new header component.
func New(c common.Common, text string) *Header {
	return &Header{
		common: c,
		text:   text,
	}
}

// SetSize implements common.Component.
func (h *Header) SetSize(width, height int) {
	h.common.SetSize(width, height)
}

// SetInfo sets the text shown next to the title.
func (h *Header) SetInfo(info string) {
	h.info = info
}

// Init implements tea.Model.
func (h *Header) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (h *Header) Update(_ tea.Msg) (common.Model, tea.Cmd) {
	return h, nil
}

// View implements tea.Model.
func (h *Header) View() string {
	st := h.common.Styles
	title := st.Title.Render(strings.TrimSpace(h.text))
	info := ""
	if h.info != "" {
		info = st.Info.Render(common.TruncateString(h.info, h.common.Width-lipgloss.Width(title)-st.Info.GetHorizontalFrameSize()))
	}
	return st.Header.Render(lipgloss.JoinHorizontal(lipgloss.Top, title, info))
}
