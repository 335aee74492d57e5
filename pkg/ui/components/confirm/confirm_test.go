package confirm

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matryer/is"
	"github.com/wabridge/hookctl/pkg/ui/common"
)

func TestConfirm(t *testing.T) {
	cases := []struct {
		key       string
		confirmed bool
	}{
		{"y", true},
		{"n", false},
		{"esc", false},
	}
	for _, c := range cases {
		t.Run(c.key, func(t *testing.T) {
			is := is.New(t)
			m := New(common.NewCommon(context.TODO(), lipgloss.DefaultRenderer(), 80, 24))
			m.Open(5, "Delete webhook", "Sure?")
			is.True(m.Active())

			var msg tea.KeyMsg
			if c.key == "esc" {
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			} else {
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(c.key)}
			}
			_, cmd := m.Update(msg)
			is.True(cmd != nil)
			is.Equal(cmd(), ResultMsg{ID: 5, Confirmed: c.confirmed})
			is.True(!m.Active())
			is.Equal(m.View(), "")
		})
	}
}

func TestInactiveIgnoresKeys(t *testing.T) {
	is := is.New(t)
	m := New(common.NewCommon(context.TODO(), lipgloss.DefaultRenderer(), 80, 24))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	is.True(cmd == nil)
}
