package list

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wabridge/hookctl/pkg/ui/styles"
	"github.com/wabridge/hookctl/pkg/webhook"
)

// RenderCard renders a webhook as a list item.
func RenderCard(st *styles.Styles, w webhook.Webhook, active bool, width int) string {
	base := st.Card.Normal.Base
	title := st.Card.Normal.Title
	url := st.Card.Normal.URL
	desc := st.Card.Normal.Desc
	triggers := st.Card.Normal.Triggers
	if active {
		base = st.Card.Active.Base
		title = st.Card.Active.Title
		url = st.Card.Active.URL
		desc = st.Card.Active.Desc
		triggers = st.Card.Active.Triggers
	}

	badge := st.Badge.Disabled
	if w.Enabled {
		badge = st.Badge.Enabled
	}

	inner := width - base.GetHorizontalFrameSize()
	if inner < 0 {
		inner = 0
	}
	status := badge.Render(w.StatusText())
	name := truncate(w.Label(), inner-lipgloss.Width(status))

	s := strings.Builder{}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, title.Render(name), status))
	s.WriteRune('\n')
	s.WriteString(url.Render(truncate(w.URL, inner)))
	s.WriteRune('\n')
	s.WriteString(triggers.Render(truncate("Triggers: "+webhook.FormatTriggers(w.Triggers), inner)))
	s.WriteRune('\n')
	s.WriteString(desc.Render(truncate("Created: "+webhook.FormatDate(w.CreatedAt), inner)))
	return base.Render(s.String())
}
