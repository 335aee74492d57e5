package logs

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/wabridge/hookctl/pkg/ui/common"
	"github.com/wabridge/hookctl/pkg/ui/styles"
	"github.com/wabridge/hookctl/pkg/webhook"
)

// RenderEntry renders a delivery log. When expanded, the payload is shown
// pretty-printed and highlighted.
func RenderEntry(st *styles.Styles, profile termenv.Profile, l webhook.Log, active, expanded bool, width int) string {
	base := st.Logs.Entry
	if active {
		base = st.Logs.Active
	}
	inner := width - base.GetHorizontalFrameSize()
	if inner < 0 {
		inner = 0
	}

	status := l.Status()
	badge := st.Badge.Pending
	switch status {
	case webhook.StatusSuccess:
		badge = st.Badge.Success
	case webhook.StatusError:
		badge = st.Badge.Error
	}

	field := func(label, value string) string {
		w := inner - st.Logs.Label.GetWidth()
		return st.Logs.Label.Render(label) + st.Logs.Value.Render(common.TruncateString(value, w))
	}

	s := strings.Builder{}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		badge.UnsetMarginLeft().Render(status.String()),
		st.Info.Render(webhook.FormatDate(l.CreatedAt)),
	))
	s.WriteRune('\n')
	s.WriteString(strings.Join([]string{
		field("Attempt", strconv.Itoa(l.Attempt())),
		field("Trigger", l.Trigger()),
		field("Message ID", l.Message()),
		field("Chat", l.ChatInfo()),
		field("Response", l.ResponseSummary()),
		field("Processing", l.ProcessingTime()),
	}, "\n"))

	if msg := l.ErrorMessage(); msg != "" {
		s.WriteRune('\n')
		s.WriteString(st.Logs.ErrorTitle.Render("Error"))
		s.WriteRune('\n')
		s.WriteString(st.Logs.ErrorBody.Width(inner - st.Logs.ErrorBody.GetHorizontalFrameSize()).Render(msg))
	}

	if expanded {
		s.WriteRune('\n')
		s.WriteString(st.Logs.Payload.Render(renderPayload(profile, l)))
	}

	return base.Render(s.String())
}

func renderPayload(profile termenv.Profile, l webhook.Log) string {
	p := l.PayloadJSON()
	if !p.Valid() {
		return p.Raw
	}
	out, err := common.FormatHighlight(profile, "json", p.Indent())
	if err != nil {
		return p.Indent()
	}
	return strings.TrimRight(out, "\n")
}
