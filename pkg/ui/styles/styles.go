package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// XXX: For now, this is in its own package so that it can be shared between
// different packages without incurring an illegal import cycle.

// Styles defines styles for the UI.
type Styles struct {
	ActiveBorderColor   lipgloss.Color
	InactiveBorderColor lipgloss.Color

	App    lipgloss.Style
	Header lipgloss.Style
	Title  lipgloss.Style
	Info   lipgloss.Style

	Footer      lipgloss.Style
	HelpKey     lipgloss.Style
	HelpValue   lipgloss.Style
	HelpDivider lipgloss.Style

	NoContent lipgloss.Style
	Spinner   lipgloss.Style

	Card struct {
		Normal struct {
			Base     lipgloss.Style
			Title    lipgloss.Style
			URL      lipgloss.Style
			Desc     lipgloss.Style
			Triggers lipgloss.Style
		}
		Active struct {
			Base     lipgloss.Style
			Title    lipgloss.Style
			URL      lipgloss.Style
			Desc     lipgloss.Style
			Triggers lipgloss.Style
		}
	}

	Badge struct {
		Enabled  lipgloss.Style
		Disabled lipgloss.Style
		Success  lipgloss.Style
		Error    lipgloss.Style
		Pending  lipgloss.Style
	}

	Form struct {
		Base        lipgloss.Style
		Title       lipgloss.Style
		Label       lipgloss.Style
		ActiveLabel lipgloss.Style
		Value       lipgloss.Style
		Disabled    lipgloss.Style
		Selected    lipgloss.Style
		Section     lipgloss.Style
		Hint        lipgloss.Style
	}

	Logs struct {
		Base       lipgloss.Style
		Title      lipgloss.Style
		Count      lipgloss.Style
		Entry      lipgloss.Style
		Active     lipgloss.Style
		Label      lipgloss.Style
		Value      lipgloss.Style
		ErrorTitle lipgloss.Style
		ErrorBody  lipgloss.Style
		Payload    lipgloss.Style
	}

	Toast struct {
		Info    lipgloss.Style
		Success lipgloss.Style
		Error   lipgloss.Style
	}

	Dialog struct {
		Base   lipgloss.Style
		Title  lipgloss.Style
		Body   lipgloss.Style
		Button lipgloss.Style
	}

	Error      lipgloss.Style
	ErrorTitle lipgloss.Style
	ErrorBody  lipgloss.Style
}

// DefaultStyles returns default styles for the UI.
func DefaultStyles(r *lipgloss.Renderer) *Styles {
	highlightColor := lipgloss.Color("210")
	selectorColor := lipgloss.Color("167")
	successColor := lipgloss.Color("42")
	errorColor := lipgloss.Color("203")
	pendingColor := lipgloss.Color("214")

	s := new(Styles)

	s.ActiveBorderColor = lipgloss.Color("62")
	s.InactiveBorderColor = lipgloss.Color("241")

	s.App = r.NewStyle().
		Margin(1, 2)

	s.Header = r.NewStyle().
		Height(1).
		MarginBottom(1)

	s.Title = r.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("57")).
		Foreground(lipgloss.Color("229")).
		Bold(true)

	s.Info = r.NewStyle().
		MarginLeft(1).
		Foreground(lipgloss.Color("243"))

	s.Footer = r.NewStyle().
		MarginTop(1).
		Padding(0, 1).
		Height(1)

	s.HelpKey = r.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.HelpValue = r.NewStyle().
		Foreground(lipgloss.Color("239"))

	s.HelpDivider = r.NewStyle().
		Foreground(lipgloss.Color("237")).
		SetString(" • ")

	s.NoContent = r.NewStyle().
		MarginTop(1).
		MarginLeft(2).
		Foreground(lipgloss.Color("242"))

	s.Spinner = r.NewStyle().
		MarginTop(1).
		MarginLeft(2).
		Foreground(lipgloss.Color("205"))

	s.Card.Normal.Base = r.NewStyle().
		PaddingLeft(1).
		MarginBottom(1).
		Border(lipgloss.Border{Left: " "}, false, false, false, true)

	s.Card.Normal.Title = r.NewStyle().Bold(true)

	s.Card.Normal.URL = r.NewStyle().
		Foreground(lipgloss.Color("132"))

	s.Card.Normal.Desc = r.NewStyle().
		Foreground(lipgloss.Color("243"))

	s.Card.Normal.Triggers = r.NewStyle().
		Foreground(lipgloss.Color("246"))

	s.Card.Active.Base = s.Card.Normal.Base.
		BorderStyle(lipgloss.Border{Left: "┃"}).
		BorderForeground(lipgloss.Color("176"))

	s.Card.Active.Title = s.Card.Normal.Title.
		Foreground(lipgloss.Color("212"))

	s.Card.Active.URL = s.Card.Normal.URL.
		Foreground(lipgloss.Color("204"))

	s.Card.Active.Desc = s.Card.Normal.Desc.
		Foreground(lipgloss.Color("246"))

	s.Card.Active.Triggers = s.Card.Normal.Triggers.
		Foreground(lipgloss.Color("252"))

	badge := r.NewStyle().
		Padding(0, 1).
		MarginLeft(1).
		Bold(true).
		Foreground(lipgloss.Color("230"))

	s.Badge.Enabled = badge.Background(successColor)
	s.Badge.Disabled = badge.Background(lipgloss.Color("241"))
	s.Badge.Success = badge.Background(successColor)
	s.Badge.Error = badge.Background(errorColor)
	s.Badge.Pending = badge.Background(pendingColor)

	s.Form.Base = r.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ActiveBorderColor)

	s.Form.Title = r.NewStyle().
		Bold(true).
		MarginBottom(1).
		Foreground(lipgloss.Color("212"))

	s.Form.Label = r.NewStyle().
		Width(10).
		Foreground(lipgloss.Color("246"))

	s.Form.ActiveLabel = s.Form.Label.
		Foreground(highlightColor).
		Bold(true)

	s.Form.Value = r.NewStyle()

	s.Form.Disabled = r.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	s.Form.Selected = r.NewStyle().
		Foreground(selectorColor).
		Bold(true)

	s.Form.Section = r.NewStyle().
		MarginTop(1).
		Bold(true)

	s.Form.Hint = r.NewStyle().
		MarginTop(1).
		Foreground(lipgloss.Color("241"))

	s.Logs.Base = r.NewStyle()

	s.Logs.Title = s.Title

	s.Logs.Count = r.NewStyle().
		MarginLeft(1).
		Foreground(lipgloss.Color("243"))

	s.Logs.Entry = r.NewStyle().
		PaddingLeft(1).
		MarginBottom(1).
		Border(lipgloss.Border{Left: " "}, false, false, false, true)

	s.Logs.Active = s.Logs.Entry.
		BorderStyle(lipgloss.Border{Left: "┃"}).
		BorderForeground(selectorColor)

	s.Logs.Label = r.NewStyle().
		Width(12).
		Foreground(lipgloss.Color("243"))

	s.Logs.Value = r.NewStyle().
		Foreground(lipgloss.Color("252"))

	s.Logs.ErrorTitle = r.NewStyle().
		Foreground(errorColor).
		Bold(true)

	s.Logs.ErrorBody = r.NewStyle().
		Foreground(lipgloss.Color("252")).
		MarginLeft(2)

	s.Logs.Payload = r.NewStyle().
		MarginTop(1).
		MarginLeft(2)

	toast := r.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("230"))

	s.Toast.Info = toast.Background(lipgloss.Color("62"))
	s.Toast.Success = toast.Background(successColor)
	s.Toast.Error = toast.Background(errorColor)

	s.Dialog.Base = r.NewStyle().
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(errorColor)

	s.Dialog.Title = r.NewStyle().
		Bold(true).
		Foreground(errorColor)

	s.Dialog.Body = r.NewStyle().
		MarginTop(1).
		MarginBottom(1)

	s.Dialog.Button = r.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.Error = r.NewStyle().
		MarginTop(2)

	s.ErrorTitle = r.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("204")).
		Bold(true).
		Padding(0, 1)

	s.ErrorBody = r.NewStyle().
		Foreground(lipgloss.Color("252")).
		MarginLeft(2)

	return s
}
