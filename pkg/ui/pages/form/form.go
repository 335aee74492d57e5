// Package form implements the webhook create/edit form and its trigger
// editor.
package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wabridge/hookctl/pkg/ui/common"
	"github.com/wabridge/hookctl/pkg/webhook"
)

// SubmitMsg is sent when the form is submitted.
type SubmitMsg struct {
	Draft webhook.Draft
}

// CancelMsg is sent when the form is closed without submitting.
type CancelMsg struct{}

const (
	fieldName = iota
	fieldURL
	fieldSecret
	fieldEnabled
	fieldRows
)

const (
	rowType = iota
	rowMatch
	rowValue
	rowFields
)

// Form edits a webhook draft.
type Form struct {
	common  common.Common
	id      int64
	name    textinput.Model
	url     textinput.Model
	secret  textinput.Model
	enabled bool
	rows    []*row
	focus   int
}

// New returns a new form reset for creation.
func New(c common.Common) *Form {
	f := &Form{common: c}
	f.name = f.newInput("My webhook", 128)
	f.url = f.newInput("https://example.com/webhook", 2048)
	f.secret = f.newInput("Optional", 256)
	f.secret.EchoMode = textinput.EchoPassword
	f.secret.EchoCharacter = '•'
	f.Reset()
	return f
}

func (f *Form) newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	if cfg := f.common.Config(); cfg != nil && cfg.UI.StaticCursor {
		ti.Cursor.SetMode(cursor.CursorStatic)
	}
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

// Reset clears the form for a new webhook: one "all" trigger row, enabled.
func (f *Form) Reset() {
	f.setDraft(webhook.NewDraft())
}

// Load fills the form from an existing webhook.
func (f *Form) Load(w webhook.Webhook) {
	f.setDraft(webhook.DraftFrom(w))
}

func (f *Form) setDraft(d webhook.Draft) {
	f.id = d.ID
	f.name.SetValue(d.Name)
	f.url.SetValue(d.URL)
	f.secret.SetValue(d.Secret)
	f.enabled = d.Enabled
	f.rows = make([]*row, 0, len(d.Triggers))
	for _, in := range d.Triggers {
		f.rows = append(f.rows, f.newRow(in))
	}
	if len(f.rows) == 0 {
		f.rows = append(f.rows, f.newRow(webhook.TriggerInput{Type: webhook.TriggerAll, Match: webhook.MatchExact}))
	}
	f.setFocus(fieldName)
}

// Draft returns the current content of the form.
func (f *Form) Draft() webhook.Draft {
	d := webhook.Draft{
		ID:       f.id,
		Name:     f.name.Value(),
		URL:      f.url.Value(),
		Secret:   f.secret.Value(),
		Enabled:  f.enabled,
		Triggers: make([]webhook.TriggerInput, len(f.rows)),
	}
	for i, r := range f.rows {
		d.Triggers[i] = r.input()
	}
	return d
}

// IsUpdate reports whether the form edits an existing webhook.
func (f *Form) IsUpdate() bool {
	return f.id != 0
}

// Rows returns the number of trigger rows.
func (f *Form) Rows() int {
	return len(f.rows)
}

// AddRow appends a trigger row and focuses it.
func (f *Form) AddRow() {
	f.rows = append(f.rows, f.newRow(webhook.TriggerInput{Type: webhook.TriggerAll, Match: webhook.MatchExact}))
	f.setFocus(fieldRows + (len(f.rows)-1)*rowFields + rowType)
}

// RemoveRow removes the trigger row at i. The last remaining row is never
// removed.
func (f *Form) RemoveRow(i int) {
	if len(f.rows) <= 1 || i < 0 || i >= len(f.rows) {
		return
	}
	f.rows = append(f.rows[:i], f.rows[i+1:]...)
	if i >= len(f.rows) {
		i = len(f.rows) - 1
	}
	f.setFocus(fieldRows + i*rowFields + rowType)
}

// SetTriggerType sets the type of row i.
func (f *Form) SetTriggerType(i int, t webhook.TriggerType) {
	if i < 0 || i >= len(f.rows) {
		return
	}
	f.rows[i].typ = t
	f.rows[i].sync()
}

// SetTriggerValue sets the value of row i. Rows of type "all" stay empty.
func (f *Form) SetTriggerValue(i int, v string) {
	if i < 0 || i >= len(f.rows) || !f.rows[i].valueEnabled() {
		return
	}
	f.rows[i].value.SetValue(v)
}

// SetFields sets the name, URL and secret inputs.
func (f *Form) SetFields(name, url, secret string) {
	f.name.SetValue(name)
	f.url.SetValue(url)
	f.secret.SetValue(secret)
}

// SetSize implements common.Component.
func (f *Form) SetSize(width, height int) {
	f.common.SetSize(width, height)
	w := width - f.common.Styles.Form.Base.GetHorizontalFrameSize() - f.common.Styles.Form.Label.GetWidth() - 1
	if w < 10 {
		w = 10
	}
	f.name.Width = w
	f.url.Width = w
	f.secret.Width = w
	for _, r := range f.rows {
		r.value.Width = w / 2
	}
}

// ShortHelp implements help.KeyMap.
func (f *Form) ShortHelp() []key.Binding {
	k := f.common.KeyMap
	return []key.Binding{k.NextField, k.Submit, k.AddTrigger, k.RemoveTrigger, k.Back}
}

// FullHelp implements help.KeyMap.
func (f *Form) FullHelp() [][]key.Binding {
	k := f.common.KeyMap
	return [][]key.Binding{
		{k.NextField, k.PrevField},
		{k.CycleNext, k.Check},
		{k.AddTrigger, k.RemoveTrigger},
		{k.Submit, k.Back},
	}
}

// Init implements tea.Model.
func (f *Form) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (f *Form) Update(msg tea.Msg) (common.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.updateInput(msg)
	}

	k := f.common.KeyMap
	switch {
	case key.Matches(km, k.Back):
		return f, func() tea.Msg { return CancelMsg{} }
	case key.Matches(km, k.Submit), km.Type == tea.KeyEnter:
		d := f.Draft()
		return f, func() tea.Msg { return SubmitMsg{Draft: d} }
	case key.Matches(km, k.NextField):
		f.moveFocus(1)
		return f, nil
	case key.Matches(km, k.PrevField):
		f.moveFocus(-1)
		return f, nil
	case key.Matches(km, k.AddTrigger):
		f.AddRow()
		return f, nil
	case key.Matches(km, k.RemoveTrigger):
		i, _ := f.focusedRow()
		if i < 0 {
			i = len(f.rows) - 1
		}
		f.RemoveRow(i)
		return f, nil
	}

	if i, field := f.focusedRow(); i >= 0 && field != rowValue {
		r := f.rows[i]
		step := 0
		switch {
		case key.Matches(km, k.CycleNext), key.Matches(km, k.Check):
			step = 1
		case key.Matches(km, k.CyclePrev):
			step = -1
		}
		if step != 0 {
			switch field {
			case rowType:
				if step > 0 {
					r.typ = r.typ.Next()
				} else {
					r.typ = r.typ.Prev()
				}
				r.sync()
			case rowMatch:
				if step > 0 {
					r.match = r.match.Next()
				} else {
					r.match = r.match.Prev()
				}
			}
		}
		return f, nil
	}

	if f.focus == fieldEnabled {
		if key.Matches(km, k.Check) {
			f.enabled = !f.enabled
		}
		return f, nil
	}

	return f, f.updateInput(msg)
}

func (f *Form) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldURL:
		f.url, cmd = f.url.Update(msg)
	case fieldSecret:
		f.secret, cmd = f.secret.Update(msg)
	default:
		if i, field := f.focusedRow(); i >= 0 && field == rowValue {
			f.rows[i].value, cmd = f.rows[i].value.Update(msg)
		}
	}
	return cmd
}

// focusedRow returns the focused row and field, or -1 when the focus is
// not on a trigger row.
func (f *Form) focusedRow() (int, int) {
	if f.focus < fieldRows {
		return -1, -1
	}
	n := f.focus - fieldRows
	return n / rowFields, n % rowFields
}

func (f *Form) fieldCount() int {
	return fieldRows + len(f.rows)*rowFields
}

// focusable reports whether the field at i can receive focus.
func (f *Form) focusable(i int) bool {
	if i < fieldRows {
		return true
	}
	n := i - fieldRows
	if n%rowFields == rowValue {
		return f.rows[n/rowFields].valueEnabled()
	}
	return true
}

func (f *Form) moveFocus(step int) {
	n := f.fieldCount()
	i := f.focus
	for range n {
		i = (i + step + n) % n
		if f.focusable(i) {
			break
		}
	}
	f.setFocus(i)
}

func (f *Form) setFocus(i int) {
	f.focus = i
	f.name.Blur()
	f.url.Blur()
	f.secret.Blur()
	for _, r := range f.rows {
		r.value.Blur()
	}
	switch i {
	case fieldName:
		f.name.Focus()
	case fieldURL:
		f.url.Focus()
	case fieldSecret:
		f.secret.Focus()
	default:
		if r, field := f.focusedRow(); r >= 0 && field == rowValue {
			f.rows[r].value.Focus()
		}
	}
}

// View implements tea.Model.
func (f *Form) View() string {
	st := f.common.Styles.Form
	title := "Add Webhook"
	submit := "Create Webhook"
	if f.IsUpdate() {
		title = "Edit Webhook"
		submit = "Update Webhook"
	}

	label := func(i int, s string) string {
		if f.focus == i {
			return st.ActiveLabel.Render(s)
		}
		return st.Label.Render(s)
	}

	enabled := "[ ] Enabled"
	if f.enabled {
		enabled = "[x] Enabled"
	}
	if f.focus == fieldEnabled {
		enabled = st.Selected.Render(enabled)
	}

	lines := []string{
		st.Title.Render(title),
		label(fieldName, "Name") + " " + f.name.View(),
		label(fieldURL, "URL") + " " + f.url.View(),
		label(fieldSecret, "Secret") + " " + f.secret.View(),
		label(fieldEnabled, "") + " " + enabled,
		st.Section.Render("Triggers"),
	}

	for i, r := range f.rows {
		base := fieldRows + i*rowFields
		typ := fmt.Sprintf("‹ %s ›", r.typ.Label())
		if f.focus == base+rowType {
			typ = st.Selected.Render(typ)
		}
		match := fmt.Sprintf("‹ %s ›", r.match.Label())
		if f.focus == base+rowMatch {
			match = st.Selected.Render(match)
		}
		value := r.value.View()
		if !r.valueEnabled() {
			value = st.Disabled.Render(r.value.Placeholder)
		}
		lines = append(lines, label(base, fmt.Sprintf("#%d", i+1))+" "+
			strings.Join([]string{typ, match, value}, "  "))
	}

	lines = append(lines, st.Hint.Render(fmt.Sprintf("ctrl+s %s • esc cancel", submit)))
	return st.Base.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
