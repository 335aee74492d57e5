package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/wabridge/hookctl/pkg/webhook"
)

const (
	valuePlaceholder    = "Trigger value"
	allValuePlaceholder = `No value needed for "all messages"`
)

// row is a trigger row of the form.
type row struct {
	typ   webhook.TriggerType
	match webhook.MatchType
	value textinput.Model
}

func (f *Form) newRow(in webhook.TriggerInput) *row {
	r := &row{
		typ:   in.Type,
		match: in.Match,
		value: f.newInput(valuePlaceholder, 256),
	}
	if !r.typ.IsValid() {
		r.typ = webhook.TriggerAll
	}
	if !r.match.IsValid() {
		r.match = webhook.MatchExact
	}
	r.value.SetValue(in.Value)
	r.sync()
	return r
}

// sync disables and clears the value input of "all" rows.
func (r *row) sync() {
	if r.typ == webhook.TriggerAll {
		r.value.SetValue("")
		r.value.Placeholder = allValuePlaceholder
		r.value.Blur()
		return
	}
	r.value.Placeholder = valuePlaceholder
}

// valueEnabled reports whether the value input accepts input.
func (r *row) valueEnabled() bool {
	return r.typ != webhook.TriggerAll
}

func (r *row) input() webhook.TriggerInput {
	return webhook.TriggerInput{
		Type:  r.typ,
		Value: r.value.Value(),
		Match: r.match,
	}
}
