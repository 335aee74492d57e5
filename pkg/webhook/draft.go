package webhook

import "strings"

// Draft is a webhook as entered in a form, before normalization and
// validation.
type Draft struct {
	// ID is the webhook being edited, zero when creating.
	ID       int64
	Name     string
	URL      string
	Secret   string
	Enabled  bool
	Triggers []TriggerInput
}

// NewDraft returns an empty draft with one "all" trigger row, enabled.
func NewDraft() Draft {
	return Draft{
		Enabled: true,
		Triggers: []TriggerInput{
			{Type: TriggerAll, Match: MatchExact},
		},
	}
}

// DraftFrom returns a draft pre-populated from w. A webhook without triggers
// gets one default row.
func DraftFrom(w Webhook) Draft {
	d := Draft{
		ID:      w.ID,
		Name:    w.Name,
		URL:     w.URL,
		Secret:  w.SecretToken,
		Enabled: w.Enabled,
	}
	for _, t := range w.Triggers {
		t = t.Normalize()
		d.Triggers = append(d.Triggers, TriggerInput{
			Type:  t.Type,
			Value: t.Value,
			Match: t.Match,
		})
	}
	if len(d.Triggers) == 0 {
		d.Triggers = NewDraft().Triggers
	}
	return d
}

// IsUpdate reports whether the draft edits an existing webhook.
func (d Draft) IsUpdate() bool {
	return d.ID != 0
}

// Submission trims and collects the draft into a webhook and validates it.
// The returned error is one of ErrNameRequired, ErrURLRequired,
// ErrInvalidURL or ErrNoTriggers.
func (d Draft) Submission() (Webhook, error) {
	w := Webhook{
		ID:          d.ID,
		Name:        strings.TrimSpace(d.Name),
		URL:         strings.TrimSpace(d.URL),
		SecretToken: strings.TrimSpace(d.Secret),
		Enabled:     d.Enabled,
		Triggers:    CollectTriggers(d.Triggers),
	}
	if err := w.Validate(); err != nil {
		return Webhook{}, err
	}
	return w, nil
}
