package webhook

import (
	"errors"
	"strings"

	"github.com/samber/lo"
)

// TriggerType is the kind of condition a trigger matches on.
type TriggerType string

const (
	// TriggerAll matches every message.
	TriggerAll TriggerType = "all"
	// TriggerChatJID matches messages from a specific chat.
	TriggerChatJID TriggerType = "chat_jid"
	// TriggerSender matches messages from a specific sender.
	TriggerSender TriggerType = "sender"
	// TriggerKeyword matches messages containing a keyword.
	TriggerKeyword TriggerType = "keyword"
	// TriggerMediaType matches messages carrying a media type.
	TriggerMediaType TriggerType = "media_type"
)

var triggerTypes = []TriggerType{
	TriggerAll,
	TriggerChatJID,
	TriggerSender,
	TriggerKeyword,
	TriggerMediaType,
}

var triggerTypeLabels = map[TriggerType]string{
	TriggerAll:       "All Messages",
	TriggerChatJID:   "Specific Chat",
	TriggerSender:    "Specific Sender",
	TriggerKeyword:   "Keyword",
	TriggerMediaType: "Media Type",
}

// ErrInvalidTriggerType is returned when a trigger type is unknown.
var ErrInvalidTriggerType = errors.New("invalid trigger type")

// TriggerTypes returns all trigger types in display order.
func TriggerTypes() []TriggerType {
	return append([]TriggerType(nil), triggerTypes...)
}

// ParseTriggerType parses a trigger type.
func ParseTriggerType(s string) (TriggerType, error) {
	t := TriggerType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidTriggerType
	}
	return t, nil
}

// IsValid reports whether t is a known trigger type.
func (t TriggerType) IsValid() bool {
	_, ok := triggerTypeLabels[t]
	return ok
}

// Label returns the human-readable name of the trigger type.
func (t TriggerType) Label() string {
	if l, ok := triggerTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Next returns the trigger type after t, wrapping around.
func (t TriggerType) Next() TriggerType {
	return cycle(triggerTypes, t, 1)
}

// Prev returns the trigger type before t, wrapping around.
func (t TriggerType) Prev() TriggerType {
	return cycle(triggerTypes, t, -1)
}

// MatchType is how a trigger value is compared.
type MatchType string

const (
	// MatchExact requires the value to be equal.
	MatchExact MatchType = "exact"
	// MatchContains requires the value to be a substring.
	MatchContains MatchType = "contains"
	// MatchRegex treats the value as a regular expression.
	MatchRegex MatchType = "regex"
)

var matchTypes = []MatchType{
	MatchExact,
	MatchContains,
	MatchRegex,
}

var matchTypeLabels = map[MatchType]string{
	MatchExact:    "Exact",
	MatchContains: "Contains",
	MatchRegex:    "Regex",
}

// ErrInvalidMatchType is returned when a match type is unknown.
var ErrInvalidMatchType = errors.New("invalid match type")

// MatchTypes returns all match types in display order.
func MatchTypes() []MatchType {
	return append([]MatchType(nil), matchTypes...)
}

// ParseMatchType parses a match type.
func ParseMatchType(s string) (MatchType, error) {
	m := MatchType(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", ErrInvalidMatchType
	}
	return m, nil
}

// IsValid reports whether m is a known match type.
func (m MatchType) IsValid() bool {
	_, ok := matchTypeLabels[m]
	return ok
}

// Label returns the human-readable name of the match type.
func (m MatchType) Label() string {
	if l, ok := matchTypeLabels[m]; ok {
		return l
	}
	return string(m)
}

// Next returns the match type after m, wrapping around.
func (m MatchType) Next() MatchType {
	return cycle(matchTypes, m, 1)
}

// Prev returns the match type before m, wrapping around.
func (m MatchType) Prev() MatchType {
	return cycle(matchTypes, m, -1)
}

func cycle[T comparable](all []T, cur T, step int) T {
	i := lo.IndexOf(all, cur)
	if i < 0 {
		return all[0]
	}
	n := len(all)
	return all[((i+step)%n+n)%n]
}

// Trigger is a condition that fires a webhook.
type Trigger struct {
	Type    TriggerType `json:"trigger_type"`
	Value   string      `json:"trigger_value"`
	Match   MatchType   `json:"match_type"`
	Enabled bool        `json:"enabled"`
}

// Normalize returns the trigger with an "all" trigger's value cleared and a
// missing match type defaulted to exact.
func (t Trigger) Normalize() Trigger {
	if t.Type == TriggerAll {
		t.Value = ""
	}
	if t.Match == "" {
		t.Match = MatchExact
	}
	return t
}

// String returns a short description of the trigger.
func (t Trigger) String() string {
	if t.Type == TriggerAll {
		return "All messages"
	}
	return string(t.Type) + ": " + t.Value
}

// TriggerInput is one row of trigger input as entered by a user.
type TriggerInput struct {
	Type  TriggerType
	Value string
	Match MatchType
}

// CollectTriggers turns trigger rows into triggers. A row is kept when its
// type is "all" or its trimmed value is non-empty. Kept triggers are
// normalized and enabled.
func CollectTriggers(rows []TriggerInput) []Trigger {
	return lo.FilterMap(rows, func(r TriggerInput, _ int) (Trigger, bool) {
		t := Trigger{
			Type:    r.Type,
			Value:   strings.TrimSpace(r.Value),
			Match:   r.Match,
			Enabled: true,
		}.Normalize()
		return t, t.Type == TriggerAll || t.Value != ""
	})
}

// FormatTriggers describes a list of triggers on one line.
func FormatTriggers(triggers []Trigger) string {
	if len(triggers) == 0 {
		return "No triggers configured"
	}
	return strings.Join(lo.Map(triggers, func(t Trigger, _ int) string {
		return t.String()
	}), ", ")
}
