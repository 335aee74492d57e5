package webhook

import (
	"bytes"
	"encoding/json"
	"strings"
)

// JSONText is a string that may or may not hold JSON. Raw is always set;
// Value is set only when Raw decoded successfully.
type JSONText struct {
	Raw   string
	Value any
	ok    bool
}

// DecodeJSON tries to decode s. A failure is not an error: the result simply
// reports Valid() == false and keeps the raw text.
func DecodeJSON(s string) JSONText {
	j := JSONText{Raw: s}
	if strings.TrimSpace(s) == "" {
		return j
	}
	d := json.NewDecoder(strings.NewReader(s))
	d.UseNumber()
	if err := d.Decode(&j.Value); err != nil || d.More() {
		j.Value = nil
		return j
	}
	j.ok = true
	return j
}

// Valid reports whether the text is JSON.
func (j JSONText) Valid() bool {
	return j.ok
}

func (j JSONText) lookup(path ...string) (any, bool) {
	if !j.ok {
		return nil, false
	}
	v := j.Value
	for _, p := range path {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		if v, ok = m[p]; !ok {
			return nil, false
		}
	}
	return v, true
}

// String returns the string at the given object path, or an empty string.
func (j JSONText) String(path ...string) string {
	v, _ := j.lookup(path...)
	s, _ := v.(string)
	return s
}

// Number returns the number at the given object path.
func (j JSONText) Number(path ...string) (float64, bool) {
	v, ok := j.lookup(path...)
	if !ok {
		return 0, false
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	return f, err == nil
}

// Indent returns the text pretty-printed with two-space indentation, or the
// raw text when it is not JSON.
func (j JSONText) Indent() string {
	if !j.ok {
		return j.Raw
	}
	var b bytes.Buffer
	if err := json.Indent(&b, []byte(j.Raw), "", "  "); err != nil {
		return j.Raw
	}
	return b.String()
}
