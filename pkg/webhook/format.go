package webhook

import (
	"time"
	"unicode/utf8"
)

// PreviewLength is the number of characters kept by response previews.
const PreviewLength = 100

// Preview returns the first n characters of s, followed by "..." when s is
// longer.
func Preview(s string, n int) string {
	if n < 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "..."
}

// FormatDate formats a server timestamp in local time. It returns "Unknown"
// for an empty value and "Invalid date" when it cannot be parsed.
func FormatDate(s string) string {
	if s == "" {
		return "Unknown"
	}
	t, ok := ParseTime(s)
	if !ok {
		return "Invalid date"
	}
	return t.Local().Format(time.DateTime)
}
