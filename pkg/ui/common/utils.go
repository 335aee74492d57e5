package common

import (
	"strings"

	"github.com/muesli/reflow/truncate"
)

// TruncateString fits s on a single line of at most max cells. Runs of
// whitespace, line breaks included, collapse to one space and the cut is
// marked with "…".
func TruncateString(s string, max int) string { //nolint:revive
	if max < 0 {
		max = 0 //nolint:revive
	}
	s = strings.Join(strings.Fields(s), " ")
	return truncate.StringWithTail(s, uint(max), "…") //nolint:gosec
}
