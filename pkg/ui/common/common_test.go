package common_test

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/muesli/termenv"
	"github.com/wabridge/hookctl/pkg/ui/common"
)

func TestFormatHighlight(t *testing.T) {
	is := is.New(t)
	out, err := common.FormatHighlight(termenv.Ascii, "json", `{"a": 1}`)
	is.NoErr(err)
	is.True(strings.Contains(out, `"a"`))
}

func TestSentence(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"webhook name is required", "Webhook name is required"},
		{"éclair", "Éclair"},
		{"Already", "Already"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			is := is.New(t)
			is.Equal(common.Sentence(c.in), c.want)
		})
	}
}

func TestTruncateString(t *testing.T) {
	is := is.New(t)
	is.Equal(common.TruncateString("hello world", 6), "hello…")
	is.Equal(common.TruncateString("hi", 6), "hi")
	is.Equal(common.TruncateString("hi", -1), "…")
	is.Equal(common.TruncateString("HTTP 500 - upstream\n  timed out", 40), "HTTP 500 - upstream timed out")
}
