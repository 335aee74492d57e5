package common

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2/lexers"
	gansi "github.com/charmbracelet/glamour/ansi"
	"github.com/muesli/termenv"
)

// FormatHighlight adds syntax highlighting to a string. The language is
// looked up by name, e.g. "json".
func FormatHighlight(profile termenv.Profile, lang, c string) (string, error) {
	zero := uint(0)
	if lexer := lexers.Get(lang); lexer != nil && lexer.Config() != nil {
		lang = lexer.Config().Name
	}
	formatter := &gansi.CodeBlockElement{
		Code:     c,
		Language: lang,
	}
	r := strings.Builder{}
	styles := StyleConfig()
	styles.CodeBlock.Margin = &zero
	rctx := StyleRendererWithStyles(profile, styles)
	err := formatter.Render(&r, rctx)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// Sentence upper-cases the first letter of s.
func Sentence(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
