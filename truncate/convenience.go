package truncate

import (
	"html"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/randalmurphal/htmlkit/internal/markup"
)

// HTML truncates source to length visible characters, splitting words if needed.
func HTML(source string, length int) (string, error) {
	return New().Truncate(source, length)
}

// HTMLWords truncates source to length visible characters without splitting
// words. A word that does not fit is dropped whole.
func HTMLWords(source string, length int) (string, error) {
	return New().WithBreakWords(false).Truncate(source, length)
}

// Preview truncates source for display and never fails. Whole words are kept
// and suffix is appended after a cut. If source is malformed it falls back to
// a plain-text cut of the tag-stripped text, escaped so it is safe to embed.
func Preview(source string, length int, suffix string) string {
	tr := New().WithBreakWords(false).WithSuffix(suffix)
	out, err := tr.Truncate(source, length)
	if err == nil {
		return out
	}

	slog.Debug("html truncation failed, falling back to plain text",
		slog.Any("error", err),
		slog.Int("length", length))
	return PlainText(source, length, suffix)
}

// entityRef matches a complete named or numeric character reference.
var entityRef = regexp.MustCompile(`^&(?:[A-Za-z][A-Za-z0-9]{0,31}|#[0-9]{1,7}|#[xX][0-9A-Fa-f]{1,6});`)

// PlainText strips tags from source and cuts the remaining text to length
// characters, escaping the result. Well-formed entity references are kept as
// written and count as one character; any other '&' is escaped.
func PlainText(source string, length int, suffix string) string {
	return RunPlainText(source, length, suffix).HTML
}

// RunPlainText is like PlainText but also reports whether a cut happened and
// how many characters were kept.
func RunPlainText(source string, length int, suffix string) Result {
	if length < 0 {
		length = 0
	}

	text := StripTags(source)
	var b strings.Builder
	b.Grow(len(text))

	res := Result{}
	for i := 0; i < len(text); {
		if res.Visible >= length {
			res.Truncated = true
			break
		}
		if ref := entityRef.FindString(text[i:]); ref != "" {
			b.WriteString(ref)
			i += len(ref)
		} else {
			r, size := utf8.DecodeRuneInString(text[i:])
			b.WriteString(html.EscapeString(string(r)))
			i += size
		}
		res.Visible++
	}

	if res.Truncated {
		b.WriteString(suffix)
	}
	res.HTML = b.String()
	return res
}

// StripTags drops tags and comments from source, keeping everything else.
func StripTags(source string) string {
	if source == "" {
		return source
	}

	src := []rune(source)
	var b strings.Builder
	b.Grow(len(source))

	for i := 0; i < len(src); {
		switch {
		case src[i] != '<' || markup.LiteralAt(src, i):
			b.WriteRune(src[i])
			i++
		case markup.CommentAt(src, i):
			i = markup.CommentEnd(src, i)
		default:
			i = markup.TagEnd(src, i)
		}
	}
	return b.String()
}
