package visible

import (
	"github.com/randalmurphal/htmlkit/internal/markup"
)

// Counter measures the visible length of HTML text.
type Counter interface {
	// Count returns the number of visible characters in the given text.
	Count(text string) int

	// FitsInLimit returns true if the text shows no more than limit characters.
	FitsInLimit(text string, limit int) bool
}

// HTMLCounter counts visible characters the way the truncate package
// spends its budget: tags and comments are free and an entity reference
// counts as one character.
type HTMLCounter struct{}

// NewCounter creates an HTML-aware counter.
func NewCounter() *HTMLCounter {
	return &HTMLCounter{}
}

// Count returns the number of visible characters in text.
// An entity with no terminating ';' is counted rune by rune.
func (c *HTMLCounter) Count(text string) int {
	src := []rune(text)
	n := 0
	for i := 0; i < len(src); {
		switch {
		case src[i] == '<' && !markup.LiteralAt(src, i):
			if markup.CommentAt(src, i) {
				i = markup.CommentEnd(src, i)
			} else {
				i = markup.TagEnd(src, i)
			}
			continue
		case src[i] == '&':
			if end := markup.EntityEnd(src, i); end >= 0 {
				i = end + 1
				n++
				continue
			}
		}
		n++
		i++
	}
	return n
}

// FitsInLimit returns true if text shows no more than limit characters.
func (c *HTMLCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// Count is a convenience function using the default counter.
func Count(text string) int {
	return NewCounter().Count(text)
}
