package truncate

import (
	"errors"
	"fmt"
)

// ErrMalformedMarkup is the category every markup failure belongs to.
var ErrMalformedMarkup = errors.New("malformed markup")

// Sentinel errors for truncation. Both match ErrMalformedMarkup via errors.Is.
var (
	// ErrUnbalancedTag is returned when a close tag matches no open tag.
	ErrUnbalancedTag = fmt.Errorf("%w: unbalanced close tag", ErrMalformedMarkup)

	// ErrUnterminatedEntity is returned when input ends inside an entity reference.
	ErrUnterminatedEntity = fmt.Errorf("%w: unterminated entity reference", ErrMalformedMarkup)
)

// MarkupError describes where in the source a markup failure was detected.
type MarkupError struct {
	Offset int    // Code point offset of the offending '<' or '&'
	Tag    string // Close tag name, empty for entity errors
	Err    error  // ErrUnbalancedTag or ErrUnterminatedEntity
}

// Error implements the error interface.
func (e *MarkupError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("%v </%s> at offset %d", e.Err, e.Tag, e.Offset)
	}
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

// Unwrap returns the underlying sentinel for errors.Is/As support.
func (e *MarkupError) Unwrap() error {
	return e.Err
}

// IsMalformed checks whether err was caused by malformed markup.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedMarkup)
}
