package truncate

// Suffix is the text appended after a cut. The zero value appends nothing.
type Suffix struct {
	text string
	fn   func() string
	set  bool
}

// SuffixText returns a Suffix that always appends s.
func SuffixText(s string) Suffix {
	return Suffix{text: s, set: true}
}

// SuffixFunc returns a Suffix produced by fn at the moment a cut happens.
// A nil fn is the same as no suffix.
func SuffixFunc(fn func() string) Suffix {
	if fn == nil {
		return Suffix{}
	}
	return Suffix{fn: fn, set: true}
}

// IsZero reports whether no suffix is configured.
func (s Suffix) IsZero() bool {
	return !s.set
}

// Resolve returns the suffix text, invoking the callback if there is one.
func (s Suffix) Resolve() string {
	if s.fn != nil {
		return s.fn()
	}
	return s.text
}
