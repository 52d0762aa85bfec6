package truncate

// DefaultEllipsis is a common suffix for truncated previews.
const DefaultEllipsis = "…"

// Truncator cuts HTML down to a visible-character budget while keeping the
// output well formed. A Truncator holds only configuration; every call to
// Truncate runs with fresh state, so one value may be shared across goroutines
// once it is configured.
type Truncator struct {
	breakWords bool
	suffix     Suffix
}

// Result is the outcome of a single truncation.
type Result struct {
	// HTML is the truncated, re-closed markup including any suffix.
	HTML string

	// Truncated is true when visible content was withheld.
	Truncated bool

	// Visible is the number of visible characters in HTML, suffix excluded.
	Visible int
}

// New creates a truncator that may split words and appends no suffix.
func New() *Truncator {
	return &Truncator{
		breakWords: true,
	}
}

// WithBreakWords controls whether a word may be cut at the exact character
// that exhausts the budget. When false, a word that does not fit is dropped
// whole.
func (t *Truncator) WithBreakWords(breakWords bool) *Truncator {
	t.breakWords = breakWords
	return t
}

// WithSuffix sets literal text appended after a cut.
func (t *Truncator) WithSuffix(suffix string) *Truncator {
	t.suffix = SuffixText(suffix)
	return t
}

// WithSuffixFunc sets a callback producing the text appended after a cut.
// The callback runs at most once per call and only when content was cut.
func (t *Truncator) WithSuffixFunc(fn func() string) *Truncator {
	t.suffix = SuffixFunc(fn)
	return t
}

// WithSuffixValue sets the suffix from an existing Suffix value.
func (t *Truncator) WithSuffixValue(suffix Suffix) *Truncator {
	t.suffix = suffix
	return t
}

// Truncate shortens source to at most length visible characters.
// Tags and comments are free; an entity reference counts as one character.
// Tags left open at the cut are closed in reverse order. A *MarkupError is
// returned for an unbalanced close tag or an unterminated entity, in which
// case no partial output is produced.
func (t *Truncator) Truncate(source string, length int) (string, error) {
	res, err := t.Run(source, length)
	if err != nil {
		return "", err
	}
	return res.HTML, nil
}

// Run is like Truncate but also reports whether a cut happened.
func (t *Truncator) Run(source string, length int) (Result, error) {
	if length < 0 {
		length = 0
	}

	s := newScanner([]rune(source), length, t.breakWords)
	if err := s.run(); err != nil {
		return Result{}, err
	}

	res := Result{
		Truncated: s.truncated(),
		Visible:   s.current,
	}
	if res.Truncated && !t.suffix.IsZero() {
		s.out.WriteString(t.suffix.Resolve())
	}
	res.HTML = s.out.String()
	return res, nil
}

// BreakWords returns whether words may be split at the cut.
func (t *Truncator) BreakWords() bool {
	return t.breakWords
}

// Suffix returns the configured suffix.
func (t *Truncator) Suffix() Suffix {
	return t.suffix
}
