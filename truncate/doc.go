// Package truncate shortens HTML fragments to a visible-character budget
// without breaking the markup.
//
// Only text counts toward the budget. Tags and comments are copied for free,
// and an entity reference such as &amp; counts as one character no matter
// how long it is. Tags are never split and entities are never cut in half.
// Any tag still open at the cut is closed in reverse order.
//
// # Basic Usage
//
//	out, err := truncate.HTML("<p>Hello World</p>", 7)
//	// out == "<p>Hello W</p>"
//
//	out, err = truncate.HTMLWords("<p>Hello World</p>", 7)
//	// out == "<p>Hello</p>"
//
// # Configuring a Truncator
//
//	tr := truncate.New().
//	    WithBreakWords(false).
//	    WithSuffix(truncate.DefaultEllipsis)
//	out, err := tr.Truncate(source, 120)
//
// The suffix is appended after the closing tags, and only when content was
// actually withheld. WithSuffixFunc defers building it until a cut happens.
//
// Open tags and comments are written lazily: they are emitted only once some
// content after them makes it into the output, so a cut never leaves an empty
// element behind. When nothing is cut, trailing markup is kept as written.
//
// # Errors
//
// The scanner is forgiving. It fails only on a close tag that matches no open
// tag (ErrUnbalancedTag) and on an entity reference with no terminating ';'
// (ErrUnterminatedEntity), and only while budget remains. Once the budget is
// spent a stray close tag just marks the cut. Both errors are reported as
// *MarkupError and match ErrMalformedMarkup. Preview never fails; it falls
// back to PlainText.
//
// # Unicode
//
// The budget is measured in Unicode code points, not bytes.
package truncate
