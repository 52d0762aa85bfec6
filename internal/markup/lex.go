// Package markup holds the code-point level lexing rules shared by the
// truncator and the visible-character counter. Both must classify input the
// same way, otherwise a budget computed by one disagrees with the other.
package markup

import "unicode"

// CommentAt reports whether src[i:] starts with "<!--".
func CommentAt(src []rune, i int) bool {
	return i+3 < len(src) &&
		src[i] == '<' && src[i+1] == '!' && src[i+2] == '-' && src[i+3] == '-'
}

// CommentEnd returns the index just past the comment starting at i.
//
// The terminator check looks at the cursor and the two runes behind it, and
// that look-behind may reach into the "<!--" opener, so "<!-->" and "<!--->"
// are complete comments. An unterminated comment runs to the end of input.
func CommentEnd(src []rune, i int) int {
	for j := i + 4; j < len(src); j++ {
		if src[j] == '>' && src[j-1] == '-' && src[j-2] == '-' {
			return j + 1
		}
	}
	return len(src)
}

// LiteralAt reports whether the '<' at i is plain visible text rather than
// the start of a tag or comment: a bare "<!" that does not open a comment,
// or a '<' that is the last rune of the input.
func LiteralAt(src []rune, i int) bool {
	if i+1 >= len(src) {
		return true
	}
	return src[i+1] == '!' && !CommentAt(src, i)
}

// TagEnd returns the index just past the first '>' after i, or len(src) when
// the tag is never closed.
func TagEnd(src []rune, i int) int {
	for j := i + 1; j < len(src); j++ {
		if src[j] == '>' {
			return j + 1
		}
	}
	return len(src)
}

// EntityEnd returns the index of the ';' terminating the entity reference
// that starts at i, or -1 if the input ends first.
func EntityEnd(src []rune, i int) int {
	for j := i + 1; j < len(src); j++ {
		if src[j] == ';' {
			return j
		}
	}
	return -1
}

// IsSpace matches the whitespace set HTML text cares about.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// IsWordRune reports whether r extends a word.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
