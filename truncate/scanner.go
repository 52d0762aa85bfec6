package truncate

import (
	"strings"
	"unicode"

	"github.com/randalmurphal/htmlkit/internal/markup"
)

// pendingTag is markup that has been read but not yet written: an open tag,
// or a comment that sits between queued tags and the content after them.
type pendingTag struct {
	name        string
	raw         string // open tag: everything between '<' and '>'; comment: the whole comment
	selfClosing bool
	comment     bool
}

// scanner holds the state of one truncation pass.
type scanner struct {
	src        []rune
	length     int
	breakWords bool

	i       int    // read cursor
	current int    // visible characters written
	opened  []string
	pending []pendingTag
	word    []rune
	inWord  bool
	tail    bool // rest of src is known to be markup only
	out     strings.Builder
}

func newScanner(src []rune, length int, breakWords bool) *scanner {
	s := &scanner{
		src:        src,
		length:     length,
		breakWords: breakWords,
	}
	s.out.Grow(len(src))
	return s
}

func (s *scanner) run() error {
loop:
	for s.i < len(s.src) {
		if s.current >= s.length && !s.markupOnlyLeft() {
			break
		}

		switch r := s.src[s.i]; r {
		case '<':
			if !s.flush() {
				break loop
			}
			stop, err := s.scanMarkup()
			if err != nil {
				return err
			}
			if stop {
				break loop
			}
		case '&':
			if !s.flush() || s.current >= s.length {
				break loop
			}
			if err := s.scanEntity(); err != nil {
				return err
			}
		default:
			if !s.scanContent(r) {
				break loop
			}
		}
	}

	s.flush()
	if !s.truncated() {
		// nothing was cut, so trailing tags and comments are kept
		s.commit()
	}
	for i := len(s.opened) - 1; i >= 0; i-- {
		s.writeClose(s.opened[i])
	}
	s.opened = s.opened[:0]
	return nil
}

// truncated reports whether visible content was withheld.
func (s *scanner) truncated() bool {
	return s.i < len(s.src) || len(s.word) > 0
}

// markupOnlyLeft reports whether nothing visible remains, in which case the
// trailing tags and comments are passed through once the budget is spent.
func (s *scanner) markupOnlyLeft() bool {
	if s.tail {
		return true
	}
	if len(s.word) > 0 {
		return false
	}
	for j := s.i; j < len(s.src); {
		if s.src[j] != '<' || markup.LiteralAt(s.src, j) {
			return false
		}
		if markup.CommentAt(s.src, j) {
			j = markup.CommentEnd(s.src, j)
		} else {
			j = markup.TagEnd(s.src, j)
		}
	}
	s.tail = true
	return true
}

// scanMarkup handles the construct starting at the '<' under the cursor.
// It returns stop when a literal '<' no longer fits the budget, or when a
// stray close tag shows up after the budget is spent.
func (s *scanner) scanMarkup() (stop bool, err error) {
	switch {
	case markup.CommentAt(s.src, s.i):
		end := markup.CommentEnd(s.src, s.i)
		s.pending = append(s.pending, pendingTag{
			raw:     string(s.src[s.i:end]),
			comment: true,
		})
		s.i = end
	case markup.LiteralAt(s.src, s.i):
		if s.current >= s.length {
			return true, nil
		}
		s.commit()
		s.out.WriteRune('<')
		s.current++
		s.inWord = false
		s.i++
	case s.src[s.i+1] == '/':
		return s.closeTag()
	default:
		s.openTag()
	}
	return false, nil
}

// openTag queues the tag under the cursor. It is written by the next commit.
func (s *scanner) openTag() {
	end := markup.TagEnd(s.src, s.i)
	inner := s.src[s.i+1 : innerEnd(s.src, end)]
	s.i = end

	name := string(inner)
	raw := name
	if sep := indexSpace(inner); sep >= 0 {
		name = string(inner[:sep])
		raw = name + " " + string(inner[sep+1:])
	}
	selfClosing := strings.HasSuffix(strings.TrimRightFunc(raw, unicode.IsSpace), "/")

	s.pending = append(s.pending, pendingTag{
		name:        strings.TrimSuffix(name, "/"),
		raw:         raw,
		selfClosing: selfClosing,
	})
}

// closeTag pops the open stack down to the matching tag and writes its
// closer. Entries popped on the way are left unclosed, which is how void
// elements such as <br> disappear from the stack.
//
// A close tag that matches nothing is an error while budget remains. Once
// the budget is spent it only marks the cut, leaving the cursor on it.
func (s *scanner) closeTag() (stop bool, err error) {
	start := s.i
	end := markup.TagEnd(s.src, s.i)
	name := strings.TrimSpace(string(s.src[s.i+2 : innerEnd(s.src, end)]))

	if !s.isOpen(name) {
		if s.current >= s.length {
			return true, nil
		}
		return false, &MarkupError{Offset: start, Tag: name, Err: ErrUnbalancedTag}
	}

	s.i = end
	s.commit()
	for len(s.opened) > 0 {
		top := s.opened[len(s.opened)-1]
		s.opened = s.opened[:len(s.opened)-1]
		if strings.EqualFold(top, name) {
			break
		}
	}
	s.writeClose(name)
	return false, nil
}

// isOpen reports whether name is on the open stack or queued to be opened.
func (s *scanner) isOpen(name string) bool {
	for _, open := range s.opened {
		if strings.EqualFold(open, name) {
			return true
		}
	}
	for _, tag := range s.pending {
		if tag.pushes() && strings.EqualFold(tag.name, name) {
			return true
		}
	}
	return false
}

// scanEntity copies an entity reference through its ';' as one visible character.
func (s *scanner) scanEntity() error {
	end := markup.EntityEnd(s.src, s.i)
	if end < 0 {
		return &MarkupError{Offset: s.i, Err: ErrUnterminatedEntity}
	}
	s.commit()
	s.out.WriteString(string(s.src[s.i : end+1]))
	s.current++
	s.inWord = false
	s.i = end + 1
	return nil
}

// scanContent buffers one ordinary rune, flushing the current word first when
// r ends it. It returns false when that flush did not fit.
func (s *scanner) scanContent(r rune) bool {
	if markup.IsWordRune(r) {
		s.inWord = true
	} else {
		// whitespace and punctuation alike end a word
		if s.inWord && !s.flush() {
			return false
		}
		s.inWord = false
	}
	s.word = append(s.word, r)
	s.i++
	return true
}

// flush writes as much of the word buffer as the budget and word mode allow.
// It returns false when nothing could be written from a non-empty buffer.
func (s *scanner) flush() bool {
	if len(s.word) == 0 {
		return true
	}

	room := max(s.length-s.current, 0)
	n := len(s.word)
	if s.breakWords {
		n = min(n, room)
		if n == 0 {
			return false
		}
	} else if n > room {
		return false
	}

	s.commit()
	s.out.WriteString(string(s.word[:n]))
	s.current += n
	s.word = s.word[n:]
	return true
}

// commit writes every pending entry in source order and pushes open tags
// onto the open stack.
func (s *scanner) commit() {
	for _, tag := range s.pending {
		if tag.comment {
			s.out.WriteString(tag.raw)
			continue
		}
		s.out.WriteByte('<')
		s.out.WriteString(tag.raw)
		s.out.WriteByte('>')
		if tag.pushes() {
			s.opened = append(s.opened, tag.name)
		}
	}
	s.pending = s.pending[:0]
}

// pushes reports whether writing the entry leaves an element open.
func (t pendingTag) pushes() bool {
	return !t.comment && !t.selfClosing && t.name != ""
}

func (s *scanner) writeClose(name string) {
	s.out.WriteString("</")
	s.out.WriteString(name)
	s.out.WriteByte('>')
}

// innerEnd is the index of the closing '>' given TagEnd's result, or the end
// of input for a tag that never closes.
func innerEnd(src []rune, end int) int {
	if end > 0 && end <= len(src) && src[end-1] == '>' {
		return end - 1
	}
	return end
}

func indexSpace(rs []rune) int {
	for i, r := range rs {
		if markup.IsSpace(r) {
			return i
		}
	}
	return -1
}
