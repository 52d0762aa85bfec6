package visible

import (
	"testing"
)

func TestHTMLCounter_Count(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "plain text", text: "Hello", want: 5},
		{name: "tags are free", text: "<p>Hello <b>World</b></p>", want: 11},
		{name: "entity counts once", text: "Tom &amp; Jerry", want: 11},
		{name: "numeric entity", text: "&#169; 2024", want: 6},
		{name: "comment is free", text: "a<!-- bbbbbb -->b", want: 2},
		{name: "short comment", text: "a<!-->b", want: 2},
		{name: "bare bang is text", text: "<!x", want: 3},
		{name: "trailing lt is text", text: "a<", want: 2},
		{name: "attributes are free", text: `<a href="/x">go</a>`, want: 2},
		{name: "unterminated entity counts runes", text: "a &amp", want: 6},
		{name: "multibyte runes", text: "<i>日本語</i>", want: 3},
	}

	c := NewCounter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Count(tt.text); got != tt.want {
				t.Errorf("Count(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestHTMLCounter_FitsInLimit(t *testing.T) {
	c := NewCounter()

	if !c.FitsInLimit("<p>Hello</p>", 5) {
		t.Error("expected 5 visible characters to fit a limit of 5")
	}
	if c.FitsInLimit("<p>Hello</p>", 4) {
		t.Error("expected 5 visible characters not to fit a limit of 4")
	}
}

func TestCount(t *testing.T) {
	if got := Count("<p>Tom &amp; Jerry</p>"); got != 11 {
		t.Errorf("Count() = %d, want 11", got)
	}
}

func TestCounterInterface(t *testing.T) {
	var _ Counter = NewCounter()
}
