// Package htmlkit provides utilities for shortening HTML for previews.
//
// Each subpackage can be used independently:
//
//   - truncate: cut HTML to a visible-character budget, keeping it well formed
//   - visible: count the characters an HTML fragment shows
//   - config: load truncation settings from YAML, TOML or JSON files
//
// The htmltrunc command wraps these for use from a shell.
//
// # Quick Start
//
//	import "github.com/randalmurphal/htmlkit/truncate"
//	out, err := truncate.HTML("<p>Hello <b>World</b></p>", 7)
//	// out == "<p>Hello <b>W</b></p>"
//
// Keeping whole words and marking the cut:
//
//	tr := truncate.New().WithBreakWords(false).WithSuffix("…")
//	out, err := tr.Truncate(article, 140)
//
// Counting:
//
//	import "github.com/randalmurphal/htmlkit/visible"
//	n := visible.Count("<p>Tom &amp; Jerry</p>") // 11
package htmlkit
