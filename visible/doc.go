// Package visible measures how many characters an HTML fragment shows.
//
// The rules match the truncate package, so a length measured here is the
// budget at which truncate.HTML returns its input unchanged:
//
//	n := visible.Count("<p>Tom &amp; Jerry</p>") // 11
//
// Use the Counter interface where the measuring rule should be swappable:
//
//	var c visible.Counter = visible.NewCounter()
//	ok := c.FitsInLimit(snippet, 140)
package visible
