// Package config loads truncation settings from YAML, TOML or JSON files.
//
//	cfg, err := config.Load("preview.yaml")
//	out, err := cfg.Truncator().Truncate(html, cfg.Length)
//
// A file looks like:
//
//	length: 140
//	break_words: false
//	suffix: "…"
//	fallback: true
//
// Schema returns a JSON Schema for editors, and Watch reloads the file
// whenever it changes.
package config
