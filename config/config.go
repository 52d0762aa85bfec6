package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/htmlkit/truncate"
)

// DefaultLength is the visible-character budget used when none is configured.
const DefaultLength = 200

// Config holds truncation settings as they appear in a config file.
type Config struct {
	// Length is the visible-character budget.
	Length int `json:"length" yaml:"length" toml:"length" jsonschema:"minimum=0,default=200,description=Visible characters to keep"`

	// BreakWords allows a word to be cut at the budget.
	// Nil means the truncator default (true).
	BreakWords *bool `json:"break_words,omitempty" yaml:"break_words" toml:"break_words" jsonschema:"description=Allow cutting inside a word"`

	// Suffix is appended after a cut. Empty means no suffix.
	Suffix string `json:"suffix,omitempty" yaml:"suffix" toml:"suffix" jsonschema:"description=Text appended when content was cut"`

	// Fallback switches to a plain-text preview when markup is malformed.
	Fallback bool `json:"fallback,omitempty" yaml:"fallback" toml:"fallback" jsonschema:"description=Fall back to escaped plain text on malformed markup"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Length: DefaultLength}
}

// Validate checks the configuration for values the truncator cannot use.
func (c Config) Validate() error {
	if c.Length < 0 {
		return fmt.Errorf("%w: length must be >= 0, got %d", ErrInvalidConfig, c.Length)
	}
	return nil
}

// Truncator builds a truncator from the configuration.
func (c Config) Truncator() *truncate.Truncator {
	tr := truncate.New()
	if c.BreakWords != nil {
		tr.WithBreakWords(*c.BreakWords)
	}
	if c.Suffix != "" {
		tr.WithSuffix(c.Suffix)
	}
	return tr
}

// Apply truncates source with this configuration. With Fallback set,
// malformed markup yields the escaped, tag-stripped text cut to Length
// characters (see truncate.RunPlainText) instead of an error. The fallback
// cut is by character and ignores BreakWords.
func (c Config) Apply(source string) (truncate.Result, error) {
	res, err := c.Truncator().Run(source, c.Length)
	if err != nil && c.Fallback && truncate.IsMalformed(err) {
		slog.Warn("malformed markup, using plain-text preview", slog.Any("error", err))
		return truncate.RunPlainText(source, c.Length, c.Suffix), nil
	}
	return res, err
}

// Load reads a config file, choosing the decoder from its extension.
// Fields missing from the file keep their Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes data in the format named by ext (".yaml", ".yml", ".toml"
// or ".json").
func Parse(data []byte, ext string) (Config, error) {
	cfg := Default()

	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
