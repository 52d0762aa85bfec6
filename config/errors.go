package config

import "errors"

// Sentinel errors for configuration loading.
var (
	// ErrUnsupportedFormat is returned for a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalidConfig is returned when a decoded config fails validation.
	ErrInvalidConfig = errors.New("invalid config")
)
