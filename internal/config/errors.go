package config

import "errors"

var (
	// ErrParsingFile is returned when the TOML config file cannot be decoded.
	ErrParsingFile = errors.New("failed to parse config file")

	// ErrUnknownKey is returned for keys in the config file that map to nothing.
	ErrUnknownKey = errors.New("unknown config key")

	// ErrParsingEnv is returned when FQLINT_* variables cannot be parsed.
	ErrParsingEnv = errors.New("failed to parse environment variables into config")

	// ErrInvalid is returned by Validate; the joined error names the field.
	ErrInvalid = errors.New("invalid configuration")
)
