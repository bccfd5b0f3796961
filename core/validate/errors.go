package validate

import "errors"

var (
	// ErrUnknownSeverity is returned when a severity name cannot be parsed.
	ErrUnknownSeverity = errors.New("unknown severity")

	// ErrInvalidFilterParams is returned for a false-positive rate outside
	// (0, 1) or a zero capacity.
	ErrInvalidFilterParams = errors.New("invalid membership filter parameters")

	// ErrEmptyAlphabet is returned when a configured alphabet has no bytes.
	ErrEmptyAlphabet = errors.New("empty alphabet")
)
