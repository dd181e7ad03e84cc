package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrMissingDuration = errors.New("missing duration argument")
	ErrInvalidDuration = errors.New("duration must be a non-negative whole number of seconds")
	ErrInvalidLevel    = errors.New("unknown log level")
	ErrNotATerminal    = errors.New("pomo requires a real terminal")
)
