package cascade

import "errors"

var (
	// ErrEmptyInput indicates the line source produced no lines.
	ErrEmptyInput = errors.New("cascade: input must contain at least one line")
	// ErrMalformedGrid indicates a ragged row while parsing in strict mode.
	ErrMalformedGrid = errors.New("cascade: all rows must have the same length")
)
