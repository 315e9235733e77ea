package domain

import "errors"

// ErrMalformedInput is returned when a hunt file cannot be interpreted.
var ErrMalformedInput = errors.New("malformed input")

// ErrEmptySpace is returned when a candidate space has no positions or a position has no words.
var ErrEmptySpace = errors.New("empty candidate space")

// ErrSpaceTooLarge is returned when the candidate count does not fit in a uint64.
var ErrSpaceTooLarge = errors.New("candidate space too large")

// ErrEngine is returned when the recovery engine could not be invoked or failed unexpectedly.
var ErrEngine = errors.New("recovery engine failure")
