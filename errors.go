package canonhuff

import (
	"errors"
)

// Construction errors
var (
	ErrNoSymbols   = errors.New("canonhuff: cannot build a code with zero symbols")
	ErrCodeTooLong = errors.New("canonhuff: code length exceeds MaxCodeLength")
	ErrSymbolRange = errors.New("canonhuff: symbol index out of range")
)

// Histogram errors
var (
	ErrInvalidHistogram = errors.New("canonhuff: invalid codes-per-length histogram")
)

// Decode errors
var (
	ErrMalformedCode   = errors.New("canonhuff: bit sequence matches no code in the histogram")
	ErrSourceExhausted = errors.New("canonhuff: bit source exhausted mid-code")
)
