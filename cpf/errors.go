package cpf

import "errors"

// Sentinel errors for parsing and validation. Callers branch with errors.Is;
// context is attached with %w at the call site.
var (
	// ErrWrongLength is returned when the input is not exactly Length characters.
	ErrWrongLength = errors.New("cpf: must have 11 digits")

	// ErrNonDigit is returned when the input holds a character outside '0'..'9'.
	ErrNonDigit = errors.New("cpf: non-digit character")

	// ErrInvalidChecksum is returned when the check digits do not match.
	ErrInvalidChecksum = errors.New("cpf: invalid identifier")
)
