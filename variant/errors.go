package variant

import "errors"

// Sentinel errors returned by Submit and Reset. Validation failures wrap
// the cpf sentinel that caused them, so errors.Is matches either.
var (
	// ErrWrongLength is returned when the input, once "." and "-" are
	// removed, is not exactly 11 digits.
	ErrWrongLength = errors.New("variant: must have 11 digits")

	// ErrInvalidChecksum is returned when the 11 digits fail the Validator.
	ErrInvalidChecksum = errors.New("variant: invalid identifier")

	// ErrBusy is returned by Submit and Reset while a search is in progress,
	// e.g. when called from a hook.
	ErrBusy = errors.New("variant: search in progress")
)
