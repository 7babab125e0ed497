package cpf

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Length is the number of digits in an identifier.
	Length = 11

	// BaseLength is the number of digits preceding the two check digits.
	BaseLength = 9
)

// punctuation removes the separators of the display form.
var punctuation = strings.NewReplacer(".", "", "-", "")

// Identifier is a parsed CPF. Each element holds a digit value in [0,9].
// The zero value is "000.000.000-00", which Valid rejects.
type Identifier [Length]byte

// Strip removes "." and "-" from s. Any other character is kept so that
// Parse can report it.
func Strip(s string) string {
	return punctuation.Replace(s)
}

// Parse converts exactly Length ASCII digits into an Identifier.
// It does not strip punctuation and does not check the check digits.
func Parse(s string) (Identifier, error) {
	var id Identifier
	if len(s) != Length {
		return id, fmt.Errorf("%w: got %d", ErrWrongLength, len(s))
	}
	for i := 0; i < Length; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return id, fmt.Errorf("%w: %q at position %d", ErrNonDigit, c, i)
		}
		id[i] = c - '0'
	}

	return id, nil
}

// ParseValid strips punctuation, parses, and rejects identifiers whose
// check digits do not match. A non-digit character means the input does
// not have 11 digits, so that error wraps both ErrWrongLength and
// ErrNonDigit.
func ParseValid(s string) (Identifier, error) {
	id, err := Parse(Strip(s))
	if errors.Is(err, ErrNonDigit) {
		return id, fmt.Errorf("%w: %w", ErrWrongLength, err)
	}
	if err != nil {
		return id, err
	}
	if !id.Valid() {
		return id, fmt.Errorf("%w: %s", ErrInvalidChecksum, id)
	}

	return id, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(s string) Identifier {
	id, err := Parse(Strip(s))
	if err != nil {
		panic(err)
	}

	return id
}

// Digits returns the raw 11-digit form.
func (id Identifier) Digits() string {
	var b [Length]byte
	for i, d := range id {
		b[i] = '0' + d
	}

	return string(b[:])
}

// String returns the canonical "DDD.DDD.DDD-DD" form.
func (id Identifier) String() string {
	return Format(id.Digits())
}

// Digit returns the digit value at position i.
func (id Identifier) Digit(i int) byte {
	return id[i]
}

// With returns a copy of id with position i set to digit d.
func (id Identifier) With(i int, d byte) Identifier {
	id[i] = d

	return id
}

// Differences counts the positions at which id and other differ.
func (id Identifier) Differences(other Identifier) int {
	n := 0
	for i := range id {
		if id[i] != other[i] {
			n++
		}
	}

	return n
}
