package cpf

import "fmt"

// Valid reports whether s is exactly 11 ASCII digits forming a CPF with
// matching check digits. Punctuated input is not accepted; see Strip.
func Valid(s string) bool {
	id, err := Parse(s)
	if err != nil {
		return false
	}

	return id.Valid()
}

// Valid reports whether both check digits of id match and id is not a
// single repeated digit.
func (id Identifier) Valid() bool {
	if id.repdigit() {
		return false
	}

	return checkDigit(id[:BaseLength]) == id[BaseLength] &&
		checkDigit(id[:BaseLength+1]) == id[BaseLength+1]
}

// Complete appends the two check digits to a 9-digit base.
// Punctuation in base is ignored. The result may still be a repdigit,
// in which case ErrInvalidChecksum is returned alongside it.
func Complete(base string) (Identifier, error) {
	var id Identifier
	base = Strip(base)
	if len(base) != BaseLength {
		return id, fmt.Errorf("%w: base needs %d digits, got %d", ErrWrongLength, BaseLength, len(base))
	}
	for i := 0; i < BaseLength; i++ {
		c := base[i]
		if c < '0' || c > '9' {
			return id, fmt.Errorf("%w: %q at position %d", ErrNonDigit, c, i)
		}
		id[i] = c - '0'
	}
	id[BaseLength] = checkDigit(id[:BaseLength])
	id[BaseLength+1] = checkDigit(id[:BaseLength+1])
	if id.repdigit() {
		return id, fmt.Errorf("%w: repeated digit %s", ErrInvalidChecksum, id)
	}

	return id, nil
}

// checkDigit computes the next check digit over d. Weights run from
// len(d)+1 down to 2.
func checkDigit(d []byte) byte {
	n := len(d)
	sum := 0
	for i, v := range d {
		sum += int(v) * (n + 1 - i)
	}
	r := sum * 10 % 11
	if r == 10 {
		return 0
	}

	return byte(r)
}

func (id Identifier) repdigit() bool {
	for i := 1; i < Length; i++ {
		if id[i] != id[0] {
			return false
		}
	}

	return true
}
