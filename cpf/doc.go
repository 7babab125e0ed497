// Package cpf models the Brazilian individual taxpayer identifier (CPF):
// an exact sequence of 11 decimal digits whose last two digits are check
// digits over the first nine.
//
// What
//
//   - Identifier: an immutable, parsed 11-digit value (digit values, not ASCII).
//   - Strip:      removes the "." and "-" punctuation of the display form.
//   - Parse:      turns 11 ASCII digits into an Identifier.
//   - Valid:      the standard two-pass weighted mod-11 check, repdigits rejected.
//   - Format:     renders 11 digits as "DDD.DDD.DDD-DD".
//   - Differences: index-aligned digit mismatches (Hamming distance).
//   - Complete:   appends the two check digits to a 9-digit base.
//
// Checksum
//
//	d10 = (Σ d[i]·(10-i), i=0..8) ·10 mod 11, with 10 → 0
//	d11 = (Σ d[i]·(11-i), i=0..9) ·10 mod 11, with 10 → 0
//
//	Sequences of one repeated digit ("000.000.000-00", "111.111.111-11", …)
//	satisfy the arithmetic but are not issued, so Valid rejects them.
//
// Usage
//
//	raw := cpf.Strip("529.982.247-25")
//	id, err := cpf.Parse(raw)
//	if err != nil {
//	    // ErrWrongLength or ErrNonDigit
//	}
//	fmt.Println(id.Valid(), id) // true 529.982.247-25
//
// Errors
//
//   - ErrWrongLength     input does not have exactly 11 characters.
//   - ErrNonDigit        input has a character outside '0'..'9'; ParseValid
//     wraps it in ErrWrongLength too.
//   - ErrInvalidChecksum check digits do not match (ParseValid, Complete).
package cpf
