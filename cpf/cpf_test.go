package cpf_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpfvariant/cpf"
)

// TestValid covers known-good identifiers, bad check digits, repdigits and
// malformed strings.
func TestValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"known_good", "52998224725", true},
		{"known_good_zero_checks", "98765432100", true},
		{"leading_zeros", "00000000191", true},
		{"second_check_wrong", "52998224724", false},
		{"first_check_wrong", "11144477736", false},
		{"repdigit_zero", "00000000000", false},
		{"repdigit_one", "11111111111", false},
		{"punctuated_rejected", "529.982.247-25", false},
		{"too_short", "5299822472", false},
		{"too_long", "529982247250", false},
		{"letter", "5299822472a", false},
		{"empty", "", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, cpf.Valid(tc.in))
		})
	}
}

// TestParse_Errors verifies sentinel errors for malformed input.
func TestParse_Errors(t *testing.T) {
	_, err := cpf.Parse("1114447773")
	assert.ErrorIs(t, err, cpf.ErrWrongLength)

	_, err = cpf.Parse("111.444.777-35")
	assert.ErrorIs(t, err, cpf.ErrWrongLength, "Parse does not strip punctuation")

	_, err = cpf.Parse("1114447773x")
	assert.ErrorIs(t, err, cpf.ErrNonDigit)

	id, err := cpf.Parse("11144477735")
	require.NoError(t, err)
	assert.Equal(t, "11144477735", id.Digits())
}

// TestParseValid strips, parses and checks in one call.
func TestParseValid(t *testing.T) {
	id, err := cpf.ParseValid("529.982.247-25")
	require.NoError(t, err)
	assert.Equal(t, "529.982.247-25", id.String())

	_, err = cpf.ParseValid("111.444.777-36")
	assert.ErrorIs(t, err, cpf.ErrInvalidChecksum)

	_, err = cpf.ParseValid("111.444.777-3")
	assert.ErrorIs(t, err, cpf.ErrWrongLength)

	_, err = cpf.ParseValid("111.444.777-3x")
	assert.ErrorIs(t, err, cpf.ErrWrongLength, "a non-digit leaves fewer than 11 digits")
	assert.ErrorIs(t, err, cpf.ErrNonDigit)
}

// TestStrip removes only dots and dashes.
func TestStrip(t *testing.T) {
	assert.Equal(t, "11144477735", cpf.Strip("111.444.777-35"))
	assert.Equal(t, "11144477735", cpf.Strip("111.444.77735"))
	assert.Equal(t, "111 444", cpf.Strip("111 444"), "spaces are kept for Parse to reject")
	assert.Equal(t, "", cpf.Strip(".-.-"))
}

// TestFormat_RoundTrip asserts Strip(Format(s)) == s over every valid base
// sharing a fixed prefix.
func TestFormat_RoundTrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id, err := cpf.Complete(fmt.Sprintf("529982%03d", i))
		if err != nil {
			continue
		}
		s := id.Digits()
		f := cpf.Format(s)
		require.Len(t, f, 14)
		require.Equal(t, s, cpf.Strip(f), "round trip of %s", s)
		require.True(t, cpf.Valid(s), "Complete(%s) must be valid", s[:9])
	}
	assert.Equal(t, "529.982.247-25", cpf.Format("52998224725"))
}

// TestFormat_PanicsOnWrongLength documents the precondition.
func TestFormat_PanicsOnWrongLength(t *testing.T) {
	assert.Panics(t, func() { cpf.Format("123") })
	assert.Panics(t, func() { cpf.Differences("123", "12") })
}

// TestDifferences checks symmetry and the zero-iff-equal property.
func TestDifferences(t *testing.T) {
	pairs := [][2]string{
		{"52998224725", "52998225705"},
		{"52998224725", "52998224725"},
		{"00000000000", "99999999999"},
		{"12345678909", "22345678909"},
	}
	for _, p := range pairs {
		ab := cpf.Differences(p[0], p[1])
		ba := cpf.Differences(p[1], p[0])
		assert.Equal(t, ab, ba, "symmetry for %v", p)
		assert.Equal(t, p[0] == p[1], ab == 0, "zero iff equal for %v", p)

		a, b := cpf.MustParse(p[0]), cpf.MustParse(p[1])
		assert.Equal(t, ab, a.Differences(b), "Identifier.Differences agrees for %v", p)
	}
	assert.Equal(t, 2, cpf.Differences("52998224725", "52998225705"))
	assert.Equal(t, 11, cpf.Differences("00000000000", "99999999999"))
}

// TestComplete appends the check digits and rejects bad bases.
func TestComplete(t *testing.T) {
	id, err := cpf.Complete("529.982.247")
	require.NoError(t, err)
	assert.Equal(t, "52998224725", id.Digits())

	id, err = cpf.Complete("123456789")
	require.NoError(t, err)
	assert.Equal(t, "12345678909", id.Digits())

	_, err = cpf.Complete("111111111")
	assert.ErrorIs(t, err, cpf.ErrInvalidChecksum)

	_, err = cpf.Complete("12345678")
	assert.ErrorIs(t, err, cpf.ErrWrongLength)

	_, err = cpf.Complete("12345678x")
	assert.ErrorIs(t, err, cpf.ErrNonDigit)
}

// TestIdentifier_With leaves the receiver untouched.
func TestIdentifier_With(t *testing.T) {
	id := cpf.MustParse("529.982.247-25")
	changed := id.With(7, 5).With(9, 0)
	assert.Equal(t, "529.982.247-25", id.String())
	assert.Equal(t, "529.982.257-05", changed.String())
	assert.Equal(t, byte(5), changed.Digit(7))
	assert.True(t, changed.Valid())
	assert.Equal(t, 2, id.Differences(changed))
}

// TestMustParse_Panics on malformed fixtures.
func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { cpf.MustParse("abc") })
}
