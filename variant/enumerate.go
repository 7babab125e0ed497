package variant

import (
	"github.com/katalvlaran/cpfvariant/combin"
	"github.com/katalvlaran/cpfvariant/cpf"
)

// Alternatives is the number of replacement digits for one position: every
// digit except the original.
const Alternatives = 9

// CandidateCount returns Alternatives^k, the number of candidates for a
// position set of size k.
func CandidateCount(k int) int {
	n := 1
	for i := 0; i < k; i++ {
		n *= Alternatives
	}

	return n
}

// Candidate returns the i-th candidate for positions, i in [0, 9^k).
//
// i is read as a base-9 number, least significant digit first, one digit per
// position in the order given. A base-9 digit d becomes the replacement
// digit d when d < original and d+1 otherwise, which skips the original and
// maps the nine values of d onto the nine other digits exactly once.
func Candidate(id cpf.Identifier, positions []int, i int) cpf.Identifier {
	for _, p := range positions {
		d := byte(i % Alternatives)
		i /= Alternatives
		if d >= id[p] {
			d++
		}
		id[p] = d
	}

	return id
}

// EachCandidate calls fn with every candidate for positions, in index
// order. Returning false from fn stops early.
func EachCandidate(id cpf.Identifier, positions []int, fn func(cpf.Identifier) bool) {
	n := CandidateCount(len(positions))
	for i := 0; i < n; i++ {
		if !fn(Candidate(id, positions, i)) {
			return
		}
	}
}

func binomial11(k int) int {
	return combin.Binomial(cpf.Length, k)
}
