// Package cpfvariant finds valid Brazilian CPF numbers that sit closest to a
// given valid CPF, counted in changed digits.
//
// 🚀 What is cpfvariant?
//
//	A small, single-threaded library plus CLI that brings together:
//		• cpf      – identifier type, punctuation stripping, checksum rule, formatting
//		• combin   – lexicographic k-subsets of positions, binomial counts
//		• variant  – candidate enumeration and the escalating Searcher state machine
//		• report   – text (styled, diff-highlighted), JSON and YAML rendering
//		• cmd/cpfvariant – cobra front end with a YAML config file
//
// ✨ How a search runs
//
//	529.982.247-25
//	   k=1: 11 positions × 9 digits      =     99 candidates → none valid
//	   k=2: 55 position pairs × 81       =   4455 candidates → 529.982.257-05
//	   stop (escalation ends at the first level with a result)
//
// The worst case, when nothing is found up to three changed digits, checks
// 99 + 4455 + 120285 = 124839 candidates.
//
// Quick start:
//
//	out, err := variant.NewSearcher().Submit("529.982.247-25")
//	if err != nil {
//		// variant.ErrWrongLength or variant.ErrInvalidChecksum
//	}
//	fmt.Println(out.Summary())
//
//	go install github.com/katalvlaran/cpfvariant/cmd/cpfvariant@latest
package cpfvariant
