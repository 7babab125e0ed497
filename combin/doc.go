// Package combin enumerates k-subsets of the index range [0,n).
//
// What
//
//   - Each(n, k, fn):       lazy, lexicographic walk over all C(n,k) subsets.
//   - Combinations(n, k):   the same sequence collected into fresh slices.
//   - Binomial(n, k):       C(n,k), the length of that sequence.
//
// Every subset is a strictly increasing []int. Subsets are produced in
// lexicographic ascending order, so results are reproducible run to run:
//
//	Combinations(4, 2) → [0 1] [0 2] [0 3] [1 2] [1 3] [2 3]
//
// k == 0 yields exactly one empty subset; k == n yields [0 1 … n-1].
//
// Complexity
//
//   - Time:   O(C(n,k) · k)
//   - Memory: O(k) for Each, O(C(n,k) · k) for Combinations.
//
// Errors
//
//   - ErrNegativeSize   if n < 0.
//   - ErrBadSubsetSize  if k < 0 or k > n.
package combin
