package combin

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSize is returned when the range size n is negative.
	ErrNegativeSize = errors.New("combin: negative range size")

	// ErrBadSubsetSize is returned when k is outside [0,n].
	ErrBadSubsetSize = errors.New("combin: subset size out of range")
)

// Binomial returns C(n,k), or 0 when k is outside [0,n].
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 1; i <= k; i++ {
		// exact at every step: c holds C(n-k+i-1, i-1)
		c = c * (n - k + i) / i
	}

	return c
}

// Each calls fn for every k-subset of [0,n) in lexicographic order.
// The slice passed to fn is reused between calls and must be copied if
// retained. Returning false from fn stops the walk early.
func Each(n, k int, fn func(idx []int) bool) error {
	if err := check(n, k); err != nil {
		return err
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return nil
		}
		// rightmost position that has not reached its ceiling n-k+i
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Combinations returns all k-subsets of [0,n) in lexicographic order.
func Combinations(n, k int) ([][]int, error) {
	if err := check(n, k); err != nil {
		return nil, err
	}
	out := make([][]int, 0, Binomial(n, k))
	err := Each(n, k, func(idx []int) bool {
		out = append(out, append([]int(nil), idx...))
		return true
	})

	return out, err
}

func check(n, k int) error {
	if n < 0 {
		return fmt.Errorf("%w: n=%d", ErrNegativeSize, n)
	}
	if k < 0 || k > n {
		return fmt.Errorf("%w: k=%d, n=%d", ErrBadSubsetSize, k, n)
	}

	return nil
}
