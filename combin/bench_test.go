package combin_test

import (
	"testing"

	"github.com/katalvlaran/cpfvariant/combin"
)

// BenchmarkEach_11_3 walks the 165 triples used by the deepest search level.
func BenchmarkEach_11_3(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = combin.Each(11, 3, func([]int) bool { return true })
	}
}

// BenchmarkCombinations_11_3 includes the per-subset copies.
func BenchmarkCombinations_11_3(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = combin.Combinations(11, 3)
	}
}
