package cpf

import "fmt"

// Format renders an 11-character digit string as "DDD.DDD.DDD-DD".
// It panics when len(s) != Length; callers format only parsed identifiers.
func Format(s string) string {
	if len(s) != Length {
		panic(fmt.Sprintf("cpf: Format needs %d characters, got %d", Length, len(s)))
	}

	return s[0:3] + "." + s[3:6] + "." + s[6:9] + "-" + s[9:11]
}

// Differences returns the number of index-aligned mismatches between a and b.
// It panics when the lengths differ.
func Differences(a, b string) int {
	if len(a) != len(b) {
		panic(fmt.Sprintf("cpf: Differences needs equal lengths, got %d and %d", len(a), len(b)))
	}
	n := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			n++
		}
	}

	return n
}
