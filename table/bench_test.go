package table_test

import (
	"testing"

	"github.com/katalvlaran/dfa/core"
	"github.com/katalvlaran/dfa/table"
)

// BenchmarkBuild_ModCounter tabulates a mod-N counter discovered from a
// single declared start state.
func BenchmarkBuild_ModCounter(b *testing.B) {
	const N = 1024
	d := core.NewUnchecked(
		[]rune{'+', '-'},
		[]int{0},
		0,
		nil,
		func(s int, sym rune) int {
			if sym == '+' {
				return (s + 1) % N
			}

			return (s + N - 1) % N
		},
	)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = table.Build(d)
	}
}

// BenchmarkTriples_FullRelation enumerates the complete cross product.
func BenchmarkTriples_FullRelation(b *testing.B) {
	const N = 512
	states := make([]int, N)
	for i := range states {
		states[i] = i
	}
	d := core.NewUnchecked(
		[]rune{'a', 'b', 'c', 'd'},
		states,
		0,
		nil,
		func(s int, sym rune) int { return (s + int(sym)) % N },
	)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = table.Triples(d)
	}
}
