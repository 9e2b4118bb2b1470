package table_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dfa/core"
	"github.com/katalvlaran/dfa/table"
)

// FromTriplesSuite exercises rule reconstruction in strict and legacy modes.
type FromTriplesSuite struct {
	suite.Suite

	vocab  []rune
	states []int
	trips  []table.Triple[int, rune]
}

func (s *FromTriplesSuite) SetupTest() {
	d, err := core.New(
		[]rune{'0', '1'},
		[]int{0, 1, 2},
		0,
		[]int{0},
		func(st int, b rune) int { return (2*st + int(b-'0')) % 3 },
	)
	require.NoError(s.T(), err)

	s.vocab = d.Vocabulary()
	s.states = d.States()
	s.trips = table.Triples(d)
}

// TestRoundTrip verifies the reconstructed automaton accepts exactly the
// same words as the original over all binary words up to length 6.
func (s *FromTriplesSuite) TestRoundTrip() {
	rebuilt, err := table.FromTriples(s.vocab, s.states, 0, []int{0}, s.trips)
	require.NoError(s.T(), err)

	original, err := core.New(
		s.vocab, s.states, 0, []int{0},
		func(st int, b rune) int { return (2*st + int(b-'0')) % 3 },
	)
	require.NoError(s.T(), err)

	for n := 0; n <= 6; n++ {
		for bits := 0; bits < 1<<n; bits++ {
			w := make([]rune, n)
			for i := 0; i < n; i++ {
				w[i] = '0' + rune((bits>>i)&1)
			}
			require.Equal(s.T(), original.Accepts(w), rebuilt.Accepts(w), "word %q", string(w))
		}
	}
}

// TestStrictRejectsMissingEntry drops one triple and expects
// ErrIncompleteTable instead of a silent fallback.
func (s *FromTriplesSuite) TestStrictRejectsMissingEntry() {
	holed := s.trips[:len(s.trips)-1]
	_, err := table.FromTriples(s.vocab, s.states, 0, []int{0}, holed)
	require.ErrorIs(s.T(), err, table.ErrIncompleteTable)
}

// TestStrictRejectsEmpty rejects an empty relation in both modes.
func (s *FromTriplesSuite) TestStrictRejectsEmpty() {
	_, err := table.FromTriples(s.vocab, s.states, 0, []int{0}, nil)
	require.ErrorIs(s.T(), err, table.ErrIncompleteTable)

	_, err = table.FromTriples(s.vocab, s.states, 0, []int{0}, nil, table.WithLegacyFallback())
	require.ErrorIs(s.T(), err, table.ErrIncompleteTable)
}

// TestLegacyFallbackToLastTriple reproduces the historical hazard:
// an uncovered (state, symbol) lookup yields the LAST triple's destination.
func (s *FromTriplesSuite) TestLegacyFallbackToLastTriple() {
	holed := s.trips[:len(s.trips)-1] // drops (2,'1')→2; last is now (2,'0')→1
	d, err := table.FromTriples(s.vocab, s.states, 0, []int{0}, holed, table.WithLegacyFallback())
	require.NoError(s.T(), err)

	require.Equal(s.T(), 1, d.Step(2, '1'), "miss must fall back to the last triple's destination")
	require.Equal(s.T(), 2, d.Step(1, '0'), "covered pairs still resolve exactly")
}

// TestStrictValidatesStructure propagates core validation in strict mode.
func (s *FromTriplesSuite) TestStrictValidatesStructure() {
	_, err := table.FromTriples(s.vocab, s.states, 42, []int{0}, s.trips)
	require.ErrorIs(s.T(), err, core.ErrMalformedAutomaton)
}

func TestFromTriplesSuite(t *testing.T) {
	suite.Run(t, new(FromTriplesSuite))
}
