package canon_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfa/canon"
)

// subsetRule is a small subset-construction style rule over sets of ints:
//
//	{1}:   'a' → {1,2}, 'b' → {}        (dead)
//	{1,2}: 'a' → {1,2}, 'b' → {2}
//	{2}:   'a' → {},    'b' → {2}
func subsetRule(ss canon.SetState[int], a rune) canon.SetState[int] {
	switch ss.Key() {
	case canon.NewSetState(1).Key():
		if a == 'a' {
			return canon.NewSetState(1, 2)
		}

		return canon.NewSetState[int]()
	case canon.NewSetState(1, 2).Key():
		if a == 'a' {
			return canon.NewSetState(1, 2)
		}

		return canon.NewSetState(2)
	default: // {2}
		if a == 'a' {
			return canon.NewSetState[int]()
		}

		return canon.NewSetState(2)
	}
}

// TestSetState covers normalization, emptiness, and key equality.
func TestSetState(t *testing.T) {
	ss := canon.NewSetState(3, 1, 3, 2)
	require.Equal(t, []int{1, 2, 3}, ss.Members())
	require.False(t, ss.IsEmpty())
	require.Equal(t, canon.NewSetState(1, 2, 3).Key(), ss.Key())

	require.True(t, canon.NewSetState[int]().IsEmpty())
	require.NotEqual(t, ss.Key(), canon.NewSetState(1, 2).Key())
}

// TestBeautifyPowerset_SentinelWiring verifies id assignment in discovery
// order and the empty-set sentinel semantics.
func TestBeautifyPowerset_SentinelWiring(t *testing.T) {
	d, err := canon.BeautifyPowerset(
		[]rune{'a', 'b'},
		canon.NewSetState(1),
		subsetRule,
		[]canon.SetState[int]{canon.NewSetState(2), canon.NewSetState(5)}, // {5} never discovered
	)
	require.NoError(t, err)

	// discovery: {1}=1, {1,2}=2, {2}=3; sentinel 0 synthesized
	require.Equal(t, []int{0, 1, 2, 3}, d.States())
	require.Equal(t, 1, d.Start())
	require.Equal(t, []int{3}, d.Finals())

	// transitions into the dead sentinel keep their distinguished target
	require.Equal(t, canon.Sentinel, d.Step(1, 'b'))
	require.Equal(t, canon.Sentinel, d.Step(3, 'a'))
	// the sentinel self-loops on every symbol and never accepts
	require.Equal(t, canon.Sentinel, d.Step(canon.Sentinel, 'a'))
	require.Equal(t, canon.Sentinel, d.Step(canon.Sentinel, 'b'))
	require.False(t, d.IsFinal(canon.Sentinel))

	// language spot-checks: "ab" → {1,2} → {2} accept; "b…" is dead
	require.True(t, d.Accepts([]rune("ab")))
	require.False(t, d.Accepts([]rune("b")))
	require.False(t, d.Accepts([]rune("bab")))
}

// TestBeautifyPowerset_Errors covers the rejection paths.
func TestBeautifyPowerset_Errors(t *testing.T) {
	_, err := canon.BeautifyPowerset[int, rune]([]rune{'a'}, canon.NewSetState(1), nil, nil)
	require.ErrorIs(t, err, canon.ErrNilRule)

	_, err = canon.BeautifyPowerset(nil, canon.NewSetState(1), subsetRule, nil)
	require.ErrorIs(t, err, canon.ErrEmptyVocabulary)

	_, err = canon.BeautifyPowerset([]rune{'a'}, canon.NewSetState[int](), subsetRule, nil)
	require.ErrorIs(t, err, canon.ErrSentinelStart)
}
