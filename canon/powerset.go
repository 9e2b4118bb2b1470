package canon

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/dfa/core"
	"github.com/katalvlaran/dfa/fixpoint"
)

// Sentinel is the reserved canonical id of the dead "no-such-state"
// target: the empty state-set. Assigned ids start at Sentinel+1, so the
// sentinel never collides with an ordinary state.
const Sentinel = 0

// SetState is a state that is itself a set of underlying states, as
// produced by subset-construction style automaton producers. Members are
// held sorted and deduplicated, so structurally equal sets compare equal
// via Key. The empty SetState is the dead sentinel and is never treated
// as an ordinary destination.
type SetState[S cmp.Ordered] struct {
	members []S
}

// NewSetState builds a SetState from its members (any order, duplicates
// allowed).
func NewSetState[S cmp.Ordered](members ...S) SetState[S] {
	return SetState[S]{members: fixpoint.Normalize(members)}
}

// Members returns the sorted member states.
func (ss SetState[S]) Members() []S { return append([]S(nil), ss.members...) }

// IsEmpty reports whether this is the dead sentinel.
func (ss SetState[S]) IsEmpty() bool { return len(ss.members) == 0 }

// Key returns a canonical string form usable as a map key; equal sets
// yield equal keys because members are sorted.
func (ss SetState[S]) Key() string { return fmt.Sprintf("%v", ss.members) }

// BeautifyPowerset canonicalizes an automaton over set-valued states.
// Ids are assigned from 1 in first-seen row-then-column discovery order
// over NON-empty sets only; the empty set never gets a row and every
// transition landing on it maps to Sentinel. In the returned automaton
// the sentinel is a non-accepting state that self-loops on every symbol,
// keeping the rule total while staying distinguishable by id.
func BeautifyPowerset[S cmp.Ordered, A cmp.Ordered](
	vocabulary []A,
	start SetState[S],
	rule func(SetState[S], A) SetState[S],
	finals []SetState[S],
) (*core.DFA[int, A], error) {
	if rule == nil {
		return nil, ErrNilRule
	}
	if len(vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}
	if start.IsEmpty() {
		return nil, ErrSentinelStart
	}

	vocab := fixpoint.Normalize(vocabulary)

	isFinal := make(map[string]bool, len(finals))
	for _, f := range finals {
		if !f.IsEmpty() {
			isFinal[f.Key()] = true
		}
	}

	id := map[string]int{start.Key(): Sentinel + 1}
	queue := []SetState[S]{start}
	var rows [][]int
	var finalIDs []int

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if isFinal[cur.Key()] {
			finalIDs = append(finalIDs, id[cur.Key()])
		}

		row := make([]int, len(vocab))
		for j, a := range vocab {
			dst := rule(cur, a)
			if dst.IsEmpty() {
				row[j] = Sentinel
				continue
			}
			key := dst.Key()
			if _, seen := id[key]; !seen {
				id[key] = Sentinel + 1 + len(id)
				queue = append(queue, dst)
			}
			row[j] = id[key]
		}
		rows = append(rows, row)
	}

	// Sentinel row: non-accepting self-loops, synthesized so the value
	// stays total. It was never part of the discovery order.
	sentinelRow := make([]int, len(vocab))
	for j := range sentinelRow {
		sentinelRow[j] = Sentinel
	}
	all := append([][]int{sentinelRow}, rows...)

	states := make([]int, len(all))
	for i := range all {
		states[i] = Sentinel + i
	}

	return core.NewUnchecked(vocab, states, Sentinel+1, finalIDs, tabulated(vocab, all, Sentinel)), nil
}
