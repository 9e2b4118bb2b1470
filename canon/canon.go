package canon

import (
	"cmp"
	"errors"
	"slices"

	"github.com/katalvlaran/dfa/core"
	"github.com/katalvlaran/dfa/fixpoint"
	"github.com/katalvlaran/dfa/table"
)

// Sentinel errors for canonicalization.
var (
	// ErrNilAutomaton is returned if a nil automaton pointer is passed.
	ErrNilAutomaton = errors.New("canon: automaton is nil")

	// ErrNilRule is returned if a nil transition rule is passed.
	ErrNilRule = errors.New("canon: transition rule is nil")

	// ErrEmptyVocabulary is returned if no symbols are supplied.
	ErrEmptyVocabulary = errors.New("canon: vocabulary is empty")

	// ErrSentinelStart is returned when the start state-set is empty:
	// the dead sentinel cannot anchor a discovery order.
	ErrSentinelStart = errors.New("canon: start state-set is empty")
)

// Rename returns the canonical automaton of d: vocabulary sorted, states
// renamed to the contiguous range [firstID, firstID+n), where ids follow
// table discovery order (start state first, then first-seen destinations
// in row-then-column order). Finals are restricted to reachable states —
// unreachable finals have no id in the canonical form.
// Complexity: O(R²·|Σ|) for R reachable states (table.Build dominates).
func Rename[S cmp.Ordered, A cmp.Ordered](d *core.DFA[S, A], firstID int) (*core.DFA[int, A], error) {
	if d == nil {
		return nil, ErrNilAutomaton
	}

	// Discovery order must not depend on the caller's vocabulary order,
	// so tabulate over the sorted vocabulary.
	vocab := fixpoint.Normalize(d.Vocabulary())
	sorted := core.NewUnchecked(vocab, d.States(), d.Start(), d.Finals(), d.Delta())

	tab, err := table.Build(sorted)
	if err != nil {
		return nil, err
	}

	order := tab.States()
	id := make(map[S]int, len(order))
	for i, s := range order {
		id[s] = firstID + i
	}

	// Rewrite rows over integer ids, indexed by id-firstID.
	rows := make([][]int, len(order))
	for i, s := range order {
		row, _ := tab.Row(s)
		rows[i] = make([]int, len(row))
		for j, dst := range row {
			rows[i][j] = id[dst]
		}
	}

	states := make([]int, len(order))
	for i := range order {
		states[i] = firstID + i
	}
	var finals []int
	for _, s := range order {
		if d.IsFinal(s) {
			finals = append(finals, id[s])
		}
	}

	return core.NewUnchecked(vocab, states, firstID, finals, tabulated(vocab, rows, firstID)), nil
}

// Beautify is Rename with ids starting at 1.
func Beautify[S cmp.Ordered, A cmp.Ordered](d *core.DFA[S, A]) (*core.DFA[int, A], error) {
	return Rename(d, 1)
}

// Equivalent reports whether a and b have identical canonical forms:
// same sorted vocabulary, same state count, same start, same finals,
// and the same transition relation after Beautify on both sides.
// For minimized automata this decides language equivalence.
func Equivalent[S cmp.Ordered, A cmp.Ordered](a, b *core.DFA[S, A]) (bool, error) {
	ca, err := Beautify(a)
	if err != nil {
		return false, err
	}
	cb, err := Beautify(b)
	if err != nil {
		return false, err
	}

	if !slices.Equal(ca.Vocabulary(), cb.Vocabulary()) ||
		!slices.Equal(ca.States(), cb.States()) ||
		ca.Start() != cb.Start() ||
		!slices.Equal(ca.Finals(), cb.Finals()) {
		return false, nil
	}

	return slices.Equal(table.Triples(ca), table.Triples(cb)), nil
}

// tabulated wraps integer-indexed rows as a TransitionFunc. Inputs
// outside the canonical universe are out of contract and map to
// themselves.
func tabulated[A cmp.Ordered](vocab []A, rows [][]int, firstID int) core.TransitionFunc[int, A] {
	return func(s int, a A) int {
		j, ok := slices.BinarySearch(vocab, a)
		i := s - firstID
		if !ok || i < 0 || i >= len(rows) {
			return s
		}

		return rows[i][j]
	}
}
