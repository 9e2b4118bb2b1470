package table

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/dfa/core"
)

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	maxRows int // 0 means unbounded
	err     error
}

// WithMaxRows caps the number of table rows.
//
//	n > 0: at most n rows, then ErrTableTooLarge
//	n == 0: explicit no limit (caller guarantees a finite reachable set)
//	n < 0: invalid option → ErrOptionViolation
func WithMaxRows(n int) Option {
	return func(o *buildOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRows cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxRows = n
	}
}

// Build tabulates the automaton's transition rule, starting from a single
// row for the start state and adding a row for every destination that
// does not yet have one, pass after pass, until a pass adds nothing.
// Rows are created in first-seen row-then-column order; that order is
// exposed via States and is the discovery order canonical renaming
// relies on.
// Complexity: O(R²·|Σ|) worst case for R discovered rows.
func Build[S cmp.Ordered, A cmp.Ordered](d *core.DFA[S, A], opts ...Option) (*Table[S, A], error) {
	if d == nil {
		return nil, ErrNilAutomaton
	}
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	delta := d.Delta()
	t := &Table[S, A]{
		vocabulary: d.Vocabulary(),
		rows:       make(map[S][]S),
	}
	t.addRow(d.Start(), delta)

	// Grow until stable: each pass scans existing rows top-to-bottom,
	// columns left-to-right, and adds a row for every rowless destination.
	for grew := true; grew; {
		grew = false
		for i := 0; i < len(t.order); i++ {
			for _, dst := range t.rows[t.order[i]] {
				if _, ok := t.rows[dst]; ok {
					continue
				}
				if o.maxRows > 0 && len(t.order) >= o.maxRows {
					return nil, fmt.Errorf("%w: cap %d", ErrTableTooLarge, o.maxRows)
				}
				t.addRow(dst, delta)
				grew = true
			}
		}
	}

	return t, nil
}

// addRow appends state to the discovery order and fills its destinations.
func (t *Table[S, A]) addRow(state S, delta core.TransitionFunc[S, A]) {
	row := make([]S, len(t.vocabulary))
	for i, a := range t.vocabulary {
		row[i] = delta(state, a)
	}
	t.order = append(t.order, state)
	t.rows[state] = row
}

// Triples enumerates the FULL transition relation of a declared-complete
// automaton: the cross product of its state set and vocabulary mapped
// through the rule, sorted by (From, On). Unlike Build, it assumes the
// declared state set is already exhaustive — use it for size and
// edge-count metrics.
func Triples[S cmp.Ordered, A cmp.Ordered](d *core.DFA[S, A]) []Triple[S, A] {
	states, vocab, delta := d.States(), d.Vocabulary(), d.Delta()
	out := make([]Triple[S, A], 0, len(states)*len(vocab))
	for _, s := range states {
		for _, a := range vocab {
			out = append(out, Triple[S, A]{From: s, On: a, To: delta(s, a)})
		}
	}
	sortTriples(out)

	return out
}

// Snapshot packages the automaton into the structured Export form for
// external sinks, with the full sorted triple relation.
func Snapshot[S cmp.Ordered, A cmp.Ordered](d *core.DFA[S, A]) (*Export[S, A], error) {
	if d == nil {
		return nil, ErrNilAutomaton
	}

	return &Export[S, A]{
		Vocabulary: d.Vocabulary(),
		States:     d.States(),
		Start:      d.Start(),
		Finals:     d.Finals(),
		Triples:    Triples(d),
	}, nil
}
