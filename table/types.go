package table

import (
	"cmp"
	"errors"
	"slices"
)

// Sentinel errors for table construction and rule reconstruction.
var (
	// ErrNilAutomaton is returned if a nil automaton pointer is passed.
	ErrNilAutomaton = errors.New("table: automaton is nil")

	// ErrTableTooLarge is returned when Build exceeds its row cap before
	// the table closes.
	ErrTableTooLarge = errors.New("table: row limit exceeded before closure")

	// ErrIncompleteTable is returned by FromTriples (strict mode) when
	// some (state, symbol) pair has no triple.
	ErrIncompleteTable = errors.New("table: transition table is incomplete")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("table: invalid option supplied")
)

// Triple is one row of the transition relation: From --On--> To.
type Triple[S cmp.Ordered, A cmp.Ordered] struct {
	From S
	On   A
	To   S
}

// sortTriples orders ts by (From, On) in place.
func sortTriples[S cmp.Ordered, A cmp.Ordered](ts []Triple[S, A]) {
	slices.SortFunc(ts, func(x, y Triple[S, A]) int {
		if c := cmp.Compare(x.From, y.From); c != 0 {
			return c
		}

		return cmp.Compare(x.On, y.On)
	})
}

// Table is an explicit, reachability-bounded transition table: one row
// per discovered state, one destination per vocabulary symbol in
// vocabulary order. A Table is owned by the conversion that built it;
// it never aliases the source automaton's storage.
type Table[S cmp.Ordered, A cmp.Ordered] struct {
	vocabulary []A
	order      []S       // rows in discovery order: start first
	rows       map[S][]S // state → destinations, vocabulary order
}

// Vocabulary returns a copy of the symbol sequence the rows follow.
func (t *Table[S, A]) Vocabulary() []A { return slices.Clone(t.vocabulary) }

// States returns the row states in discovery order: the start state
// first, then each destination in the order it was first seen scanning
// rows top-to-bottom, columns left-to-right.
func (t *Table[S, A]) States() []S { return slices.Clone(t.order) }

// Len returns the number of rows.
func (t *Table[S, A]) Len() int { return len(t.order) }

// Row returns the destination sequence of state (vocabulary order) and
// whether the state has a row.
func (t *Table[S, A]) Row(state S) ([]S, bool) {
	row, ok := t.rows[state]
	if !ok {
		return nil, false
	}

	return slices.Clone(row), true
}

// Triples flattens the table into its sorted (From, On, To) relation.
// Only discovered rows contribute, so the result is reachability-bounded.
func (t *Table[S, A]) Triples() []Triple[S, A] {
	out := make([]Triple[S, A], 0, len(t.order)*len(t.vocabulary))
	for _, s := range t.order {
		row := t.rows[s]
		for i, a := range t.vocabulary {
			out = append(out, Triple[S, A]{From: s, On: a, To: row[i]})
		}
	}
	sortTriples(out)

	return out
}

// Export is the structured automaton form consumed by external sinks:
// textual writers, graph-drawing tools, persistence layers. The core
// exposes the data; sinks own all formatting.
type Export[S cmp.Ordered, A cmp.Ordered] struct {
	Vocabulary []A
	States     []S
	Start      S
	Finals     []S
	Triples    []Triple[S, A]
}
