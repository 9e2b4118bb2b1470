package analyze

import (
	"cmp"
	"errors"
	"slices"

	"github.com/katalvlaran/dfa/core"
	"github.com/katalvlaran/dfa/reach"
	"github.com/katalvlaran/dfa/table"
)

// ErrNilAutomaton is returned if a nil automaton pointer is passed.
var ErrNilAutomaton = errors.New("analyze: automaton is nil")

// IsDead reports whether no accepting state is reachable from state:
// the closure of {state} under the rule is disjoint from finals.
func IsDead[S cmp.Ordered, A cmp.Ordered](
	delta core.TransitionFunc[S, A],
	vocabulary []A,
	finals []S,
	state S,
) (bool, error) {
	closed, err := reach.StatesFrom(delta, vocabulary, state)
	if err != nil {
		return false, err
	}
	for _, s := range closed {
		if slices.Contains(finals, s) {
			return false, nil
		}
	}

	return true, nil
}

// IsSync reports whether state is a trap: not accepting, and self-looping
// under every vocabulary symbol.
func IsSync[S cmp.Ordered, A cmp.Ordered](
	delta core.TransitionFunc[S, A],
	vocabulary []A,
	finals []S,
	state S,
) bool {
	if slices.Contains(finals, state) {
		return false
	}
	for _, a := range vocabulary {
		if delta(state, a) != state {
			return false
		}
	}

	return true
}

// DeadStates filters the declared states by IsDead, in declaration order.
// Complexity: O(|Q|) reachability closures.
func DeadStates[S cmp.Ordered, A cmp.Ordered](d *core.DFA[S, A]) ([]S, error) {
	if d == nil {
		return nil, ErrNilAutomaton
	}
	delta, vocab, finals := d.Delta(), d.Vocabulary(), d.Finals()

	var out []S
	for _, s := range d.States() {
		dead, err := IsDead(delta, vocab, finals, s)
		if err != nil {
			return nil, err
		}
		if dead {
			out = append(out, s)
		}
	}

	return out, nil
}

// SyncStates filters the declared states by IsSync, in declaration order.
func SyncStates[S cmp.Ordered, A cmp.Ordered](d *core.DFA[S, A]) []S {
	delta, vocab, finals := d.Delta(), d.Vocabulary(), d.Finals()

	var out []S
	for _, s := range d.States() {
		if IsSync(delta, vocab, finals, s) {
			out = append(out, s)
		}
	}

	return out
}

// Size returns the number of declared states.
func Size[S cmp.Ordered, A cmp.Ordered](d *core.DFA[S, A]) int {
	return len(d.States())
}

// NodesAndEdges returns (|Q|, |full transition relation|).
func NodesAndEdges[S cmp.Ordered, A cmp.Ordered](d *core.DFA[S, A]) (int, int) {
	return len(d.States()), len(table.Triples(d))
}

// NodesAndEdgesExcludingTraps returns the node and edge counts of the
// "meaningful" graph: dead and sync states are dropped, along with every
// edge whose destination is dead or sync.
func NodesAndEdgesExcludingTraps[S cmp.Ordered, A cmp.Ordered](d *core.DFA[S, A]) (int, int, error) {
	if d == nil {
		return 0, 0, ErrNilAutomaton
	}
	dead, err := DeadStates(d)
	if err != nil {
		return 0, 0, err
	}
	trap := make(map[S]struct{}, len(dead))
	for _, s := range dead {
		trap[s] = struct{}{}
	}
	for _, s := range SyncStates(d) {
		trap[s] = struct{}{}
	}

	nodes := 0
	for _, s := range d.States() {
		if _, isTrap := trap[s]; !isTrap {
			nodes++
		}
	}
	edges := 0
	for _, tr := range table.Triples(d) {
		if _, isTrap := trap[tr.To]; !isTrap {
			edges++
		}
	}

	return nodes, edges, nil
}

// CyclomaticComplexity returns E − N + 2·P over the trap-excluded graph,
// with P fixed at 1.
func CyclomaticComplexity[S cmp.Ordered, A cmp.Ordered](d *core.DFA[S, A]) (int, error) {
	nodes, edges, err := NodesAndEdgesExcludingTraps(d)
	if err != nil {
		return 0, err
	}

	return edges - nodes + 2, nil
}

// InDegree counts the arrows of the full relation landing on dest.
func InDegree[S cmp.Ordered, A cmp.Ordered](
	delta core.TransitionFunc[S, A],
	vocabulary []A,
	states []S,
	dest S,
) int {
	count := 0
	for _, s := range states {
		for _, a := range vocabulary {
			if delta(s, a) == dest {
				count++
			}
		}
	}

	return count
}

// OutDegree counts the arrows of the full relation leaving origin — one
// per vocabulary symbol for a total rule.
func OutDegree[S cmp.Ordered, A cmp.Ordered](
	delta core.TransitionFunc[S, A],
	vocabulary []A,
	origin S,
) int {
	return len(reach.Destinations(delta, vocabulary, origin))
}
