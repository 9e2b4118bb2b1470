package core

import "slices"

// Vocabulary returns a copy of the symbol sequence, in declaration order.
func (d *DFA[S, A]) Vocabulary() []A { return slices.Clone(d.vocabulary) }

// States returns a copy of the state sequence, in declaration order.
func (d *DFA[S, A]) States() []S { return slices.Clone(d.states) }

// Start returns the initial state.
func (d *DFA[S, A]) Start() S { return d.start }

// Finals returns a copy of the accepting states, sorted ascending.
func (d *DFA[S, A]) Finals() []S { return slices.Clone(d.finals) }

// Delta returns the transition rule.
func (d *DFA[S, A]) Delta() TransitionFunc[S, A] { return d.delta }

// Step applies the transition rule once.
func (d *DFA[S, A]) Step(state S, symbol A) S { return d.delta(state, symbol) }

// IsFinal reports whether state is accepting. O(log |F|).
func (d *DFA[S, A]) IsFinal(state S) bool {
	_, ok := slices.BinarySearch(d.finals, state)

	return ok
}

// Walk left-folds the transition rule over input starting at the given
// state, and returns the state reached. Empty input returns origin
// unchanged. Total given a total rule; no failure mode.
// Complexity: O(len(input)).
func (d *DFA[S, A]) Walk(origin S, input []A) S {
	cur := origin
	for _, a := range input {
		cur = d.delta(cur, a)
	}

	return cur
}

// Accepts reports whether the automaton accepts the input word:
// the state reached by walking from Start is a final state.
func (d *DFA[S, A]) Accepts(input []A) bool {
	return d.IsFinal(d.Walk(d.start, input))
}

// Complement returns a new automaton over the same vocabulary, states,
// start, and transition rule whose accepting set is States \ Finals.
// For every input w: Complement().Accepts(w) == !Accepts(w).
func (d *DFA[S, A]) Complement() *DFA[S, A] {
	inverted := make([]S, 0, len(d.states))
	for _, s := range d.states {
		if !d.IsFinal(s) {
			inverted = append(inverted, s)
		}
	}

	return NewUnchecked(d.vocabulary, d.states, d.start, inverted, d.delta)
}
