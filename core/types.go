package core

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/dfa/fixpoint"
)

// Sentinel errors for DFA construction.
var (
	// ErrNilDelta indicates a nil transition rule was supplied.
	ErrNilDelta = errors.New("core: transition rule is nil")

	// ErrEmptyVocabulary indicates an empty symbol sequence was supplied.
	ErrEmptyVocabulary = errors.New("core: vocabulary is empty")

	// ErrEmptyStates indicates an empty state sequence was supplied.
	ErrEmptyStates = errors.New("core: state sequence is empty")

	// ErrMalformedAutomaton indicates a structural invariant violation:
	// undeclared start or final state, a duplicate state or symbol, or a
	// transition leaving the declared state set. Always wrapped with the
	// offending detail; match via errors.Is.
	ErrMalformedAutomaton = errors.New("core: malformed automaton")
)

// TransitionFunc is a total transition rule: one unique destination per
// (state, symbol) pair.
type TransitionFunc[S cmp.Ordered, A cmp.Ordered] func(state S, symbol A) S

// DFA is an immutable deterministic finite automaton over state type S
// and symbol type A. Zero values are not usable; construct via New or
// NewUnchecked.
type DFA[S cmp.Ordered, A cmp.Ordered] struct {
	vocabulary []A
	states     []S
	start      S
	finals     []S // sorted, deduplicated
	delta      TransitionFunc[S, A]
}

// New builds a DFA and validates every structural invariant:
// start ∈ states, finals ⊆ states, no duplicate states or symbols, and
// delta total and closed over states × vocabulary. Any violation yields
// an error wrapping ErrMalformedAutomaton.
// Complexity: O(|Q|·|Σ|) for the closure check.
func New[S cmp.Ordered, A cmp.Ordered](
	vocabulary []A,
	states []S,
	start S,
	finals []S,
	delta TransitionFunc[S, A],
) (*DFA[S, A], error) {
	if delta == nil {
		return nil, ErrNilDelta
	}
	if len(vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}
	if len(states) == 0 {
		return nil, ErrEmptyStates
	}
	if dup, ok := firstDuplicate(states); ok {
		return nil, fmt.Errorf("%w: duplicate state %v", ErrMalformedAutomaton, dup)
	}
	if dup, ok := firstDuplicate(vocabulary); ok {
		return nil, fmt.Errorf("%w: duplicate symbol %v", ErrMalformedAutomaton, dup)
	}
	if !slices.Contains(states, start) {
		return nil, fmt.Errorf("%w: start state %v not declared", ErrMalformedAutomaton, start)
	}
	for _, f := range finals {
		if !slices.Contains(states, f) {
			return nil, fmt.Errorf("%w: final state %v not declared", ErrMalformedAutomaton, f)
		}
	}
	// Closure check: every transition must land inside the declared set.
	member := make(map[S]struct{}, len(states))
	for _, s := range states {
		member[s] = struct{}{}
	}
	for _, s := range states {
		for _, a := range vocabulary {
			if dst := delta(s, a); !setHas(member, dst) {
				return nil, fmt.Errorf("%w: transition (%v, %v) → %v leaves the state set",
					ErrMalformedAutomaton, s, a, dst)
			}
		}
	}

	return NewUnchecked(vocabulary, states, start, finals, delta), nil
}

// NewUnchecked builds a DFA without validating the invariants of New.
// Intended for producers whose reachable state space is discovered
// incrementally; the caller guarantees totality and closure.
func NewUnchecked[S cmp.Ordered, A cmp.Ordered](
	vocabulary []A,
	states []S,
	start S,
	finals []S,
	delta TransitionFunc[S, A],
) *DFA[S, A] {
	return &DFA[S, A]{
		vocabulary: slices.Clone(vocabulary),
		states:     slices.Clone(states),
		start:      start,
		finals:     fixpoint.Normalize(finals),
		delta:      delta,
	}
}

func firstDuplicate[T cmp.Ordered](xs []T) (T, bool) {
	seen := make(map[T]struct{}, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			return x, true
		}
		seen[x] = struct{}{}
	}
	var zero T

	return zero, false
}

func setHas[S comparable](set map[S]struct{}, s S) bool {
	_, ok := set[s]

	return ok
}
