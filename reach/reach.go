package reach

import (
	"cmp"

	"github.com/katalvlaran/dfa/core"
	"github.com/katalvlaran/dfa/fixpoint"
)

// Option configures StatesFrom.
type Option func(*options)

type options struct {
	maxStates int // 0 means unbounded
}

// WithMaxStates caps the closure at n discovered states; the bound is
// forwarded to fixpoint.Closure as a round limit. Zero means no cap.
// Use it when the state type allows unbounded generation.
func WithMaxStates(n int) Option {
	return func(o *options) { o.maxStates = n }
}

// Destinations returns the one-step destinations of origin, one per
// vocabulary symbol in vocabulary order. Duplicates across symbols are
// preserved.
func Destinations[S cmp.Ordered, A cmp.Ordered](delta core.TransitionFunc[S, A], vocabulary []A, origin S) []S {
	out := make([]S, len(vocabulary))
	for i, a := range vocabulary {
		out[i] = delta(origin, a)
	}

	return out
}

// SymbolsBetween returns every vocabulary symbol under which origin
// transitions exactly to dest, in vocabulary order; empty if none.
func SymbolsBetween[S cmp.Ordered, A cmp.Ordered](delta core.TransitionFunc[S, A], vocabulary []A, origin, dest S) []A {
	var out []A
	for _, a := range vocabulary {
		if delta(origin, a) == dest {
			out = append(out, a)
		}
	}

	return out
}

// StatesFrom returns the closure of {origin} under one-step transition:
// every state reachable from origin through any word, sorted ascending.
// The result always contains origin and is closed under delta.
// Complexity: O(|result|² · |Σ| · log |result|) in the worst case.
func StatesFrom[S cmp.Ordered, A cmp.Ordered](
	delta core.TransitionFunc[S, A],
	vocabulary []A,
	origin S,
	opts ...Option,
) ([]S, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	step := func(states []S) []S {
		out := append([]S{}, states...)
		for _, s := range states {
			out = append(out, Destinations(delta, vocabulary, s)...)
		}

		return out
	}
	seed := append(Destinations(delta, vocabulary, origin), origin)

	var fpOpts []fixpoint.Option
	if o.maxStates > 0 {
		// each round discovers at least one new state, so the state cap
		// doubles as a round cap
		fpOpts = append(fpOpts, fixpoint.WithMaxRounds(o.maxStates))
	}

	return fixpoint.Closure(seed, step, fpOpts...)
}
