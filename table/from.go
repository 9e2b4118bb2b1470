package table

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/dfa/core"
)

// FromOption configures FromTriples.
type FromOption func(*fromOptions)

type fromOptions struct {
	legacyFallback bool
}

// WithLegacyFallback reproduces the historical reconstruction behavior:
// totality is NOT validated, and a lookup that matches no triple silently
// returns the destination of the LAST triple in the list. Only use this
// when exact backward compatibility with that hazard is required;
// the default strict mode rejects incomplete tables up front.
func WithLegacyFallback() FromOption {
	return func(o *fromOptions) { o.legacyFallback = true }
}

// FromTriples reconstructs a callable automaton from its explicit triple
// relation.
//
// Strict mode (default): every (state, symbol) pair over states ×
// vocabulary must be covered by a triple, otherwise ErrIncompleteTable
// is returned; the result is then fully validated by core.New, so the
// reconstructed rule can never fall through at lookup time.
//
// Legacy mode (WithLegacyFallback): no totality validation; the rule
// scans triples linearly and, on a miss, yields the last triple's
// destination. The automaton is built unchecked.
func FromTriples[S cmp.Ordered, A cmp.Ordered](
	vocabulary []A,
	states []S,
	start S,
	finals []S,
	triples []Triple[S, A],
	opts ...FromOption,
) (*core.DFA[S, A], error) {
	var o fromOptions
	for _, opt := range opts {
		opt(&o)
	}
	if len(triples) == 0 {
		return nil, fmt.Errorf("%w: no triples", ErrIncompleteTable)
	}

	if o.legacyFallback {
		fallback := triples[len(triples)-1].To
		rule := func(s S, a A) S {
			for _, tr := range triples {
				if tr.From == s && tr.On == a {
					return tr.To
				}
			}

			return fallback
		}

		return core.NewUnchecked(vocabulary, states, start, finals, rule), nil
	}

	type pair struct {
		s S
		a A
	}
	lookup := make(map[pair]S, len(triples))
	for _, tr := range triples {
		lookup[pair{tr.From, tr.On}] = tr.To
	}
	for _, s := range states {
		for _, a := range vocabulary {
			if _, ok := lookup[pair{s, a}]; !ok {
				return nil, fmt.Errorf("%w: no entry for (%v, %v)", ErrIncompleteTable, s, a)
			}
		}
	}
	rule := func(s S, a A) S { return lookup[pair{s, a}] }

	return core.New(vocabulary, states, start, finals, rule)
}
