package fixpoint

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for closure computation.
var (
	// ErrNilStep is returned when a nil step function is passed.
	ErrNilStep = errors.New("fixpoint: step function is nil")

	// ErrNoFixpoint is returned when the round cap is exhausted before
	// two consecutive results coincide.
	ErrNoFixpoint = errors.New("fixpoint: no fixpoint within round limit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fixpoint: invalid option supplied")
)

// Option configures Closure behavior via functional arguments.
// An invalid Option (e.g. negative round cap) is recorded internally
// and surfaced as ErrOptionViolation when Closure is invoked.
type Option func(*options)

type options struct {
	maxRounds int // 0 means unbounded
	err       error
}

// WithMaxRounds caps the number of step applications.
//
//	n > 0: at most n rounds, then ErrNoFixpoint
//	n == 0: explicit no limit (caller guarantees a finite universe)
//	n < 0: invalid option → ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxRounds = n
	}
}

// Normalize returns xs sorted ascending with duplicates removed.
// The input slice is never mutated.
func Normalize[T cmp.Ordered](xs []T) []T {
	out := slices.Clone(xs)
	slices.Sort(out)

	return slices.Compact(out)
}

// Closure applies step to the normalized seed until the result stabilizes,
// and returns the stable, normalized value.
//
// step must be monotone (output ⊇ input); Closure normalizes every
// intermediate result, so stability is detected by slices.Equal on two
// consecutive rounds. With no round cap, termination relies on the
// finiteness of the element universe.
func Closure[T cmp.Ordered](seed []T, step func([]T) []T, opts ...Option) ([]T, error) {
	if step == nil {
		return nil, ErrNilStep
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	cur := Normalize(seed)
	for round := 0; ; round++ {
		if o.maxRounds > 0 && round >= o.maxRounds {
			return nil, fmt.Errorf("%w: %d rounds exhausted", ErrNoFixpoint, o.maxRounds)
		}
		next := Normalize(step(cur))
		if slices.Equal(cur, next) {
			return cur, nil
		}
		cur = next
	}
}
