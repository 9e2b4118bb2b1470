// Package core defines the central DFA value type and provides
// construction, validation, acceptance testing, and complementation.
//
// A DFA D = (Σ, Q, q₀, F, δ) is held as an immutable value:
//
//   - Vocabulary Σ — ordered sequence of input symbols
//   - States Q     — ordered sequence of states
//   - Start q₀     — the initial state, q₀ ∈ Q
//   - Finals F     — accepting states, F ⊆ Q
//   - Delta δ      — total transition rule Q × Σ → Q
//
// States and symbols are generic type parameters bounded by cmp.Ordered:
// equality drives acceptance, total order drives table-building and
// canonical enumeration in the sibling packages.
//
// Why immutable values?
//
//   - Every transformation (Complement here, renaming in canon,
//     conversion in table) returns a NEW automaton and never mutates its
//     input, so values can be shared across goroutines without locking.
//   - Accessors return defensive copies of the internal slices.
//
// Construction:
//
//	New          — validates all structural invariants up front and fails
//	               with ErrMalformedAutomaton (wrapped with detail) instead
//	               of letting downstream algorithms silently misbehave.
//	NewUnchecked — skips validation for producers whose state space is not
//	               pre-enumerable (e.g. powerset-construction
//	               intermediates); the caller guarantees the invariants.
//
// Errors:
//
//	ErrNilDelta            - transition rule is nil.
//	ErrEmptyVocabulary     - vocabulary holds no symbols.
//	ErrEmptyStates         - state sequence is empty.
//	ErrMalformedAutomaton  - start/final/closure/duplication invariant broken.
package core
