// Package table converts between the two faces of an automaton: an
// opaque callable transition rule and an explicit finite enumeration.
//
// Three representations are provided:
//
//   - Table  — one row per discovered state, one destination per
//     vocabulary symbol in vocabulary order. Built incrementally from the
//     start state: a row is added for every destination that has no row
//     yet, pass after pass, until a pass adds nothing (a fixpoint over
//     the table). Only states reachable from the start acquire rows, so
//     an automaton over an unbounded state type can still be tabulated
//     as long as its reachable set is finite.
//   - Triples — the relation as sorted (From, On, To) rows. Triples(d)
//     enumerates the FULL cross product over the declared state set
//     (for size and edge-count metrics); (*Table).Triples() enumerates
//     only the reachability-bounded rows.
//   - Export — the structured (vocabulary, states, start, finals,
//     triples) form handed to external sinks (writers, graph drawers).
//     The package does no formatting or persistence itself.
//
// FromTriples reconstructs a callable rule from a triple list by linear
// lookup. The historical behavior of this conversion was to silently
// return the LAST triple's destination when no (state, symbol) entry
// matches — a latent hazard when the table is incomplete. By default
// FromTriples therefore validates totality up front and fails with
// ErrIncompleteTable; pass WithLegacyFallback to reproduce the silent
// fallback exactly when backward compatibility is required.
//
// Determinism note: the row discovery order of Build (start first, then
// first-seen destinations in row-then-column order) is load-bearing for
// canonical renaming in package canon and must never be perturbed.
package table
