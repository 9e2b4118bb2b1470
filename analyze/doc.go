// Package analyze computes structural properties of automata: dead and
// sync (trap) states, graph size, edge counts, in/out degrees, and
// cyclomatic complexity.
//
// Definitions:
//
//   - Dead state  — no accepting state is reachable from it
//     (reach.StatesFrom ∩ finals is empty).
//   - Sync state  — a non-accepting state that transitions to itself on
//     every vocabulary symbol. Every sync state is dead; not every dead
//     state is sync.
//
// The "meaningful" size of an automaton excludes traps:
// NodesAndEdgesExcludingTraps drops dead/sync states and every edge whose
// destination is dead or sync, and CyclomaticComplexity is E − N + 2P
// over that trap-excluded graph with P fixed at 1 (single connected
// component assumed).
//
// Complementation is a value transformation and lives on the automaton
// itself: see (*core.DFA).Complement.
package analyze
