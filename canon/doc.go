// Package canon produces canonical normal forms of automata by
// deterministic state renaming, and tests equivalence of automata via
// those normal forms.
//
// Rename tabulates the automaton (table.Build) over its SORTED
// vocabulary and assigns consecutive integers to states in discovery
// order: the start state first, then every destination in first-seen
// row-then-column order. Because that order depends only on the
// reachable structure and the (sorted) vocabulary — never on original
// state identities — two automata that are isomorphic via a
// start/final/transition-preserving state bijection rename to IDENTICAL
// canonical automata. Minimize two automata independently, Beautify
// both, compare structurally: that is the equivalence test this package
// exists for (Equivalent does exactly this comparison).
//
// BeautifyPowerset handles automata whose states are themselves sets of
// underlying states, as produced by subset-construction style producers.
// The EMPTY set is not an ordinary state: it is the dead sentinel. It is
// never assigned a row of its own; transitions landing on it are mapped
// to the reserved id Sentinel (0), below every assigned id, so they stay
// distinguishable from transitions between ordinary states.
//
// Determinism is load-bearing here: any parallelization of row
// construction must preserve the exact discovery order, or canonical
// forms of isomorphic automata stop being byte-identical.
package canon
