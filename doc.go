// Package dfa is your in-memory toolkit for representing, transforming,
// and analyzing deterministic finite automata — from acceptance testing
// to canonical normal forms and structural graph metrics.
//
// 🚀 What is dfa?
//
//	A modern, generic, zero-runtime-dependency library that brings together:
//		• Core primitives: immutable DFA values over any ordered state/symbol types
//		• Acceptance: fold a transition rule over an input word, test membership
//		• Reachability: closed reachable-state sets from any origin
//		• Conversion: callable transition rule ⇄ explicit transition table ⇄ triples
//		• Canonicalization: deterministic renaming to an isomorphism-invariant
//		  normal form — the basis of equivalence testing for minimized automata
//		• Structural analysis: dead/sync states, complement, node/edge counts,
//		  cyclomatic complexity, in/out degrees
//
// ✨ Why choose dfa?
//
//   - Generic – states and symbols are type parameters bounded by cmp.Ordered
//   - Immutable values – every transformation returns a new automaton
//   - Deterministic – discovery order, table order, and canonical forms are
//     reproducible by construction
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under six subpackages:
//
//	core/     — the DFA value type, validation, walk/accept, complement
//	fixpoint/ — generic iterate-until-stable closure primitive
//	reach/    — reachable-state analysis built on fixpoint
//	table/    — transition tables, triple relations, two-way conversion, export
//	canon/    — canonical renaming, equivalence, powerset beautification
//	analyze/  — dead/sync detection and graph-size / complexity metrics
//
// Quick example — binary numbers divisible by three:
//
//	vocabulary {'0','1'}, states {S0,S1,S2}, start S0, finals {S0},
//	δ(Si, b) = S((2·i + b) mod 3)
//
// accepts "110" (6), rejects "101" (5), accepts "" (0).
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/dfa
package dfa
