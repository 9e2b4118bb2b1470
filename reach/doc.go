// Package reach computes reachability over a DFA's transition rule:
// one-step destinations, the symbols connecting two states, and the full
// closed set of states reachable from an origin.
//
// All functions take the raw (rule, vocabulary) pair rather than a
// *core.DFA so that producers with incrementally discovered state spaces
// can analyze reachability before a declared automaton value exists.
//
// StatesFrom is built on fixpoint.Closure: the one-step destination map
// is monotone over a finite state universe, so the closure stabilizes in
// at most |Q| rounds. The result always contains the origin and is closed
// — every member, under every symbol, maps back into the result.
package reach
