// Package fixpoint provides a generic "iterate until stable" primitive
// over canonically ordered element sets.
//
// Closure repeatedly applies a monotone step function to a normalized
// (sorted, deduplicated) slice until two consecutive results are equal,
// and returns that stable value. It is the single mechanism behind
// reachable-state computation (reach) and transition-table growth (table).
//
// Contract:
//
//   - The step function must be monotone: its output always contains its
//     input. Closure normalizes after every application, so "no growth"
//     is detectable by plain slice equality.
//   - The universe of possible elements must be finite; then the number
//     of rounds is bounded by the universe size. For state types that can
//     grow without bound, cap the iteration with WithMaxRounds — exceeding
//     the cap yields ErrNoFixpoint instead of looping forever.
//
// Complexity: O(k · (cost(step) + n·log n)) for k rounds over n elements.
package fixpoint
