// Package result provides Result[F, S], a disjoint union holding either a
// failure of type F or a success of type S. It is the explicit alternative
// to panicking on expected errors: domain rules return a Failure and callers
// compose with Map and FlatMap.
//
// Highlights:
// - Success/Failure/Of: construct a Result
// - FromAttempt/Try: recover panics and error returns into a Failure
// - Map/FlatMap/MapFailure: transform, short-circuiting on failure
// - Fold/Run: eliminate into a value or into continuations
// - Validate/ValidateAll/FailOnError/TryMap: error-typed pipeline steps
package result
