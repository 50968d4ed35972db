// Package deferred provides Deferred[S, F], a continuation-passing
// computation with a success and a failure continuation. Building or
// transforming a Deferred never executes anything; Run executes the whole
// chain, and every Run executes it again.
//
// Common usage:
// - New/Of/Reject: construct from a body or a value
// - FromResult/FromSource/FromChan: lift a Result, an external async source
//   or a channel
// - Map/FlatMap: sequence steps; panics in callbacks are routed to reject
// - Run: drive the chain with resolve/reject continuations
// - Go/Async/Await: goroutine-backed futures and blocking collection
//
// Deferred adds no scheduling of its own and has no cancellation: a body
// that never completes leaves the chain unresolved.
package deferred
