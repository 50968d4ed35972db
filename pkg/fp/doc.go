// Package fp holds the pieces shared by the option, result and deferred
// packages: nil detection, panic recovery into typed failures, joined error
// flattening and the Source contract for external asynchronous primitives.
//
// The containers themselves live in sub-packages:
// - option: Option[T], presence or absence of a value
// - result: Result[F, S], failure or success
// - deferred: Deferred[S, F], a lazily run continuation-passing computation
// - chain: a context-carrying fluent wrapper over Result[error, T]
package fp
