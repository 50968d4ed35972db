// Package chain provides a fluent wrapper around result.Result[error, T]
// for building synchronous railway-oriented chains that carry a context.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new Result[error, U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - ValidateAll: run checks, optionally collecting every error
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
// - ToDeferred: continue the chain as a deferred computation
package chain
