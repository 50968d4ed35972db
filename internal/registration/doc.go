// Package registration is a user sign-up use case built on the fp
// combinators: value objects validate into results, repositories answer
// with deferred computations and the Service chains both without panics.
package registration
