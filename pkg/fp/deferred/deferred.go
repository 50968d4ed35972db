package deferred

import (
	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/result"
)

type Deferred[S, F any] struct {
	body func(resolve func(S), reject func(F))
}

// New wraps body, which must invoke at most one of the continuations, at
// most once.
func New[S, F any](body func(resolve func(S), reject func(F))) Deferred[S, F] {
	return Deferred[S, F]{body: body}
}

// Of resolves immediately with v.
func Of[F, S any](v S) Deferred[S, F] {
	return New(func(resolve func(S), _ func(F)) {
		resolve(v)
	})
}

// Reject rejects immediately with f.
func Reject[S, F any](f F) Deferred[S, F] {
	return New(func(_ func(S), reject func(F)) {
		reject(f)
	})
}

// FromResult hands a success to resolve and a failure to reject.
func FromResult[F, S any](r result.Result[F, S]) Deferred[S, F] {
	return New(r.Run)
}

// FromSource attaches resolve and reject as the completion handlers of src.
// The source is asked again on every Run.
func FromSource[S, F any](src fp.Source[S, F]) Deferred[S, F] {
	return New(func(resolve func(S), reject func(F)) {
		src.OnComplete(resolve, reject)
	})
}

// FromChan waits for one Result on ch. A channel closed without a value
// leaves the computation unresolved.
func FromChan[F, S any](ch <-chan result.Result[F, S]) Deferred[S, F] {
	return New(func(resolve func(S), reject func(F)) {
		r, ok := <-ch
		if !ok {
			return
		}
		r.Run(resolve, reject)
	})
}

// Run executes the computation. Nil continuations discard their value.
func (d Deferred[S, F]) Run(resolve func(S), reject func(F)) {
	if d.body == nil {
		return
	}
	if resolve == nil {
		resolve = func(S) {}
	}
	if reject == nil {
		reject = func(F) {}
	}
	d.body(resolve, reject)
}

// Tap runs effect with the success value before passing it on.
func (d Deferred[S, F]) Tap(effect func(S)) Deferred[S, F] {
	return Map(d, func(s S) S {
		effect(s)
		return s
	})
}

// Map transforms the success value. A panic raised by onSuccess is routed
// to reject; failures pass through without calling onSuccess. A panic value
// that F cannot hold escapes Run, so use F = error or any to capture every
// panic.
func Map[S, U, F any](d Deferred[S, F], onSuccess func(S) U) Deferred[U, F] {
	return New(func(resolve func(U), reject func(F)) {
		d.Run(func(s S) {
			var u U
			if f, panicked := fp.Catch[F](func() { u = onSuccess(s) }); panicked {
				reject(f)
				return
			}
			resolve(u)
		}, reject)
	})
}

// FlatMap runs the Deferred returned by onSuccess with the outer
// continuations. A panic raised while building it is routed to reject;
// failures pass through without calling onSuccess. As with Map, only
// F = error or any captures every panic value.
func FlatMap[S, U, F any](d Deferred[S, F], onSuccess func(S) Deferred[U, F]) Deferred[U, F] {
	return New(func(resolve func(U), reject func(F)) {
		d.Run(func(s S) {
			var next Deferred[U, F]
			if f, panicked := fp.Catch[F](func() { next = onSuccess(s) }); panicked {
				reject(f)
				return
			}
			next.Run(resolve, reject)
		}, reject)
	})
}
