package deferred

import (
	"context"
	"sync"

	"github.com/ib-77/fpkit/pkg/fp/result"
)

// Future is a goroutine-backed fp.Source. The call starts once, in Go, and
// its outcome is delivered to every registered handler pair.
type Future[S any] struct {
	done chan struct{}
	res  result.Result[error, S]
}

// Go starts fn on a new goroutine. A returned error or a panic becomes the
// future's failure.
func Go[S any](fn func() (S, error)) *Future[S] {
	f := &Future[S]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		f.res = result.Try(fn)
	}()

	return f
}

// Done is closed once the outcome is known.
func (f *Future[S]) Done() <-chan struct{} {
	return f.done
}

// OnComplete waits for the outcome on a separate goroutine and then invokes
// exactly one of the handlers.
func (f *Future[S]) OnComplete(onSuccess func(S), onFailure func(error)) {
	go func() {
		<-f.done
		f.res.Run(onSuccess, onFailure)
	}()
}

// Deferred wraps the future; running it never restarts the call.
func (f *Future[S]) Deferred() Deferred[S, error] {
	return FromSource[S, error](f)
}

// Async starts fn on a new goroutine each time the returned Deferred is run.
func Async[S any](fn func() (S, error)) Deferred[S, error] {
	return New(func(resolve func(S), reject func(error)) {
		Go(fn).OnComplete(resolve, reject)
	})
}

// Await runs d on a new goroutine and blocks until it completes or ctx is
// done. ctx only bounds the wait: the chain is not cancelled and may still
// complete later.
func Await[S, F any](ctx context.Context, d Deferred[S, F]) (result.Result[F, S], error) {
	out := make(chan result.Result[F, S], 1)
	once := &sync.Once{}

	go d.Run(
		func(s S) {
			once.Do(func() { out <- result.Success[F](s) })
		},
		func(f F) {
			once.Do(func() { out <- result.Failure[S](f) })
		})

	select {
	case r := <-out:
		return r, nil
	case <-ctx.Done():
		return result.Result[F, S]{}, ctx.Err()
	}
}
