package result

import (
	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/option"
)

// Result holds either a failure or a success. The zero value is a Failure
// carrying the zero F.
type Result[F, S any] struct {
	failure   F
	success   S
	isSuccess bool
}

func Success[F, S any](s S) Result[F, S] {
	return Result[F, S]{
		success:   s,
		isSuccess: true,
	}
}

func Failure[S, F any](f F) Result[F, S] {
	return Result[F, S]{
		failure:   f,
		isSuccess: false,
	}
}

// Of returns Success(v) unless v is nil, in which case it returns
// Failure(failureIfNil).
func Of[F, S any](v S, failureIfNil F) Result[F, S] {
	if fp.IsNil(v) {
		return Failure[S](failureIfNil)
	}
	return Success[F](v)
}

// FromAttempt calls fn immediately. A panic raised by fn becomes a Failure;
// see fp.Recovered for how the panic value is represented as F. A panic
// value that F cannot hold is re-raised; use F = error or any to capture
// every panic.
func FromAttempt[F, S any](fn func() S) Result[F, S] {
	var s S
	if f, panicked := fp.Catch[F](func() { s = fn() }); panicked {
		return Failure[S](f)
	}
	return Success[F](s)
}

// Try calls fn immediately and turns a returned error, or a panic, into a
// Failure.
func Try[S any](fn func() (S, error)) Result[error, S] {
	var (
		s   S
		err error
	)
	if f, panicked := fp.Catch[error](func() { s, err = fn() }); panicked {
		return Failure[S](f)
	}
	if err != nil {
		return Failure[S](err)
	}
	return Success[error](s)
}

func FromOption[F, S any](o option.Option[S], failureIfAbsent F) Result[F, S] {
	if v, ok := o.Get(); ok {
		return Success[F](v)
	}
	return Failure[S](failureIfAbsent)
}

// ToOption drops the failure value.
func ToOption[F, S any](r Result[F, S]) option.Option[S] {
	if r.isSuccess {
		return option.Present(r.success)
	}
	return option.Absent[S]()
}

func (r Result[F, S]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[F, S]) IsFailure() bool {
	return !r.isSuccess
}

// Get returns the success value and whether r is a Success.
func (r Result[F, S]) Get() (S, bool) {
	return r.success, r.isSuccess
}

// GetFailure returns the failure value and whether r is a Failure.
func (r Result[F, S]) GetFailure() (F, bool) {
	return r.failure, !r.isSuccess
}

func (r Result[F, S]) OrElse(fallback S) S {
	if r.isSuccess {
		return r.success
	}
	return fallback
}

// Tap runs effect on success only and returns r unchanged.
func (r Result[F, S]) Tap(effect func(S)) Result[F, S] {
	if r.isSuccess {
		effect(r.success)
	}
	return r
}

// TapFailure runs effect on failure only and returns r unchanged.
func (r Result[F, S]) TapFailure(effect func(F)) Result[F, S] {
	if !r.isSuccess {
		effect(r.failure)
	}
	return r
}

// Run hands the carried value to exactly one of the continuations. Nil
// continuations discard the value.
func (r Result[F, S]) Run(onSuccess func(S), onFailure func(F)) {
	if r.isSuccess {
		if onSuccess != nil {
			onSuccess(r.success)
		}
		return
	}
	if onFailure != nil {
		onFailure(r.failure)
	}
}

func Map[F, In, Out any](input Result[F, In], onSuccess func(In) Out) Result[F, Out] {
	if input.isSuccess {
		return Success[F](onSuccess(input.success))
	}
	return Failure[Out](input.failure)
}

func FlatMap[F, In, Out any](input Result[F, In], onSuccess func(In) Result[F, Out]) Result[F, Out] {
	if input.isSuccess {
		return onSuccess(input.success)
	}
	return Failure[Out](input.failure)
}

func MapFailure[F, G, S any](input Result[F, S], onFailure func(F) G) Result[G, S] {
	if input.isSuccess {
		return Success[G](input.success)
	}
	return Failure[S](onFailure(input.failure))
}

func Fold[F, S, Out any](input Result[F, S], onFailure func(F) Out, onSuccess func(S) Out) Out {
	if input.isSuccess {
		return onSuccess(input.success)
	}
	return onFailure(input.failure)
}
