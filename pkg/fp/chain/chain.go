package chain

import (
	"context"

	"github.com/ib-77/fpkit/pkg/fp/deferred"
	"github.com/ib-77/fpkit/pkg/fp/result"
)

// Chain wraps a result.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result result.Result[error, T]
}

// Start creates a new chain from a result.Result
func Start[T any](ctx context.Context, r result.Result[error, T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: r,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, result.Success[error](value))
}

func (c *Chain[T]) Context() context.Context {
	return c.ctx
}

// Result returns the underlying result.Result
func (c *Chain[T]) Result() result.Result[error, T] {
	return c.result
}

// Then chains a function that returns result.Result[error, U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) result.Result[error, U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		result: result.FlatMap(c.result, func(v T) result.Result[error, U] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		result: result.TryMap(c.result, func(v T) (U, error) {
			return tryOnSuccess(c.ctx, v)
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		result: result.Map(c.result, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

func ValidateAll[T any](c *Chain[T], breakOnError bool, checks ...func(context.Context, T) error) *Chain[T] {
	bound := make([]func(T) error, 0, len(checks))
	for _, check := range checks {
		bound = append(bound, func(v T) error {
			return check(c.ctx, v)
		})
	}

	return &Chain[T]{
		ctx:    c.ctx,
		result: result.ValidateAll(c.result, breakOnError, bound...),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: c.result.Tap(func(v T) {
			onSuccess(c.ctx, v)
		}),
	}
}

// Finally collapses the chain into a final value
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return result.Fold(c.result,
		func(err error) U { return onFailure(c.ctx, err) },
		func(v T) U { return onSuccess(c.ctx, v) })
}

// ToDeferred continues the chain as a deferred computation
func (c *Chain[T]) ToDeferred() deferred.Deferred[T, error] {
	return deferred.FromResult(c.result)
}
