package chain

import (
	"context"

	"github.com/railkit/rail/pkg/rail"
	"github.com/railkit/rail/pkg/rail/solo"
)

// Chain wraps a rail.Result with context to enable fluent composition.
type Chain[T any] struct {
	ctx context.Context
	res rail.Result[T]
}

// Start creates a new chain from a rail.Result.
func Start[T any](ctx context.Context, r rail.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rail.Ok(v))
}

// Result returns the underlying rail.Result.
func (c Chain[T]) Result() rail.Result[T] {
	return c.res
}

// Then composes a function that already returns a rail.Result.
func (c Chain[T]) Then(onOk func(ctx context.Context, v T) rail.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onOk)}
}

// ThenTry composes a function that returns (T, error), like repo calls.
func (c Chain[T]) ThenTry(try func(ctx context.Context, v T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

// Map transforms the success value through the guarded solo.MapOk.
func (c Chain[T]) Map(onOk func(ctx context.Context, v T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.MapOk(c.ctx, c.res, onOk)}
}

// MapErr rewrites the error through the guarded solo.MapError.
func (c Chain[T]) MapErr(onError func(ctx context.Context, err error) error) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.MapError(c.ctx, c.res, onError)}
}

// OrElse substitutes a fallback value on the error path.
func (c Chain[T]) OrElse(fallback T) Chain[T] {
	if c.res.IsErr() {
		return Chain[T]{ctx: c.ctx, res: rail.Ok(fallback)}
	}
	return c
}

// OrElseGet substitutes a lazily produced fallback on the error path.
func (c Chain[T]) OrElseGet(produce func(ctx context.Context) T) Chain[T] {
	if c.res.IsErr() {
		return Chain[T]{ctx: c.ctx, res: rail.Ok(produce(c.ctx))}
	}
	return c
}

// Ensure triggers side effects for success/failure without changing the
// result. Either handler may be nil. The handlers are not guarded.
func (c Chain[T]) Ensure(onOk func(context.Context, T), onError func(context.Context, error)) Chain[T] {
	if c.res.IsErr() {
		if onError != nil {
			onError(c.ctx, c.res.Err())
		}
		return c
	}
	if onOk != nil {
		onOk(c.ctx, c.res.Value())
	}
	return c
}

// WithStatus overrides the status code the transport layer should use.
func (c Chain[T]) WithStatus(statusCode int) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.WithStatusCode(statusCode)}
}

// Finally collapses the chain to a final value, delegating to solo.Finally.
func (c Chain[T]) Finally(
	onOk func(context.Context, T) T,
	onError func(context.Context, error) T) T {
	return solo.Finally(c.ctx, c.res, onOk, onError)
}

// Switch moves a chain from T to U via a result-returning function. Free
// function because Go methods cannot introduce type parameters.
func Switch[T, U any](c Chain[T], onOk func(context.Context, T) rail.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onOk)}
}

// Map moves a chain from T to U via a guarded pure transformation.
func Map[T, U any](c Chain[T], onOk func(context.Context, T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.MapOk(c.ctx, c.res, onOk)}
}

// Try moves a chain from T to U via a (U, error) function.
func Try[T, U any](c Chain[T], try func(context.Context, T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}
