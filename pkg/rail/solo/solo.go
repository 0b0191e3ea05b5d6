package solo

import (
	"context"
	"net/http"

	"github.com/railkit/rail/pkg/rail"
)

// Succeed wraps a plain value, status 200.
func Succeed[T any](input T) rail.Result[T] {
	return rail.Ok(input)
}

// Fail wraps an error, status 400.
func Fail[T any](err error) rail.Result[T] {
	return rail.Err[T](err)
}

// FailWithStatus wraps an error with an explicit status code.
func FailWithStatus[T any](err error, statusCode int) rail.Result[T] {
	return rail.ErrWithStatus[T](err, statusCode)
}

// MapOk transforms the success value. The callback is guarded: a panic
// inside f becomes an error result with status 500 instead of reaching the
// caller. An error input passes through untouched, f is never invoked, and
// the incoming status code is preserved on both paths.
func MapOk[In, Out any](ctx context.Context, input rail.Result[In],
	f func(ctx context.Context, v In) Out) (out rail.Result[Out]) {

	if input.IsErr() {
		return rail.ErrFrom[In, Out](input)
	}

	defer func() {
		if r := recover(); r != nil {
			out = rail.Capture[Out](r)
		}
	}()

	return rail.Ok(f(ctx, input.Value())).WithStatusCode(input.StatusCode())
}

// Switch binds a callback that already returns a Result, moving the track
// from In to Out. Not guarded: the callback is expected to express its own
// failures as results.
func Switch[In, Out any](ctx context.Context, input rail.Result[In],
	onOk func(ctx context.Context, v In) rail.Result[Out]) rail.Result[Out] {

	if input.IsErr() {
		return rail.ErrFrom[In, Out](input)
	}
	return onOk(ctx, input.Value())
}

// MapError rewrites the error of a failed result. Guarded: if the mapper
// itself panics, the result carries an AggregateError of the original error
// and the fault. An ok input is returned unchanged.
func MapError[T any](ctx context.Context, input rail.Result[T],
	f func(ctx context.Context, err error) error) (out rail.Result[T]) {

	if input.IsOk() {
		return input
	}

	defer func() {
		if r := recover(); r != nil {
			out = rail.ErrWithStatus[T](
				rail.Aggregate(input.Err(), rail.FaultError(r)),
				input.StatusCode())
		}
	}()

	return rail.ErrWithStatus[T](f(ctx, input.Err()), input.StatusCode())
}

// OrElse returns the success value, or fallback when the result is an
// error.
func OrElse[T any](input rail.Result[T], fallback T) T {
	if input.IsOk() {
		return input.Value()
	}
	return fallback
}

// OrElseGet returns the success value, or invokes produce for a fallback.
// produce runs only on the error path.
func OrElseGet[T any](ctx context.Context, input rail.Result[T],
	produce func(ctx context.Context) T) T {

	if input.IsOk() {
		return input.Value()
	}
	return produce(ctx)
}

// OrElseSwitch substitutes an entirely different result on the error path.
// alternative runs only when input is an error.
func OrElseSwitch[T any](ctx context.Context, input rail.Result[T],
	alternative func(ctx context.Context) rail.Result[T]) rail.Result[T] {

	if input.IsOk() {
		return input
	}
	return alternative(ctx)
}

// WhenOk invokes a side effect on the success value and returns the input
// unchanged. Unlike MapOk the callback is not guarded: a panic propagates
// to the caller.
func WhenOk[T any](ctx context.Context, input rail.Result[T],
	effect func(ctx context.Context, v T)) rail.Result[T] {

	if input.IsOk() {
		effect(ctx, input.Value())
	}
	return input
}

// WhenError invokes a side effect on the error and returns the input
// unchanged. Not guarded, same asymmetry as WhenOk.
func WhenError[T any](ctx context.Context, input rail.Result[T],
	effect func(ctx context.Context, err error)) rail.Result[T] {

	if input.IsErr() {
		effect(ctx, input.Err())
	}
	return input
}

// Try adapts a conventional (Out, error) call. A returned error becomes a
// failure with status 400; a panic is captured as status 500.
func Try[In, Out any](ctx context.Context, input rail.Result[In],
	onTry func(ctx context.Context, v In) (Out, error)) (out rail.Result[Out]) {

	if input.IsErr() {
		return rail.ErrFrom[In, Out](input)
	}

	defer func() {
		if r := recover(); r != nil {
			out = rail.Capture[Out](r)
		}
	}()

	v, err := onTry(ctx, input.Value())
	if err != nil {
		return rail.Err[Out](err)
	}
	return rail.Ok(v)
}

// RunSafe invokes fn inside a guard. A returned error or a panic both
// produce a failure with status 500; success wraps the value as Ok.
func RunSafe[T any](ctx context.Context,
	fn func(ctx context.Context) (T, error)) (out rail.Result[T]) {

	defer func() {
		if r := recover(); r != nil {
			out = rail.Capture[T](r)
		}
	}()

	v, err := fn(ctx)
	if err != nil {
		return rail.ErrWithStatus[T](err, http.StatusInternalServerError)
	}
	return rail.Ok(v)
}

// RunSafeWith behaves like RunSafe but, on failure, aggregates base with
// the fault-derived error so the caller's context is not lost.
func RunSafeWith[T any](ctx context.Context, base error,
	fn func(ctx context.Context) (T, error)) (out rail.Result[T]) {

	defer func() {
		if r := recover(); r != nil {
			out = rail.ErrWithStatus[T](
				rail.Aggregate(base, rail.FaultError(r)),
				http.StatusInternalServerError)
		}
	}()

	v, err := fn(ctx)
	if err != nil {
		return rail.ErrWithStatus[T](
			rail.Aggregate(base, err), http.StatusInternalServerError)
	}
	return rail.Ok(v)
}

// RunSafeArg is the argument-taking overload of RunSafe.
func RunSafeArg[In, Out any](ctx context.Context, arg In,
	fn func(ctx context.Context, arg In) (Out, error)) rail.Result[Out] {

	return RunSafe(ctx, func(ctx context.Context) (Out, error) {
		return fn(ctx, arg)
	})
}

// Flatten collapses a nested result. An outer error wins and the inner
// result is never inspected; otherwise the inner result passes through with
// its own tag and status code.
func Flatten[T any](input rail.Result[rail.Result[T]]) rail.Result[T] {
	if input.IsErr() {
		return rail.ErrFrom[rail.Result[T], T](input)
	}
	return input.Value()
}

// Zip pairs two results. Both failing aggregate into one error; a single
// failure passes through with its status; two successes pair up as Ok.
func Zip[A, B any](a rail.Result[A], b rail.Result[B]) rail.Result[rail.Pair[A, B]] {
	switch {
	case a.IsErr() && b.IsErr():
		return rail.Err[rail.Pair[A, B]](rail.Aggregate(a.Err(), b.Err()))
	case a.IsErr():
		return rail.ErrFrom[A, rail.Pair[A, B]](a)
	case b.IsErr():
		return rail.ErrFrom[B, rail.Pair[A, B]](b)
	default:
		return rail.Ok(rail.Pair[A, B]{First: a.Value(), Second: b.Value()})
	}
}

// Validate checks a plain value, failing with status 400 on invalid input.
func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, v T) (valid bool, errMsg string)) rail.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

// AndValidate checks the success value of an existing result; errors pass
// through untouched.
func AndValidate[T any](ctx context.Context, input rail.Result[T],
	validate func(ctx context.Context, v T) (valid bool, errMsg string)) rail.Result[T] {

	if input.IsErr() {
		return input
	}

	if valid, errMsg := validate(ctx, input.Value()); !valid {
		return rail.Err[T](rail.NewError(errMsg))
	}
	return input
}

// ValidateAll runs every validator and aggregates the failures into one
// AggregateError, so a caller sees all violations at once. With
// breakOnError set it stops at the first failure instead.
func ValidateAll[T any](ctx context.Context, input rail.Result[T], breakOnError bool,
	validators ...func(ctx context.Context, v T) (valid bool, errMsg string)) rail.Result[T] {

	if input.IsErr() {
		return input
	}

	var errs []error
	for _, validate := range validators {
		if valid, errMsg := validate(ctx, input.Value()); !valid {
			errs = append(errs, rail.NewError(errMsg))
			if breakOnError {
				break
			}
		}
	}

	if len(errs) == 1 {
		return rail.Err[T](errs[0])
	}
	if len(errs) > 0 {
		return rail.Err[T](rail.Aggregate(errs...))
	}
	return input
}

// Finally collapses a result to a concrete value via handlers.
func Finally[In, Out any](ctx context.Context, input rail.Result[In],
	onOk func(ctx context.Context, v In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsOk() {
		return onOk(ctx, input.Value())
	}
	return onError(ctx, input.Err())
}
