package mass

import (
	"context"

	"github.com/railkit/rail/pkg/rail"
	"github.com/railkit/rail/pkg/rail/solo"
)

// deliver runs produce on its own goroutine and hands the outcome over a
// channel, watching ctx on both sides. The combinator logic itself stays
// synchronous; only the hand-off suspends. onCancel fires when the value
// was never delivered.
func deliver[In, Out any](ctx context.Context, input rail.Result[In],
	produce func(ctx context.Context) rail.Result[Out],
	onCancel func(ctx context.Context, in rail.Result[In])) <-chan rail.Result[Out] {

	ch := make(chan rail.Result[Out])
	out := make(chan rail.Result[Out])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- produce(ctx)
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else if onCancel != nil {
				onCancel(ctx, input)
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

func Validating[T any](ctx context.Context, input rail.Result[T],
	validate func(ctx context.Context, v T) (valid bool, errMsg string),
	onCancel func(ctx context.Context, in rail.Result[T])) <-chan rail.Result[T] {

	return deliver(ctx, input, func(ctx context.Context) rail.Result[T] {
		return solo.AndValidate(ctx, input, validate)
	}, onCancel)
}

func Switching[In, Out any](ctx context.Context, input rail.Result[In],
	onOk func(ctx context.Context, v In) rail.Result[Out],
	onCancel func(ctx context.Context, in rail.Result[In])) <-chan rail.Result[Out] {

	return deliver(ctx, input, func(ctx context.Context) rail.Result[Out] {
		return solo.Switch(ctx, input, onOk)
	}, onCancel)
}

func Mapping[In, Out any](ctx context.Context, input rail.Result[In],
	onOk func(ctx context.Context, v In) Out,
	onCancel func(ctx context.Context, in rail.Result[In])) <-chan rail.Result[Out] {

	return deliver(ctx, input, func(ctx context.Context) rail.Result[Out] {
		return solo.MapOk(ctx, input, onOk)
	}, onCancel)
}

func Remapping[T any](ctx context.Context, input rail.Result[T],
	onError func(ctx context.Context, err error) error,
	onCancel func(ctx context.Context, in rail.Result[T])) <-chan rail.Result[T] {

	return deliver(ctx, input, func(ctx context.Context) rail.Result[T] {
		return solo.MapError(ctx, input, onError)
	}, onCancel)
}

func Recovering[T any](ctx context.Context, input rail.Result[T],
	alternative func(ctx context.Context) rail.Result[T],
	onCancel func(ctx context.Context, in rail.Result[T])) <-chan rail.Result[T] {

	return deliver(ctx, input, func(ctx context.Context) rail.Result[T] {
		return solo.OrElseSwitch(ctx, input, alternative)
	}, onCancel)
}

func Teeing[T any](ctx context.Context, input rail.Result[T],
	effect func(ctx context.Context, v T),
	onCancel func(ctx context.Context, in rail.Result[T])) <-chan rail.Result[T] {

	return deliver(ctx, input, func(ctx context.Context) rail.Result[T] {
		return solo.WhenOk(ctx, input, effect)
	}, onCancel)
}

func DoubleTeeing[T any](ctx context.Context, input rail.Result[T],
	effect func(ctx context.Context, v T),
	effectOnError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, in rail.Result[T])) <-chan rail.Result[T] {

	return deliver(ctx, input, func(ctx context.Context) rail.Result[T] {
		return solo.WhenError(ctx, solo.WhenOk(ctx, input, effect), effectOnError)
	}, onCancel)
}

func Trying[In, Out any](ctx context.Context, input rail.Result[In],
	onTry func(ctx context.Context, v In) (Out, error),
	onCancel func(ctx context.Context, in rail.Result[In])) <-chan rail.Result[Out] {

	return deliver(ctx, input, func(ctx context.Context) rail.Result[Out] {
		return solo.Try(ctx, input, onTry)
	}, onCancel)
}

func Flattening[T any](ctx context.Context, input rail.Result[rail.Result[T]],
	onCancel func(ctx context.Context, in rail.Result[rail.Result[T]])) <-chan rail.Result[T] {

	return deliver(ctx, input, func(ctx context.Context) rail.Result[T] {
		return solo.Flatten(input)
	}, onCancel)
}

// Zipping awaits two pending results and pairs them with solo.Zip
// semantics. Cancellation before both resolve surfaces as a failure
// carrying the context error.
func Zipping[A, B any](ctx context.Context,
	a <-chan rail.Result[A], b <-chan rail.Result[B]) <-chan rail.Result[rail.Pair[A, B]] {

	out := make(chan rail.Result[rail.Pair[A, B]])

	go func() {
		defer close(out)

		ra, ok := await(ctx, a)
		if !ok {
			out <- unresolved[rail.Pair[A, B]](ctx)
			return
		}
		rb, ok := await(ctx, b)
		if !ok {
			out <- unresolved[rail.Pair[A, B]](ctx)
			return
		}

		select {
		case out <- solo.Zip(ra, rb):
		case <-ctx.Done():
		}
	}()

	return out
}

func unresolved[T any](ctx context.Context) rail.Result[T] {
	if err := ctx.Err(); err != nil {
		return rail.Capture[T](err)
	}
	return rail.Err[T](rail.NewError("pending result never resolved"))
}

func await[T any](ctx context.Context, ch <-chan rail.Result[T]) (rail.Result[T], bool) {
	select {
	case r, ok := <-ch:
		return r, ok
	case <-ctx.Done():
		var zero rail.Result[T]
		return zero, false
	}
}

// FinallyHandlers reduce each finished result to its final shape.
type FinallyHandlers[In, Out any] struct {
	OnOk    func(ctx context.Context, v In) Out
	OnError func(ctx context.Context, err error) Out
}

// Finalizing drains a stream of results, collapsing each via solo.Finally.
// onCancel, when set, receives every result left undelivered after ctx is
// done.
func Finalizing[In, Out any](ctx context.Context, inputCh <-chan rail.Result[In],
	handlers FinallyHandlers[In, Out],
	onCancel func(ctx context.Context, in rail.Result[In])) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				if onCancel != nil {
					for in := range inputCh {
						onCancel(ctx, in)
					}
				}
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := solo.Finally(ctx, in, handlers.OnOk, handlers.OnError)

				select {
				case out <- res:
				case <-ctx.Done():
					if onCancel != nil {
						onCancel(ctx, in)
						for rest := range inputCh {
							onCancel(ctx, rest)
						}
					}
					return
				}
			}
		}
	}()

	return out
}
