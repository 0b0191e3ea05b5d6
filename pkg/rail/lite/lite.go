package lite

import (
	"context"
	"sync"

	"github.com/railkit/rail/pkg/rail"
	"github.com/railkit/rail/pkg/rail/core"
	"github.com/railkit/rail/pkg/rail/mass"
)

// Run fans an engine out over lines parallel locomotives, keeping the value
// type. Use Turnout when the engine changes the value type.
func Run[T any](ctx context.Context, inputCh <-chan rail.Result[T],
	engine func(ctx context.Context, input rail.Result[T]) <-chan rail.Result[T],
	lines int) <-chan rail.Result[T] {

	return TurnoutWith(ctx, inputCh, engine, core.CancellationHandlers[T, T]{}, nil, lines)
}

func Turnout[In, Out any](ctx context.Context, inputCh <-chan rail.Result[In],
	engine func(ctx context.Context, input rail.Result[In]) <-chan rail.Result[Out],
	lines int) <-chan rail.Result[Out] {

	return TurnoutWith(ctx, inputCh, engine, core.CancellationHandlers[In, Out]{}, nil, lines)
}

// TurnoutWith is Turnout with explicit cancellation routing and a delivery
// callback per forwarded result.
func TurnoutWith[In, Out any](ctx context.Context, inputCh <-chan rail.Result[In],
	engine func(ctx context.Context, input rail.Result[In]) <-chan rail.Result[Out],
	handlers core.CancellationHandlers[In, Out],
	onDelivered func(ctx context.Context, out rail.Result[Out]), lines int) <-chan rail.Result[Out] {

	out := make(chan rail.Result[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, onDelivered, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// CancelRemaining drains an input channel after cancellation, forwarding
// each stranded value as a captured failure so downstream consumers still
// see one result per input. Disabled via core.WithProcessOptions.
func CancelRemaining[In, Out any](ctx context.Context,
	inputCh <-chan rail.Result[In], outCh chan<- rail.Result[Out]) {

	if !core.IsProcessRemainingEnabled(ctx, true) {
		return
	}

	for in := range inputCh {
		if in.IsErr() {
			outCh <- rail.ErrFrom[In, Out](in)
		} else {
			outCh <- rail.Capture[Out](ctx.Err())
		}
	}
}

func Validate[T any](validate func(ctx context.Context, v T) (valid bool, errMsg string)) func(ctx context.Context,
	input rail.Result[T]) <-chan rail.Result[T] {
	return func(ctx context.Context, input rail.Result[T]) <-chan rail.Result[T] {
		return mass.Validating(ctx, input, validate, nil)
	}
}

func Switch[In, Out any](onOk func(ctx context.Context, v In) rail.Result[Out]) func(ctx context.Context,
	input rail.Result[In]) <-chan rail.Result[Out] {
	return func(ctx context.Context, input rail.Result[In]) <-chan rail.Result[Out] {
		return mass.Switching(ctx, input, onOk, nil)
	}
}

func Map[In, Out any](onOk func(ctx context.Context, v In) Out) func(ctx context.Context,
	input rail.Result[In]) <-chan rail.Result[Out] {
	return func(ctx context.Context, input rail.Result[In]) <-chan rail.Result[Out] {
		return mass.Mapping(ctx, input, onOk, nil)
	}
}

func Remap[T any](onError func(ctx context.Context, err error) error) func(ctx context.Context,
	input rail.Result[T]) <-chan rail.Result[T] {
	return func(ctx context.Context, input rail.Result[T]) <-chan rail.Result[T] {
		return mass.Remapping(ctx, input, onError, nil)
	}
}

func Recover[T any](alternative func(ctx context.Context) rail.Result[T]) func(ctx context.Context,
	input rail.Result[T]) <-chan rail.Result[T] {
	return func(ctx context.Context, input rail.Result[T]) <-chan rail.Result[T] {
		return mass.Recovering(ctx, input, alternative, nil)
	}
}

func Tee[T any](effect func(ctx context.Context, v T)) func(ctx context.Context,
	input rail.Result[T]) <-chan rail.Result[T] {
	return func(ctx context.Context, input rail.Result[T]) <-chan rail.Result[T] {
		return mass.Teeing(ctx, input, effect, nil)
	}
}

func DoubleTee[T any](effect func(ctx context.Context, v T),
	effectOnError func(ctx context.Context, err error)) func(ctx context.Context,
	input rail.Result[T]) <-chan rail.Result[T] {
	return func(ctx context.Context, input rail.Result[T]) <-chan rail.Result[T] {
		return mass.DoubleTeeing(ctx, input, effect, effectOnError, nil)
	}
}

func Try[In, Out any](onTry func(ctx context.Context, v In) (Out, error)) func(ctx context.Context,
	input rail.Result[In]) <-chan rail.Result[Out] {
	return func(ctx context.Context, input rail.Result[In]) <-chan rail.Result[Out] {
		return mass.Trying(ctx, input, onTry, nil)
	}
}

func Finally[In, Out any](ctx context.Context, input <-chan rail.Result[In],
	handlers mass.FinallyHandlers[In, Out]) <-chan Out {
	return mass.Finalizing(ctx, input, handlers, nil)
}
