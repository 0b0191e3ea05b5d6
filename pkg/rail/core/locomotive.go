package core

import (
	"context"
	"sync"

	"github.com/railkit/rail/pkg/rail"
)

// CancellationHandlers route values stranded by a context cancellation.
type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan rail.Result[In], outCh chan<- rail.Result[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed rail.Result[In], outCh chan<- rail.Result[Out])
	OnCancelProcessed   func(ctx context.Context, in rail.Result[In], processed rail.Result[Out], outCh chan<- rail.Result[Out])
}

// Locomotive pulls results from inputCh, pushes each through engine and
// forwards the outcome to outCh until the input closes or ctx is done.
// Several locomotives may share the same channels to form a worker pool.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan rail.Result[In], outCh chan<- rail.Result[Out],
	engine func(ctx context.Context, input rail.Result[In]) <-chan rail.Result[Out],
	handlers CancellationHandlers[In, Out],
	onDelivered func(ctx context.Context, out rail.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onDelivered != nil {
						onDelivered(ctx, pr)
					}
				}
			}
		}
	}
}
