package core

import (
	"context"
	"sync"

	"github.com/railkit/rail/pkg/rail"
)

// ToChanHandlers observe the feeding of values into a pipeline.
type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnFed       func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChanFromArgsResults[T any](ctx context.Context, handlers ToChanHandlers[T], values ...T) <-chan rail.Result[T] {
	in := make(chan rail.Result[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- rail.Ok(v):
				if handlers.OnFed != nil {
					handlers.OnFed(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanFromArgs(ctx, value)
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs(ctx, values...)
}

func ToChanManyResults[T any](ctx context.Context, values []T) <-chan rail.Result[T] {
	return ToChanFromArgsResults(ctx, ToChanHandlers[T]{}, values...)
}

func ToChanManyResultsWithHandlers[T any](ctx context.Context, handlers ToChanHandlers[T], values []T) <-chan rail.Result[T] {
	return ToChanFromArgsResults(ctx, handlers, values...)
}

func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	res := defaultV
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		select {
		case v, ok := <-out:
			if ok {
				res = v
			}
		case <-ctx.Done():
		}
	}()

	wg.Wait()
	return res
}

func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}
