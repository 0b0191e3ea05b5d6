package seq

import (
	"context"
	"iter"

	"github.com/railkit/rail/pkg/rail"
	"github.com/railkit/rail/pkg/rail/solo"
)

// ErrEmpty is the failure AllOk and AnyOk report for an empty batch.
var ErrEmpty = rail.NewError("Empty")

// MapOkEach lazily lifts solo.MapOk over a sequence of results. Each
// element is transformed on demand and independently: a failure at one
// position does not affect any other.
func MapOkEach[In, Out any](ctx context.Context, results iter.Seq[rail.Result[In]],
	f func(ctx context.Context, v In) Out) iter.Seq[rail.Result[Out]] {

	return func(yield func(rail.Result[Out]) bool) {
		for r := range results {
			if !yield(solo.MapOk(ctx, r, f)) {
				return
			}
		}
	}
}

// AllOk partitions a batch and succeeds only if every element succeeded.
// Any failure yields an AggregateError of all failures; an empty batch
// fails with ErrEmpty.
func AllOk[T any](results []rail.Result[T]) rail.Result[[]T] {
	if len(results) == 0 {
		return rail.Err[[]T](ErrEmpty)
	}

	values, errs := partition(results)
	if len(errs) > 0 {
		return rail.Err[[]T](rail.Aggregate(errs...).Flatten())
	}
	return rail.Ok(values)
}

// AnyOk partitions a batch and succeeds if at least one element succeeded,
// collecting the successes and discarding the failures. Only when every
// element failed does it yield an AggregateError of all failures; an empty
// batch fails with ErrEmpty.
func AnyOk[T any](results []rail.Result[T]) rail.Result[[]T] {
	if len(results) == 0 {
		return rail.Err[[]T](ErrEmpty)
	}

	values, errs := partition(results)
	if len(values) == 0 {
		return rail.Err[[]T](rail.Aggregate(errs...).Flatten())
	}
	return rail.Ok(values)
}

func partition[T any](results []rail.Result[T]) (values []T, errs []error) {
	for _, r := range results {
		if r.IsOk() {
			values = append(values, r.Value())
		} else {
			errs = append(errs, r.Err())
		}
	}
	return values, errs
}

// ToSeq adapts a slice of results to a restartable sequence.
func ToSeq[T any](results []rail.Result[T]) iter.Seq[rail.Result[T]] {
	return func(yield func(rail.Result[T]) bool) {
		for _, r := range results {
			if !yield(r) {
				return
			}
		}
	}
}

// Collect drains a sequence into a slice.
func Collect[T any](results iter.Seq[rail.Result[T]]) []rail.Result[T] {
	out := make([]rail.Result[T], 0)
	for r := range results {
		out = append(out, r)
	}
	return out
}
