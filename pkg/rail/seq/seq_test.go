package seq

import (
	"context"
	"testing"

	"github.com/railkit/rail/pkg/rail"
)

func TestMapOkEach_IndependentElements(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := rail.NewError("bad")
	in := []rail.Result[int]{rail.Ok(1), rail.Err[int](e), rail.Ok(3)}

	out := Collect(MapOkEach(ctx, ToSeq(in), func(_ context.Context, v int) int { return v * 2 }))

	if len(out) != 3 {
		t.Fatalf("expected 3 results, got %d", len(out))
	}
	if !out[0].IsOk() || out[0].Value() != 2 {
		t.Fatalf("element 0: expected Ok(2), got %v / %v", out[0].Value(), out[0].Err())
	}
	if out[1].IsOk() || out[1].Err() != e {
		t.Fatalf("element 1: failure must pass through untouched")
	}
	if !out[2].IsOk() || out[2].Value() != 6 {
		t.Fatalf("element 2: failure at 1 must not affect it, got %v", out[2].Value())
	}
}

func TestMapOkEach_LazyAndRestartable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	applied := 0
	in := []rail.Result[int]{rail.Ok(1), rail.Ok(2), rail.Ok(3)}
	mapped := MapOkEach(ctx, ToSeq(in), func(_ context.Context, v int) int {
		applied++
		return v
	})

	if applied != 0 {
		t.Fatalf("building the sequence must not apply the function, applied=%d", applied)
	}

	// stop after the first element; only one application may have happened
	for range mapped {
		break
	}
	if applied != 1 {
		t.Fatalf("expected 1 application after early break, got %d", applied)
	}

	// restart from scratch
	if got := len(Collect(mapped)); got != 3 {
		t.Fatalf("sequence must be restartable, got %d elements", got)
	}
	if applied != 4 {
		t.Fatalf("expected 4 applications total, got %d", applied)
	}
}

func TestAllOk(t *testing.T) {
	t.Parallel()

	e := rail.NewError("bad")
	out := AllOk([]rail.Result[int]{rail.Ok(3), rail.Err[int](e), rail.Ok(5)})
	agg, ok := out.Err().(*rail.AggregateError)
	if !ok {
		t.Fatalf("expected AggregateError, got %T", out.Err())
	}
	if errs := agg.Errors(); len(errs) != 1 || errs[0] != e {
		t.Fatalf("expected [e], got %v", errs)
	}

	out = AllOk([]rail.Result[int]{rail.Ok(3), rail.Ok(5), rail.Ok(7)})
	if !out.IsOk() {
		t.Fatalf("expected success, got %v", out.Err())
	}
	if vs := out.Value(); len(vs) != 3 || vs[0] != 3 || vs[1] != 5 || vs[2] != 7 {
		t.Fatalf("expected [3 5 7], got %v", vs)
	}
}

func TestAllOk_EmptyIsError(t *testing.T) {
	t.Parallel()

	out := AllOk([]rail.Result[int]{})
	if out.IsOk() || out.Err() != ErrEmpty {
		t.Fatalf("empty batch must fail with ErrEmpty, got %v", out.Err())
	}
	if out.Err().Error() != "Empty" {
		t.Fatalf("expected message 'Empty', got %q", out.Err().Error())
	}
}

func TestAnyOk(t *testing.T) {
	t.Parallel()

	e := rail.NewError("bad")
	out := AnyOk([]rail.Result[int]{rail.Ok(3), rail.Err[int](e), rail.Ok(5)})
	if !out.IsOk() {
		t.Fatalf("expected success, got %v", out.Err())
	}
	if vs := out.Value(); len(vs) != 2 || vs[0] != 3 || vs[1] != 5 {
		t.Fatalf("expected [3 5], got %v", vs)
	}

	a, b := rail.NewError("a"), rail.NewError("b")
	out = AnyOk([]rail.Result[int]{rail.Err[int](a), rail.Err[int](b)})
	agg, ok := out.Err().(*rail.AggregateError)
	if !ok {
		t.Fatalf("expected AggregateError, got %T", out.Err())
	}
	if errs := agg.Errors(); len(errs) != 2 || errs[0] != a || errs[1] != b {
		t.Fatalf("expected [a b], got %v", errs)
	}

	if out = AnyOk([]rail.Result[int]{}); out.IsOk() || out.Err() != ErrEmpty {
		t.Fatalf("empty batch must fail with ErrEmpty, got %v", out.Err())
	}
}

func TestAllOk_FlattensNestedComposites(t *testing.T) {
	t.Parallel()

	e1, e2, e3 := rail.NewError("1"), rail.NewError("2"), rail.NewError("3")
	out := AllOk([]rail.Result[int]{
		rail.Err[int](rail.Compose(e1, e2)),
		rail.Err[int](e3),
	})

	agg := out.Err().(*rail.AggregateError)
	errs := agg.Errors()
	if len(errs) != 3 || errs[0] != e1 || errs[1] != e2 || errs[2] != e3 {
		t.Fatalf("expected flattened [1 2 3], got %v", errs)
	}
}
