package chain

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/railkit/rail/pkg/rail"
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, rail.Ok(5)).Result()
	if !out.IsOk() || out.Value() != 5 {
		t.Fatalf("expected Ok(5), got ok=%v val=%v err=%v", out.IsOk(), out.Value(), out.Err())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 7).Result()
	if !out.IsOk() || out.Value() != 7 {
		t.Fatalf("expected Ok(7), got %v / %v", out.Value(), out.Err())
	}
}

func TestThen_ShortCircuitOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := rail.NewError("boom")
	called := false
	out := Start(ctx, rail.Err[int](e)).
		Then(func(_ context.Context, v int) rail.Result[int] {
			called = true
			return rail.Ok(v + 1)
		}).
		Result()

	if out.IsOk() || out.Err() != e {
		t.Fatalf("expected original error, got %v", out.Err())
	}
	if called {
		t.Fatalf("callback must not run when the chain already failed")
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 10).
		ThenTry(func(_ context.Context, v int) (int, error) { return 0, errors.New("try-error") }).
		Result()
	if out.IsOk() || out.Err().Error() != "try-error" {
		t.Fatalf("expected 'try-error', got %v", out.Err())
	}

	out = FromValue(ctx, 4).
		ThenTry(func(_ context.Context, v int) (int, error) { return v * v, nil }).
		Result()
	if !out.IsOk() || out.Value() != 16 {
		t.Fatalf("expected Ok(16), got %v / %v", out.Value(), out.Err())
	}
}

func TestMap_GuardsFaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 5).
		Map(func(_ context.Context, v int) int { panic("bad transform") }).
		Result()
	if out.IsOk() || out.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("expected captured fault with 500, got %d", out.StatusCode())
	}
}

func TestMapErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	wrapped := rail.NewError("wrapped")
	out := Start(ctx, rail.Err[int](rail.NewError("raw"))).
		MapErr(func(_ context.Context, err error) error { return wrapped }).
		Result()
	if out.Err() != wrapped {
		t.Fatalf("expected rewritten error, got %v", out.Err())
	}
}

func TestOrElseAndOrElseGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, rail.Err[int](rail.NewError("e"))).OrElse(3).Result()
	if !out.IsOk() || out.Value() != 3 {
		t.Fatalf("expected fallback Ok(3), got %v / %v", out.Value(), out.Err())
	}

	produced := 0
	out = FromValue(ctx, 5).
		OrElseGet(func(_ context.Context) int { produced++; return 9 }).
		Result()
	if out.Value() != 5 || produced != 0 {
		t.Fatalf("producer must stay lazy on the ok path, produced=%d", produced)
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	okHits, errHits := 0, 0
	FromValue(ctx, 1).Ensure(
		func(_ context.Context, v int) { okHits++ },
		func(_ context.Context, err error) { errHits++ })
	Start(ctx, rail.Err[int](rail.NewError("e"))).Ensure(
		func(_ context.Context, v int) { okHits++ },
		func(_ context.Context, err error) { errHits++ })

	if okHits != 1 || errHits != 1 {
		t.Fatalf("expected one hit per branch, got ok=%d err=%d", okHits, errHits)
	}
}

func TestWithStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, "created").WithStatus(http.StatusCreated).Result()
	if out.StatusCode() != http.StatusCreated {
		t.Fatalf("expected 201, got %d", out.StatusCode())
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := FromValue(ctx, 2).
		Map(func(_ context.Context, v int) int { return v * 2 }).
		Finally(
			func(_ context.Context, v int) int { return v },
			func(_ context.Context, err error) int { return -1 })
	if got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}

func TestCrossTypeSwitchMapTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Switch(FromValue(ctx, 21), func(_ context.Context, v int) rail.Result[string] {
		return rail.Ok("n")
	})
	if out := c.Result(); !out.IsOk() || out.Value() != "n" {
		t.Fatalf("Switch: expected Ok(n), got %v / %v", out.Value(), out.Err())
	}

	m := Map(FromValue(ctx, 2), func(_ context.Context, v int) float64 { return float64(v) / 2 })
	if out := m.Result(); !out.IsOk() || out.Value() != 1.0 {
		t.Fatalf("Map: expected Ok(1.0), got %v", out.Value())
	}

	tr := Try(FromValue(ctx, "8"), func(_ context.Context, s string) (int, error) {
		if s == "" {
			return 0, errors.New("empty")
		}
		return len(s) * 8, nil
	})
	if out := tr.Result(); !out.IsOk() || out.Value() != 8 {
		t.Fatalf("Try: expected Ok(8), got %v / %v", out.Value(), out.Err())
	}
}
