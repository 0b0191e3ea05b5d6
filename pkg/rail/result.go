package rail

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Result is a tagged union: exactly one of a success value or an error,
// fixed at construction, plus the HTTP status code the producing operation
// wants the transport layer to use. Fields are unexported so an illegal
// state (both value and error, or neither) cannot be built.
type Result[T any] struct {
	id         uuid.UUID
	createdAt  time.Time
	value      T
	err        error
	statusCode int
	ok         bool
}

// Ok wraps a success value, status 200.
func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:      v,
		ok:         true,
		statusCode: http.StatusOK,
		createdAt:  time.Now().UTC(),
		id:         uuid.New(),
	}
}

// Err wraps a failure, status 400. A nil err is replaced with an opaque
// leaf error so the error state always carries a cause.
func Err[T any](err error) Result[T] {
	return ErrWithStatus[T](err, http.StatusBadRequest)
}

// ErrWithStatus wraps a failure with an explicit status code.
func ErrWithStatus[T any](err error, statusCode int) Result[T] {
	if IsNil(err) {
		err = NewError("unknown failure")
	}
	return Result[T]{
		err:        err,
		statusCode: statusCode,
		createdAt:  time.Now().UTC(),
		id:         uuid.New(),
	}
}

// Capture converts a recovered panic value into an error result,
// status 500. The recovered value stays reachable through the error's
// extra payload.
func Capture[T any](recovered any) Result[T] {
	return ErrWithStatus[T](FaultError(recovered), http.StatusInternalServerError)
}

// ErrFrom re-tags an error result across value types, preserving error,
// status code and provenance.
func ErrFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:        from.err,
		statusCode: from.statusCode,
		createdAt:  from.createdAt,
		id:         from.id,
	}
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Value returns the success value; zero value when the result is an error.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure; nil when the result is ok.
func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) StatusCode() int {
	return r.statusCode
}

// TryGet extracts the success value without panicking.
func (r Result[T]) TryGet() (T, bool) {
	return r.value, r.ok
}

// TryErr extracts the error without panicking.
func (r Result[T]) TryErr() (error, bool) {
	return r.err, !r.ok
}

// Expect returns the success value or panics with msg and the underlying
// error. For call sites that have already proven success, or that treat
// failure as a broken contract.
func (r Result[T]) Expect(msg string) T {
	if !r.ok {
		panic(fmt.Sprintf("%s: %v", msg, r.err))
	}
	return r.value
}

// WithStatusCode returns a copy differing only in status code.
func (r Result[T]) WithStatusCode(statusCode int) Result[T] {
	r.statusCode = statusCode
	return r
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) ID() uuid.UUID {
	return r.id
}

// Pair carries the two success values produced by zipping results.
type Pair[A, B any] struct {
	First  A
	Second B
}
