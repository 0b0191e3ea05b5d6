// Package rail defines the Result[T] value at the heart of the library:
// a tagged union of success value or error, plus the HTTP status code a
// producing service wants the transport layer to emit.
//
// The error side is modeled by three immutable types:
// - Error: leaf failure, message plus optional diagnostic extra
// - CompoundError: exactly two chained failures (cause + follow-up)
// - AggregateError: an ordered batch of failures, flattenable to leaves
//
// Construction is explicit: Ok (200), Err (400), ErrWithStatus, and
// Capture (500) for recovered panics. Every operation returns a new value;
// nothing is mutated after construction, so Result values are safe to share
// across goroutines.
//
// Combinators live in subpackages: solo (single-value, synchronous), seq
// (collection lifting), chain (fluent wrapper), mass/lite/core
// (channel-lifted asynchronous variants), railfiber (HTTP response
// adapter).
package rail
