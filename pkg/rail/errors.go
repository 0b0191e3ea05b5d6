package rail

import (
	"fmt"
	"strings"
)

// compoundLabel is the fixed message of every CompoundError; the chained
// errors themselves live in Main/Other.
const compoundLabel = "compound error"

// Error is an immutable leaf failure: a human-readable message plus an
// optional opaque diagnostic payload.
type Error struct {
	msg   string
	extra any
}

func NewError(msg string) *Error {
	return &Error{msg: msg}
}

func NewErrorWith(msg string, extra any) *Error {
	return &Error{msg: msg, extra: extra}
}

// Errorf builds a leaf Error from a format string.
func Errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// FaultError converts a recovered panic value into a leaf Error. The
// original value is kept as extra so callers can inspect the fault.
func FaultError(recovered any) *Error {
	switch v := recovered.(type) {
	case error:
		return &Error{msg: v.Error(), extra: v}
	case string:
		return &Error{msg: v, extra: v}
	default:
		return &Error{msg: fmt.Sprintf("%v", v), extra: v}
	}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Extra() any {
	return e.extra
}

// Compose chains this error with a subsequent one into a CompoundError,
// leaving both operands untouched.
func (e *Error) Compose(other error) *CompoundError {
	return Compose(e, other)
}

// CompoundError chains exactly two failures: the original cause and a
// failure that happened while handling it. Composing again grows an
// immutable binary tree; existing nodes are never rewritten.
type CompoundError struct {
	main  error
	other error
}

func Compose(main, other error) *CompoundError {
	return &CompoundError{main: main, other: other}
}

func (e *CompoundError) Error() string {
	return compoundLabel
}

func (e *CompoundError) Extra() any {
	return []error{e.main, e.other}
}

func (e *CompoundError) Main() error {
	return e.main
}

func (e *CompoundError) Other() error {
	return e.other
}

func (e *CompoundError) Compose(other error) *CompoundError {
	return Compose(e, other)
}

// Aggregate flattens the tree into a single AggregateError of leaves,
// pre-order.
func (e *CompoundError) Aggregate() *AggregateError {
	return &AggregateError{errs: appendLeaves(nil, e)}
}

// Unwrap exposes both branches to errors.Is / errors.As.
func (e *CompoundError) Unwrap() []error {
	return []error{e.main, e.other}
}

// AggregateError collects N failures from a batch operation, in the order
// they occurred.
type AggregateError struct {
	errs []error
}

func Aggregate(errs ...error) *AggregateError {
	copied := make([]error, len(errs))
	copy(copied, errs)
	return &AggregateError{errs: copied}
}

func (e *AggregateError) Error() string {
	msgs := make([]string, len(e.errs))
	for i, err := range e.errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Extra returns the child extras in child order; children without a
// diagnostic payload contribute nil.
func (e *AggregateError) Extra() any {
	extras := make([]any, len(e.errs))
	for i, err := range e.errs {
		if d, ok := err.(Diagnostic); ok {
			extras[i] = d.Extra()
		}
	}
	return extras
}

// Errors returns a copy of the child errors.
func (e *AggregateError) Errors() []error {
	copied := make([]error, len(e.errs))
	copy(copied, e.errs)
	return copied
}

func (e *AggregateError) Len() int {
	return len(e.errs)
}

// Flatten expands any nested CompoundError or AggregateError children into
// one flat pre-order sequence of leaf errors. Recursion depth is bounded by
// the nesting depth of the tree, which is finite because errors are
// immutable and built bottom-up.
func (e *AggregateError) Flatten() *AggregateError {
	return &AggregateError{errs: appendLeaves(nil, e)}
}

// Unwrap exposes the children to errors.Is / errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors()
}

func appendLeaves(dst []error, err error) []error {
	switch v := err.(type) {
	case *CompoundError:
		dst = appendLeaves(dst, v.main)
		dst = appendLeaves(dst, v.other)
	case *AggregateError:
		for _, child := range v.errs {
			dst = appendLeaves(dst, child)
		}
	default:
		dst = append(dst, err)
	}
	return dst
}
