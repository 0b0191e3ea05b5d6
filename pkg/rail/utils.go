package rail

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// LeafErrors returns the leaf errors behind err: composites built by this
// package (and anything else exposing Unwrap() []error) are expanded
// recursively, plain errors come back as a single-element slice.
func LeafErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	var leaves []error
	for _, child := range e.Unwrap() {
		leaves = append(leaves, LeafErrors(child)...)
	}
	return leaves
}

func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
