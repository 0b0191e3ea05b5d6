package rail

import "time"

// Diagnostic is implemented by errors carrying a structured extra payload.
type Diagnostic interface {
	error
	// Extra returns the opaque diagnostic payload, nil when absent
	Extra() any
}

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time of construction (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that hold either a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the operation failed
	Err() error
	// IsOk reports whether the operation succeeded
	IsOk() bool
}

// WithStatus extends WithError with the HTTP status code intended for the
// transport layer
type WithStatus[T any] interface {
	WithError[T]
	StatusCode() int
}
