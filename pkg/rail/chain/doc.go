// Package chain provides a fluent wrapper around Result[T] for building
// synchronous railway chains on top of the solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenTry: compose result-returning or (T, error) functions
// - Map/MapErr: transform the success or error track (guarded)
// - OrElse/OrElseGet: fall back on the error path
// - Ensure: run side effects without changing the result
// - WithStatus: pick the status code for the transport layer
// - Finally: collapse the chain into a final value via handlers
//
// Cross-type steps (T -> U) are the package-level Switch, Map and Try,
// since Go methods cannot introduce new type parameters.
package chain
