// Package solo contains single-value, synchronous combinators over
// Result[T]. These functions are the core building blocks for error-aware
// pipelines without channels.
//
// Highlights:
// - Succeed/Fail/FailWithStatus: construct Result[T]
// - MapOk/Switch: transform or rebind the success track (MapOk is guarded)
// - MapError: rewrite the error track (guarded, aggregates mapper faults)
// - OrElse/OrElseGet/OrElseSwitch: lazy fallbacks on the error path
// - WhenOk/WhenError: unguarded side-effect hooks
// - Try/RunSafe/RunSafeWith/RunSafeArg: adapt (T, error) calls and guard panics
// - Flatten/Zip: collapse nested results, pair independent ones
// - Validate/AndValidate/ValidateAll: input validation producing 400 failures
// - Finally: reduce to a concrete value via ok/error handlers
//
// Guarded combinators convert panics raised inside their callback into
// error results at an explicit recover boundary; WhenOk and WhenError
// deliberately do not.
package solo
