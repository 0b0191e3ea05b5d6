// Package lite composes the mass lifts into concurrent pipelines.
//
// Common usage:
// - Run: execute an engine over an input channel with a fixed number of lines
// - Turnout: compose stages that change the value type
// - TurnoutWith: add cancellation routing and delivery callbacks
// - Validate/Switch/Map/Remap/Recover/Tee/DoubleTee/Try: lift solo operations into
//   engines suitable for Run/Turnout
// - Finally: reduce a stream of results to final values
// - CancelRemaining: forward stranded inputs as failures after cancellation
package lite
