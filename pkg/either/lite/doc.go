// Package lite provides lightweight channel-lifted helpers that wrap solo
// primitives for concurrent pipelines: fan-out/fan-in over a fixed number of
// lines, with cancellation hooks where a caller needs them.
//
// Common usage:
// - Run/Turnout: execute an engine over an input channel with a fixed number of lines
// - TurnoutWithHandlers: the same with cancellation handlers and a success callback
// - Validate/Try/Switch/Map/Tee: lift solo operations into engines
// - Finally: fold every Result[In] to Out on completion
package lite
