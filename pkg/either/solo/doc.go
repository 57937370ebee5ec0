// Package solo contains single-value, synchronous railway primitives over
// either.Either. They are the building blocks for the chain and lite packages.
//
// Highlights:
// - Succeed/Fail: construct either.Result[T]
// - Validate/AndValidate/ValidateAll: turn predicates into left values
// - Switch: move from Either[L, In] to Either[L, Out] (FlatMap with a context)
// - Map: transform successful values
// - Try: call a function (Out, error) and convert the error to a left value
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
