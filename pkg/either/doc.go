// Package either provides Either[L, R], an immutable two-variant container
// holding a failure (Left) or a success (Right), and the functions that
// compose it without exceptions.
//
// Highlights:
// - Of/Right/Left/FromPair: construct values; Widen: use an Of value as Either[L, R]
// - Map/FlatMap: transform or replace a right value, short-circuiting on Left
// - MapLeft: transform a left value
// - Fold/Match: consume both variants exhaustively
// - ParseInt: a fallible adapter returning Either[string, int]
//
// Map and FlatMap obey the monad laws (left identity, right identity and
// associativity) under Equal, which compares variant and payload only.
package either
