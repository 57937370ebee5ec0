// Package chain provides a fluent wrapper around either.Either for building
// synchronous railway chains on top of the solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from an Either or a value
// - Then/Map: same-type steps as methods
// - FlatMap/MapTo/ThenTry: steps that change the right type
// - RepeatUntil/While: loop a step while the chain stays on the right track
// - Or/And: pick among alternative chains
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
