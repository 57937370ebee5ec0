// Package dispatch compares two ways of running many slow tasks: a fixed pool
// of workers and one goroutine per task. Both are built on the lite fan-out,
// differing only in the number of lines, and report every outcome as an
// either.Result.
package dispatch
