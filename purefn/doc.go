// Package purefn provides combinators that wrap a function value to change
// how, or how often, it runs.
//
//   - Once gates a function so that only its first call reaches it.
//   - Memoize, MemoizeWith and MemoizeBy cache results per distinct input.
//   - Curry and Uncurry convert between func(T, U) V and func(T) func(U) V.
//   - AndThen chains two functions left to right.
//
// Every combinator returns a fresh function value that owns its state. Two
// calls to Once (or Memoize) never share a gate (or a cache).
//
// Memoize is not just a utility to add caching. It forces the question:
//
//	→ "Is this function really pure?"
//
// The wrapped function is assumed deterministic; it runs once per distinct
// key for the lifetime of the memoized function, even under concurrent use.
// Do not memoize functions that depend on time, I/O or other hidden inputs.
//
// Nothing in this package recovers panics. A panic raised by a wrapped
// function reaches the caller unchanged.
package purefn
