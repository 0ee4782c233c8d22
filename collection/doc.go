// Package collection provides the classic traversal operations over slices,
// rebuilt from a single iteration primitive.
//
// ForEach is the only function in this package that walks a slice directly.
// Map, Filter, Fold, Reduce and Partition are expressed through it, so they
// share its guarantees:
//
//	→ every element is visited exactly once, in index order
//	→ nil elements are visited like any other element
//	→ the input slice is never mutated
//
// All needs to stop at the first failing element and therefore walks the
// slice on its own. Any is defined as the negation of All over the negated
// predicate and inherits its early exit.
//
// Callbacks are never wrapped in recover: a panic raised by a transform,
// predicate or operation reaches the caller unchanged.
package collection
