package collection

import "github.com/on-the-ground/fnkit/shared/helper"

// Map returns a new slice holding transform applied to every element of s.
// The result has the same length and order as s.
func Map[T, R any](s []T, transform func(T) R) []R {
	out := make([]R, 0, len(s))
	ForEach(s, func(item T) {
		out = append(out, transform(item))
	})
	return out
}

// Filter returns the elements of s satisfying predicate, in their original order.
func Filter[T any](s []T, predicate func(T) bool) []T {
	out := make([]T, 0)
	ForEach(s, func(item T) {
		if predicate(item) {
			out = append(out, item)
		}
	})
	return out
}

// Fold threads an accumulator through s starting from initial.
// An empty s yields initial unchanged.
func Fold[T, R any](s []T, initial R, operation func(acc R, item T) R) R {
	acc := initial
	ForEach(s, func(item T) {
		acc = operation(acc, item)
	})
	return acc
}

// Reduce folds s using its first element as the initial accumulator.
//
// It returns ErrEmptyCollection when s is empty. A single element is returned
// as is, without calling operation.
func Reduce[T any](s []T, operation func(acc T, item T) T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return Fold(s[1:], s[0], operation), nil
}

// MustReduce is the panic-on-failure variant of Reduce.
func MustReduce[T any](s []T, operation func(acc T, item T) T) T {
	return helper.Must(Reduce(s, operation))
}

// Partition splits s into the elements satisfying predicate and the rest.
// Both results keep the relative order of s.
func Partition[T any](s []T, predicate func(T) bool) (matching, nonMatching []T) {
	matching, nonMatching = make([]T, 0), make([]T, 0)
	ForEach(s, func(item T) {
		if predicate(item) {
			matching = append(matching, item)
		} else {
			nonMatching = append(nonMatching, item)
		}
	})
	return
}

// All reports whether every element of s satisfies predicate.
// It returns true for an empty s and stops at the first failing element.
func All[T any](s []T, predicate func(T) bool) bool {
	for i := range s {
		if !predicate(s[i]) {
			return false
		}
	}
	return true
}

// Any reports whether at least one element of s satisfies predicate.
// It returns false for an empty s.
func Any[T any](s []T, predicate func(T) bool) bool {
	return !All(s, helper.Not(predicate))
}
