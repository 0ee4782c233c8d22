package helper

// Must unwraps a (value, error) pair, panicking with the error if it is non-nil.
// Use when failure should be fatal (e.g., when the input is known to be valid).
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Not returns the negation of predicate.
func Not[T any](predicate func(T) bool) func(T) bool {
	return func(v T) bool {
		return !predicate(v)
	}
}
