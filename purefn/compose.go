package purefn

// AndThen is left to right composition: AndThen(f, g)(x) == g(f(x)).
//
// f always runs first and g receives exactly its output. A panic in f
// propagates before g runs.
func AndThen[T, R, V any](f func(T) R, g func(R) V) func(T) V {
	return func(x T) V {
		return g(f(x))
	}
}

// Identity returns its argument. It is the neutral element of AndThen.
func Identity[T any](x T) T {
	return x
}
