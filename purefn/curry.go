package purefn

// Curry converts a binary function into a chain of unary ones:
// Curry(fn)(t)(u) == fn(t, u).
//
// Each call of the outer function returns a new stage bound to its argument.
// fn itself runs only when the second argument is supplied.
func Curry[T, U, V any](fn func(T, U) V) func(T) func(U) V {
	return func(t T) func(U) V {
		return func(u U) V {
			return fn(t, u)
		}
	}
}

// Uncurry is the inverse of Curry.
func Uncurry[T, U, V any](fn func(T) func(U) V) func(T, U) V {
	return func(t T, u U) V {
		return fn(t)(u)
	}
}
