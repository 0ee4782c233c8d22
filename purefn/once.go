package purefn

import "sync"

// Once returns a gate around fn.
//
// The first call runs fn and returns its result with ok set to true. Every
// later call, whatever its argument, returns the zero value and false without
// running fn. A first call that panics still fires the gate.
//
// The gate is safe for concurrent use: callers racing the first invocation
// block until it finishes and then observe the absent result.
func Once[T, R any](fn func(T) R) func(T) (R, bool) {
	var once sync.Once
	return func(x T) (res R, ok bool) {
		once.Do(func() {
			res, ok = fn(x), true
		})
		return
	}
}
