package purefn

import "github.com/on-the-ground/fnkit/pure"

// Memoize caches fn's result per distinct input.
//
// Inputs are compared with ==, which is value equality for numbers, strings,
// arrays and structs of those. Pointers, channels and interfaces holding them
// compare by identity; use MemoizeBy to key such inputs by value.
//
// The cache is unbounded and never evicts. Inputs not equal to themselves,
// such as NaN, never hit the cache: fn runs for each of them and nothing is
// stored.
func Memoize[T comparable, R any](fn func(T) R) func(T) R {
	return MemoizeWith(fn, pure.TableConfig{})
}

// MemoizeWith is Memoize with a configurable backing table.
func MemoizeWith[T comparable, R any](fn func(T) R, cfg pure.TableConfig) func(T) R {
	return pure.TableizeI1O1(fn, cfg)
}

// MemoizeBy caches fn's result under keyOf(x) instead of x itself.
//
// keyOf must map inputs that fn treats as equal to equal keys, and must be
// pure. Inputs with equal keys share one result: fn runs for the first of
// them only.
func MemoizeBy[T any, K comparable, R any](fn func(T) R, keyOf func(T) K, cfg pure.TableConfig) func(T) R {
	memo := pure.NewTable[K, R](cfg, nil)
	return func(x T) R {
		return memo.LoadOrCompute(keyOf(x), func(K) R {
			return fn(x)
		})
	}
}
