package pure

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

// dual adapts a two-output function to the single value a Table stores.
func dual[K comparable, O1, O2 any](memo *Table[K, result[O1, O2]], k K, compute func(K) (O1, O2)) (O1, O2) {
	res := memo.LoadOrCompute(k, func(k K) result[O1, O2] {
		v1, v2 := compute(k)
		return result[O1, O2]{O1: v1, O2: v2}
	})
	return res.O1, res.O2
}

// TableizeI1O2 memoizes a pure function with two results, such as (value, error)
// or (value, ok). Both results are stored together.
func TableizeI1O2[I1 comparable, O1, O2 any](
	pureFn func(I1) (O1, O2),
	cfg TableConfig,
) func(I1) (O1, O2) {
	memo := NewTable[I1, result[O1, O2]](cfg, nil)
	return func(i1 I1) (O1, O2) {
		return dual(memo, i1, pureFn)
	}
}

func TableizeI2O2[I1, I2 comparable, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	cfg TableConfig,
) func(I1, I2) (O1, O2) {
	memo := NewTable[key2[I1, I2], result[O1, O2]](cfg, nil)
	compute := func(k key2[I1, I2]) (O1, O2) {
		return pureFn(k.i1, k.i2)
	}
	return func(i1 I1, i2 I2) (O1, O2) {
		return dual(memo, key2[I1, I2]{i1, i2}, compute)
	}
}

func TableizeI3O2[I1, I2, I3 comparable, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	cfg TableConfig,
) func(I1, I2, I3) (O1, O2) {
	memo := NewTable[key3[I1, I2, I3], result[O1, O2]](cfg, nil)
	compute := func(k key3[I1, I2, I3]) (O1, O2) {
		return pureFn(k.i1, k.i2, k.i3)
	}
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		return dual(memo, key3[I1, I2, I3]{i1, i2, i3}, compute)
	}
}

func TableizeI4O2[I1, I2, I3, I4 comparable, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	cfg TableConfig,
) func(I1, I2, I3, I4) (O1, O2) {
	memo := NewTable[key4[I1, I2, I3, I4], result[O1, O2]](cfg, nil)
	compute := func(k key4[I1, I2, I3, I4]) (O1, O2) {
		return pureFn(k.i1, k.i2, k.i3, k.i4)
	}
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		return dual(memo, key4[I1, I2, I3, I4]{i1, i2, i3, i4}, compute)
	}
}
