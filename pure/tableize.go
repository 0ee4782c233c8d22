package pure

type key2[I1, I2 comparable] struct {
	i1 I1
	i2 I2
}

type key3[I1, I2, I3 comparable] struct {
	i1 I1
	i2 I2
	i3 I3
}

type key4[I1, I2, I3, I4 comparable] struct {
	i1 I1
	i2 I2
	i3 I3
	i4 I4
}

// TableizeI1O1 memoizes a pure single-argument function.
func TableizeI1O1[I1 comparable, O1 any](
	pureFn func(I1) O1,
	cfg TableConfig,
) func(I1) O1 {
	memo := NewTable[I1, O1](cfg, nil)
	return func(i1 I1) O1 {
		return memo.LoadOrCompute(i1, pureFn)
	}
}

// TableizeI2O1 memoizes a pure function by the pair of its arguments.
func TableizeI2O1[I1, I2 comparable, O1 any](
	pureFn func(I1, I2) O1,
	cfg TableConfig,
) func(I1, I2) O1 {
	memo := NewTable[key2[I1, I2], O1](cfg, nil)
	compute := func(k key2[I1, I2]) O1 {
		return pureFn(k.i1, k.i2)
	}
	return func(i1 I1, i2 I2) O1 {
		return memo.LoadOrCompute(key2[I1, I2]{i1, i2}, compute)
	}
}

func TableizeI3O1[I1, I2, I3 comparable, O1 any](
	pureFn func(I1, I2, I3) O1,
	cfg TableConfig,
) func(I1, I2, I3) O1 {
	memo := NewTable[key3[I1, I2, I3], O1](cfg, nil)
	compute := func(k key3[I1, I2, I3]) O1 {
		return pureFn(k.i1, k.i2, k.i3)
	}
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return memo.LoadOrCompute(key3[I1, I2, I3]{i1, i2, i3}, compute)
	}
}

func TableizeI4O1[I1, I2, I3, I4 comparable, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	cfg TableConfig,
) func(I1, I2, I3, I4) O1 {
	memo := NewTable[key4[I1, I2, I3, I4], O1](cfg, nil)
	compute := func(k key4[I1, I2, I3, I4]) O1 {
		return pureFn(k.i1, k.i2, k.i3, k.i4)
	}
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return memo.LoadOrCompute(key4[I1, I2, I3, I4]{i1, i2, i3, i4}, compute)
	}
}
