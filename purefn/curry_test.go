package purefn_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/fnkit/purefn"
	"github.com/stretchr/testify/assert"
)

func TestCurry(t *testing.T) {
	multiply := func(x, y int) int { return x * y }
	multiplyByTwo := purefn.Curry(multiply)(2)

	assert.Equal(t, 10, multiplyByTwo(5))
	assert.Equal(t, multiply(2, 5), purefn.Curry(multiply)(2)(5))
}

func TestCurry_StageIsReusable(t *testing.T) {
	add := purefn.Curry(func(x, y int) int { return x + y })
	addFive := add(5)

	for y := -3; y <= 3; y++ {
		assert.Equal(t, 5+y, addFive(y))
	}
}

func TestCurry_RunsOnlyWhenBothArgumentsAreSupplied(t *testing.T) {
	calls := 0
	format := purefn.Curry(func(name string, n int) string {
		calls++
		return fmt.Sprintf("%s=%d", name, n)
	})

	stage := format("x")
	assert.Zero(t, calls)
	assert.Equal(t, "x=1", stage(1))
	assert.Equal(t, "x=2", stage(2))
	assert.Equal(t, 2, calls)
}

func TestUncurry(t *testing.T) {
	sub := func(x, y int) int { return x - y }
	roundTrip := purefn.Uncurry(purefn.Curry(sub))

	assert.Equal(t, sub(7, 3), roundTrip(7, 3))
}
