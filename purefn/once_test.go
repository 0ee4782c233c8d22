package purefn_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/on-the-ground/fnkit/purefn"
	"github.com/stretchr/testify/assert"
)

func TestOnce_AllowsOnlyFirstCall(t *testing.T) {
	counter := 0
	incrementOnce := purefn.Once(func(x int) int {
		counter += x
		return counter
	})

	first, ok := incrementOnce(5)
	assert.True(t, ok)
	assert.Equal(t, 5, first)

	second, ok := incrementOnce(10)
	assert.False(t, ok)
	assert.Zero(t, second)
	assert.Equal(t, 5, counter)
}

func TestOnce_AbsentOnSubsequentCalls(t *testing.T) {
	sayHelloOnce := purefn.Once(func(name string) string { return "Hello, " + name + "!" })

	first, ok := sayHelloOnce("Alice")
	assert.True(t, ok)
	assert.Equal(t, "Hello, Alice!", first)

	for _, name := range []string{"Bob", "Alice", ""} {
		_, ok := sayHelloOnce(name)
		assert.False(t, ok)
	}
}

func TestOnce_GatesAreIndependent(t *testing.T) {
	calls := 0
	fn := func(x int) int {
		calls++
		return x
	}
	a := purefn.Once(fn)
	b := purefn.Once(fn)

	_, okA := a(1)
	_, okB := b(2)
	assert.True(t, okA)
	assert.True(t, okB)
	assert.Equal(t, 2, calls)
}

func TestOnce_PanicFiresGate(t *testing.T) {
	calls := 0
	gate := purefn.Once(func(int) int {
		calls++
		panic("first call failed")
	})

	assert.PanicsWithValue(t, "first call failed", func() { gate(1) })
	_, ok := gate(2)
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

func TestOnce_Concurrent(t *testing.T) {
	var calls, fired atomic.Int32
	gate := purefn.Once(func(x int) int {
		calls.Add(1)
		return x
	})

	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := gate(i); ok {
				fired.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(1), fired.Load())
}
