package helper_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/fnkit/shared/helper"
	"github.com/stretchr/testify/assert"
)

func TestMust(t *testing.T) {
	assert.Equal(t, 7, helper.Must(7, nil))

	errBoom := errors.New("boom")
	assert.PanicsWithError(t, "boom", func() {
		helper.Must(0, errBoom)
	})
}

func TestNot(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }
	isOdd := helper.Not(isEven)

	assert.True(t, isOdd(3))
	assert.False(t, isOdd(4))
}
