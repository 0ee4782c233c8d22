package collection

import "errors"

// ErrEmptyCollection is returned by Reduce when the input has no elements.
// There is no accumulator value that could stand in for a missing first element.
var ErrEmptyCollection = errors.New("collection: empty collection can't be reduced")
