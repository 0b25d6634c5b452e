package guard

import (
	"github.com/jmgilman/go/guard/errors"
	"github.com/jmgilman/go/guard/optional"
)

// GetElement returns the element of array at index.
//
// Returns CodeNullInput if array is absent and CodeIndexOutOfRange unless
// 0 <= index < len(array).
func (g *Guard) GetElement(array optional.Value[[]int], index int) (int, error) {
	items, ok := array.Get()
	if !ok {
		return 0, g.fail("GetElement", errors.New(errors.CodeNullInput, "array must not be absent"))
	}
	if err := checkIndex(index, len(items)); err != nil {
		return 0, g.fail("GetElement", err)
	}

	return items[index], nil
}

// SumCollectionElements returns the sum of collection[0] through
// collection[index], both inclusive.
//
// Returns CodeNullInput if collection is absent, CodeIndexOutOfRange unless
// 0 <= index < len(collection), and CodeOverflow if the sum does not fit in an int.
func (g *Guard) SumCollectionElements(collection optional.Value[[]int], index int) (int, error) {
	items, ok := collection.Get()
	if !ok {
		return 0, g.fail("SumCollectionElements", errors.New(errors.CodeNullInput, "collection must not be absent"))
	}
	if err := checkIndex(index, len(items)); err != nil {
		return 0, g.fail("SumCollectionElements", err)
	}

	sum := 0
	for i, item := range items[:index+1] {
		next, err := addInt(sum, item)
		if err != nil {
			return 0, g.fail("SumCollectionElements", errors.WithContext(err, "position", i))
		}
		sum = next
	}

	return sum, nil
}

// checkIndex validates index against the half-open range [0, length).
func checkIndex(index, length int) errors.CodedError {
	if index >= 0 && index < length {
		return nil
	}

	err := errors.Newf(errors.CodeIndexOutOfRange, "index %d out of range [0, %d)", index, length)
	return errors.WithContextMap(err, map[string]interface{}{
		"index":  index,
		"length": length,
	})
}
