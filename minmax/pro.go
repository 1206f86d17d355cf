package minmax

import (
	"fmt"

	"arraylike/merr"
	"arraylike/numarray"
)

// MinMaxPro is the checked form of MinMax.
//
// arr must be a []T or a non-nil *numarray.Array[T]; mini must be a bool.
// The sequence is checked first. On any failure the zero value is returned
// with an error wrapping merr.ErrTypeMismatch, or merr.ErrEmptySequence when
// arr is well typed but holds nothing.
func MinMaxPro[T Number](arr any, mini any) (T, error) {
	var zero T

	collection, err := asCollection[T](arr)
	if err != nil {
		return zero, err
	}
	flag, ok := mini.(bool)
	if !ok {
		return zero, merr.WrapErrTypeMismatch("parameter mini", "bool", mini)
	}
	if len(collection) == 0 {
		return zero, merr.WrapErrEmptySequence("array")
	}
	return MinMax(collection, flag), nil
}

// MinMaxProDefault is MinMaxPro reducing to the minimum.
func MinMaxProDefault[T Number](arr any) (T, error) {
	return MinMaxPro[T](arr, true)
}

func asCollection[T Number](arr any) ([]T, error) {
	switch v := arr.(type) {
	case []T:
		return v, nil
	case *numarray.Array[T]:
		if v != nil {
			return v.ToSlice(), nil
		}
	}
	var zero T
	return nil, merr.WrapErrTypeMismatch("array", fmt.Sprintf("a numeric %T array", zero), arr)
}
