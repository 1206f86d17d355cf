// Package minmax finds the smallest or largest element of a numeric
// sequence with a single priming-read scan.
//
// MinMax and MinMaxDefault trust their caller: the element type is fixed at
// compile time and an empty collection panics. MinMaxPro and
// MinMaxProDefault accept loosely typed arguments, inspect them, and report
// malformed input as merr.ErrTypeMismatch or merr.ErrEmptySequence instead.
package minmax

import "arraylike/seqs"

// Number is the set of element types the reducers accept.
type Number = seqs.Number

// MinMax returns the minimum of collection when mini is true and the maximum
// otherwise. Ties keep the earliest element. It panics if collection is empty.
func MinMax[T Number](collection []T, mini bool) T {
	if len(collection) == 0 {
		panic("minmax: empty collection")
	}
	acc := collection[0]
	_ = collection[len(collection)-1] // BCE hint
	if mini {
		for _, v := range collection[1:] {
			if v < acc {
				acc = v
			}
		}
	} else {
		for _, v := range collection[1:] {
			if v > acc {
				acc = v
			}
		}
	}
	return acc
}

// MinMaxDefault is MinMax with the mode left at its default, the minimum.
func MinMaxDefault[T Number](collection []T) T {
	return MinMax(collection, true)
}
