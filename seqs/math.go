package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types the reducers accept.
type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Average returns the arithmetic mean of seq as a float64.
// The second result is false when seq yields nothing.
func Average[T Number](seq iter.Seq[T]) (float64, bool) {
	var (
		total float64
		count int
	)
	for v := range seq {
		total += float64(v)
		count++
	}
	if count == 0 {
		return 0, false
	}
	return total / float64(count), true
}

// Min returns the smallest element of seq. The first element primes the
// accumulator and ties keep the earliest value.
func Min[T Number](seq iter.Seq[T]) (T, bool) {
	return scan(seq, func(v, acc T) bool { return v < acc })
}

// Max returns the largest element of seq, keeping the earliest on ties.
func Max[T Number](seq iter.Seq[T]) (T, bool) {
	return scan(seq, func(v, acc T) bool { return v > acc })
}

func scan[T Number](seq iter.Seq[T], better func(v, acc T) bool) (T, bool) {
	var acc T
	first := true
	for v := range seq {
		if first {
			acc = v
			first = false
			continue
		}
		if better(v, acc) {
			acc = v
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return acc, true
}
