package seqs

import (
	"iter"
	"math/rand/v2"
)

// RandomInts yields size integers drawn uniformly from [lo, hi].
// Bounds given in the wrong order are swapped. Any range representable as
// int is accepted, including [math.MinInt, math.MaxInt].
func RandomInts(r *rand.Rand, size, lo, hi int) iter.Seq[int] {
	if lo > hi {
		lo, hi = hi, lo
	}
	// hi-lo computed in uint64 cannot overflow; span wraps to 0 only for
	// the full 64-bit range.
	span := uint64(hi) - uint64(lo) + 1
	return func(yield func(int) bool) {
		for i := 0; i < size; i++ {
			var off uint64
			if span == 0 {
				off = r.Uint64()
			} else {
				off = r.Uint64N(span)
			}
			if !yield(int(uint64(lo) + off)) {
				return
			}
		}
	}
}

func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}
