/*
Package seqs provides reducers and generators over Go iterators (iter.Seq).

  - **Reducers**: [Sum], [Average], [Min] and [Max] consume a sequence once and
    report whether it yielded anything.
  - **Generators**: [RandomInts] for bounded random input and [Range] for
    forward or backward index walks.

All reducers take a single pass and allocate nothing:

	total := seqs.Sum(slices.Values(nums))
	lo, ok := seqs.Min(slices.Values(nums))
*/
package seqs
