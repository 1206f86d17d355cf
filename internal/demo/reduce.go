package demo

import (
	"go.uber.org/zap"

	"arraylike/internal/log"
	"arraylike/minmax"
	"arraylike/seqs"
)

// totals computes the total, average, min and max by hand.
func (r *Runner) totals() {
	rnums := r.randomNumbers()
	r.println(rnums)

	total := seqs.Sum(rnums.Values())
	r.println("total:", total)

	average, _ := seqs.Average(rnums.Values())
	r.printf("average: %.2f\n", average)

	lo, _ := seqs.Min(rnums.Values())
	r.println("min:", lo)

	hi, _ := seqs.Max(rnums.Values())
	r.println("max:", hi)
	r.println()
}

// minMax replaces the two scans above with one function and a mode flag.
func (r *Runner) minMax() {
	rnums := r.randomNumbers().ToSlice()
	r.println("min:", minmax.MinMax(rnums, true))
	r.println("max:", minmax.MinMax(rnums, false))
	r.println()
}

func (r *Runner) minMaxDefault() {
	rnums := r.randomNumbers().ToSlice()
	r.println("min:", minmax.MinMaxDefault(rnums))
	r.println("max:", minmax.MinMax(rnums, false))
	r.println()
}

// minMaxPro calls the checked reducer with good and bad input. A rejected
// call is reported and the walkthrough carries on.
func (r *Runner) minMaxPro() {
	rnums := r.randomNumbers()

	r.report("min:", func() (int, error) { return minmax.MinMaxProDefault[int](rnums) })
	r.report("max:", func() (int, error) { return minmax.MinMaxPro[int](rnums, false) })

	// a generic list, not a numeric array
	list := []any{10, 20, 30}
	r.report("min:", func() (int, error) { return minmax.MinMaxProDefault[int](list) })

	// a float, not a bool
	n := 1.234
	r.report("min:", func() (int, error) { return minmax.MinMaxPro[int](rnums, n) })
	r.println()
}

func (r *Runner) report(label string, call func() (int, error)) {
	v, err := call()
	if err != nil {
		r.println(err)
		r.logger.Warn("reducer rejected input", log.FieldSection("minmax-pro"), zap.Error(err))
		return
	}
	r.println(label, v)
}
