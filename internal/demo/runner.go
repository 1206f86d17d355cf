// Package demo prints the array-like structures walkthrough one section at a
// time. Each section is independent except that the reducer sections share
// one random array per Runner.
package demo

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"arraylike/internal/config"
	"arraylike/internal/log"
	"arraylike/merr"
	"arraylike/numarray"
	"arraylike/seqs"
)

type section struct {
	name string
	run  func(r *Runner)
}

// Runner writes walkthrough sections to out. It is not safe for concurrent use.
type Runner struct {
	cfg    *config.Config
	out    io.Writer
	logger *zap.Logger
	rng    *rand.Rand

	rnums *numarray.Array[int]
}

// NewRunner returns a Runner for cfg. A zero cfg.Seed seeds from the clock.
func NewRunner(cfg *config.Config, out io.Writer, logger *zap.Logger) *Runner {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:    cfg,
		out:    out,
		logger: logger.With(log.FieldComponent("demo")),
		rng:    rand.New(rand.NewPCG(seed, seed)),
	}
}

// Sections returns the section names in walkthrough order.
func Sections() []string {
	names := make([]string, 0, len(sections))
	for _, s := range sections {
		names = append(names, s.name)
	}
	return names
}

// Run prints the named sections in walkthrough order, or all of them when no
// names are given. Unknown names are rejected before anything is printed.
func (r *Runner) Run(names ...string) error {
	selected, err := selectSections(names)
	if err != nil {
		return err
	}
	for _, s := range selected {
		r.logger.Debug("running section", log.FieldSection(s.name))
		s.run(r)
	}
	return nil
}

func selectSections(names []string) ([]section, error) {
	if len(names) == 0 {
		return sections, nil
	}
	want := make(map[string]bool, len(names))
	var errs []error
	for _, name := range names {
		if !hasSection(name) {
			errs = append(errs, merr.WrapErrSectionNotFound(name))
			continue
		}
		want[name] = true
	}
	if err := merr.Combine(errs...); err != nil {
		return nil, err
	}
	selected := make([]section, 0, len(want))
	for _, s := range sections {
		if want[s.name] {
			selected = append(selected, s)
		}
	}
	return selected, nil
}

func hasSection(name string) bool {
	for _, s := range sections {
		if s.name == name {
			return true
		}
	}
	return false
}

// randomNumbers returns the array shared by the reducer sections, drawing it
// on first use.
func (r *Runner) randomNumbers() *numarray.Array[int] {
	if r.rnums == nil {
		r.rnums = numarray.FromSeq(r.cfg.Size,
			seqs.RandomInts(r.rng, r.cfg.Size, r.cfg.Rand.Min, r.cfg.Rand.Max))
	}
	return r.rnums
}

func (r *Runner) println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

func (r *Runner) printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}
