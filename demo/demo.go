package demo

import (
	"context"
	"time"

	"github.com/eaugeas/linkedbst/concurrent"
	"github.com/eaugeas/linkedbst/container/tree"
	"github.com/eaugeas/linkedbst/logs"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Phase names
const (
	PhaseLinear     = "linear scan"
	PhaseFileOrder  = "tree in file order"
	PhaseShuffled   = "tree in shuffled order"
	PhaseRebalanced = "rebalanced tree"
	PhaseParallel   = "parallel lookups"
)

// Phase is the outcome of looking up all the samples with
// one of the strategies
type Phase struct {
	Name     string
	Duration time.Duration
	Hits     int

	// Tree is true if the lookups were made on a tree, in which
	// case Height and Balanced describe its shape
	Tree     bool
	Height   int
	Balanced bool
}

// PerLookup returns the average duration of a single lookup
func (p Phase) PerLookup(samples int) time.Duration {
	if samples == 0 {
		return 0
	}

	return p.Duration / time.Duration(samples)
}

// Log is the implementation of logs.Loggable for Phase
func (p Phase) Log(fields logs.Fields) {
	fields.Add("phase", p.Name)
	fields.Add("duration", p.Duration.String())
	fields.Add("hits", p.Hits)
	if p.Tree {
		fields.Add("height", p.Height)
		fields.Add("balanced", p.Balanced)
	}
}

// Report of a run
type Report struct {
	Words   int
	Samples int
	Phases  []Phase
}

// Phase returns the phase with the name
func (r *Report) Phase(name string) (Phase, bool) {
	return lo.Find(r.Phases, func(p Phase) bool {
		return p.Name == name
	})
}

// Props are the properties of a Runner
type Props struct {
	Fs       afero.Fs
	Path     string
	Samples  int
	Workers  int
	Logger   logs.Logger
	Progress Progress
}

// Runner looks up a sample of the words of a word list, first
// scanning the list and then on trees built from it
type Runner struct {
	fs       afero.Fs
	path     string
	samples  int
	workers  int
	logger   logs.Logger
	progress Progress
}

// NewRunner creates a new Runner. The filesystem defaults to the
// one of the operating system, and the progress is discarded
// when not set
func NewRunner(props Props) *Runner {
	if props.Logger == nil {
		panic("logger must be set")
	}

	if props.Samples <= 0 {
		panic("samples must be positive")
	}

	fs := props.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	progress := props.Progress
	if progress == nil {
		progress = NoProgress{}
	}

	return &Runner{
		fs:       fs,
		path:     props.Path,
		samples:  props.Samples,
		workers:  props.Workers,
		logger:   props.Logger.ForClass("demo", "Runner"),
		progress: progress,
	}
}

// Run reads the word list and runs all the phases
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	words, err := ReadWords(r.fs, r.path)
	if err != nil {
		return nil, err
	}

	// targets are drawn with replacement, so a word may be looked up
	// more than once and samples may exceed the number of words
	targets := lo.Times(r.samples, func(_ int) string {
		return lo.Sample(words)
	})
	report := &Report{Words: len(words), Samples: len(targets)}
	r.logger.Info(ctx, "word list read", logs.MapFields{
		"path":    r.path,
		"words":   report.Words,
		"samples": report.Samples,
	})

	record := func(phase Phase, err error) error {
		if err != nil {
			return err
		}

		r.logger.Info(ctx, "phase completed", phase)
		report.Phases = append(report.Phases, phase)
		return nil
	}

	if err := record(r.lookup(ctx, PhaseLinear, targets, func(target string) bool {
		return lo.Contains(words, target)
	})); err != nil {
		return nil, err
	}

	inFileOrder := build(words)
	if err := record(r.lookupTree(ctx, PhaseFileOrder, inFileOrder, targets)); err != nil {
		return nil, err
	}

	shuffled := lo.Shuffle(append([]string(nil), words...))
	if err := record(r.lookupTree(ctx, PhaseShuffled, build(shuffled), targets)); err != nil {
		return nil, err
	}

	inFileOrder.Rebalance()
	if err := record(r.lookupTree(ctx, PhaseRebalanced, inFileOrder, targets)); err != nil {
		return nil, err
	}

	if err := record(r.lookupParallel(ctx, tree.NewSynced(inFileOrder), targets)); err != nil {
		return nil, err
	}

	return report, nil
}

func build(words []string) *tree.Tree[string] {
	t := tree.NewOrdered[string]()
	for _, word := range words {
		t.AddIter(word)
	}

	return t
}

// checkEvery is the number of lookups between two checks of
// the context of a run
const checkEvery = 256

func interrupted(ctx context.Context, phase string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "%s interrupted", phase)
	}

	return nil
}

func (r *Runner) lookup(
	ctx context.Context,
	name string,
	targets []string,
	contains func(string) bool,
) (Phase, error) {
	if err := interrupted(ctx, name); err != nil {
		return Phase{}, err
	}

	r.progress.Start(name, len(targets))
	defer r.progress.Stop()

	phase := Phase{Name: name}
	start := time.Now()
	for i, target := range targets {
		if i%checkEvery == 0 {
			if err := interrupted(ctx, name); err != nil {
				return Phase{}, err
			}
		}

		if contains(target) {
			phase.Hits++
		}
		r.progress.Increment()
	}
	phase.Duration = time.Since(start)

	return phase, nil
}

func (r *Runner) lookupTree(
	ctx context.Context,
	name string,
	t *tree.Tree[string],
	targets []string,
) (Phase, error) {
	phase, err := r.lookup(ctx, name, targets, func(target string) bool {
		_, ok := t.FindIter(target)
		return ok
	})
	if err != nil {
		return Phase{}, err
	}

	phase.Tree = true
	phase.Height, _ = t.Height()
	phase.Balanced = t.IsBalanced()
	return phase, nil
}

func (r *Runner) lookupParallel(
	ctx context.Context,
	t *tree.Synced[string],
	targets []string,
) (Phase, error) {
	if err := interrupted(ctx, PhaseParallel); err != nil {
		return Phase{}, err
	}

	r.progress.Start(PhaseParallel, len(targets))
	defer r.progress.Stop()

	suppliers := lo.Map(targets, func(target string, _ int) concurrent.Supplier[bool] {
		return concurrent.SupplierFunc[bool](func() (bool, error) {
			return t.Contains(target), nil
		})
	})

	start := time.Now()
	results := concurrent.BatchSliceWithOpts(ctx, suppliers, concurrent.BatchOpts{
		Concurrency: r.workers,
	})
	duration := time.Since(start)

	if err := interrupted(ctx, PhaseParallel); err != nil {
		return Phase{}, err
	}

	phase := Phase{Name: PhaseParallel, Duration: duration, Tree: true}
	for _, result := range results {
		if result.Value() {
			phase.Hits++
		}
		r.progress.Increment()
	}

	stats := t.Stats()
	phase.Height = stats.Height
	phase.Balanced = stats.Balanced
	return phase, nil
}
