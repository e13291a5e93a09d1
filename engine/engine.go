package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/tso/bbv"
	"github.com/katalvlaran/tso/config"
	"github.com/katalvlaran/tso/order"
	"github.com/katalvlaran/tso/threshold"
)

var (
	// ErrIO marks failures opening the input or creating the outputs.
	ErrIO = errors.New("engine: i/o failure")

	// ErrInvalidOrder is returned when a strategy produces something other
	// than a permutation of the case ids.
	ErrInvalidOrder = errors.New("engine: strategy returned an invalid order")
)

// Report summarizes a finished run.
type Report struct {
	RunID    string
	Strategy string
	Cases    int
	Universe uint
	Order    []int

	// Cost is the sum of Hamming distances between consecutive cases.
	Cost uint

	// Details is set by the threshold optimizer only.
	Details *threshold.Details

	// SaturatedAt is the branch optimizer's switch position, -1 otherwise.
	SaturatedAt int

	// Fallbacks counts the steps that did not follow a nearest neighbour.
	Fallbacks int

	Elapsed time.Duration
}

// Run is the context of one ordering job.
type Run struct {
	ID     string
	Config *config.Config
	Logger *slog.Logger
}

// New creates a run with a fresh id. A nil logger discards all records.
func New(cfg *config.Config, log *slog.Logger) *Run {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	id := uuid.NewString()
	return &Run{ID: id, Config: cfg, Logger: log.With("run_id", id)}
}

// Execute runs the named strategy.
func (r *Run) Execute(ctx context.Context, strategy string) (*Report, error) {
	start := time.Now()
	cfg := r.Config
	if err := cfg.Validate(strategy); err != nil {
		return nil, err
	}
	s, ok := lookup(strategy)
	if !ok {
		return nil, &config.ConfigError{Field: "strategy", Message: "unknown strategy " + strategy}
	}
	log := r.Logger.With("strategy", strategy)

	outputs, err := r.reserve(s)
	if err != nil {
		return nil, err
	}
	defer outputs.abort()

	set, err := r.load()
	if err != nil {
		return nil, err
	}
	log.Info("vectors loaded",
		"path", cfg.Vectors.Path,
		"cases", set.Len(),
		"universe", set.Universe(),
		"elapsed", time.Since(start))

	rep := &Report{
		RunID:       r.ID,
		Strategy:    strategy,
		Cases:       set.Len(),
		Universe:    set.Universe(),
		SaturatedAt: -1,
	}
	t0 := time.Now()
	if err = s.order(ctx, r, set, rep); err != nil {
		return nil, err
	}
	if err = order.Validate(rep.Order, set.Len()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	if rep.Cost, err = order.Cost(set, rep.Order); err != nil {
		return nil, err
	}
	attrs := []any{"cases", rep.Cases, "cost", rep.Cost, "fallbacks", rep.Fallbacks, "elapsed", time.Since(t0)}
	if rep.Details != nil {
		attrs = append(attrs,
			"threshold", rep.Details.Threshold,
			"pairs_below", rep.Details.PairsBelow,
			"chained", rep.Details.Chained)
	}
	if rep.SaturatedAt >= 0 {
		attrs = append(attrs, "saturated_at", rep.SaturatedAt)
	}
	log.Info("cases ordered", attrs...)

	t0 = time.Now()
	if err = outputs.commit(rep); err != nil {
		return nil, err
	}
	rep.Elapsed = time.Since(start)
	log.Info("order exported", "path", cfg.Output.Order, "elapsed", time.Since(t0))
	return rep, nil
}

// Inspect loads the configured vector file and summarizes it.
func (r *Run) Inspect() (bbv.Stats, error) {
	set, err := r.load()
	if err != nil {
		return bbv.Stats{}, err
	}
	st := bbv.Summarize(set)
	r.Logger.Info("vectors inspected", "path", r.Config.Vectors.Path, "cases", st.Cases, "universe", st.Universe)
	return st, nil
}

// Score reads an order file and returns its cost over the configured
// vectors. The order must be a permutation of the case ids.
func (r *Run) Score(path string) (uint, error) {
	set, err := r.load()
	if err != nil {
		return 0, err
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	o, err := order.Read(f)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	if err = order.Validate(o, set.Len()); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	cost, err := order.Cost(set, o)
	if err != nil {
		return 0, err
	}
	r.Logger.Info("order scored", "path", path, "cases", len(o), "cost", cost)
	return cost, nil
}

func (r *Run) load() (*bbv.Set, error) {
	v := r.Config.Vectors
	set, err := bbv.Open(v.Path, bbv.Expect{Universe: v.Universe, Cases: v.Cases})
	if err != nil {
		var pe *fs.PathError
		if errors.As(err, &pe) {
			return nil, fmt.Errorf("%w: open %s: %w", ErrIO, v.Path, pe.Err)
		}
		return nil, fmt.Errorf("load %s: %w", v.Path, err)
	}
	return set, nil
}

// outputs holds the reserved artifacts of a run.
type outputs struct {
	order   *order.File
	details *order.File
	format  string
}

// reserve creates the temporary output files up front so that unwritable
// destinations fail before any computation.
func (r *Run) reserve(s strategy) (*outputs, error) {
	out := &outputs{format: r.Config.Output.DetailsFormat}
	var err error
	if out.order, err = order.Create(r.Config.Output.Order); err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", ErrIO, r.Config.Output.Order, err)
	}
	if s.details {
		if out.details, err = order.Create(r.Config.Output.Details); err != nil {
			out.abort()
			return nil, fmt.Errorf("%w: create %s: %w", ErrIO, r.Config.Output.Details, err)
		}
	}
	return out, nil
}

func (o *outputs) commit(rep *Report) error {
	if err := order.Write(o.order, rep.Order); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, o.order.Path(), err)
	}
	if o.details != nil && rep.Details != nil {
		if err := threshold.WriteDetails(o.details, *rep.Details, o.format); err != nil {
			return fmt.Errorf("write %s: %w", o.details.Path(), err)
		}
	}
	if err := o.order.Commit(); err != nil {
		return fmt.Errorf("%w: commit %s: %w", ErrIO, o.order.Path(), err)
	}
	if o.details != nil {
		if err := o.details.Commit(); err != nil {
			return fmt.Errorf("%w: commit %s: %w", ErrIO, o.details.Path(), err)
		}
	}
	return nil
}

func (o *outputs) abort() {
	o.order.Abort()
	if o.details != nil {
		o.details.Abort()
	}
}
