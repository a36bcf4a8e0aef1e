// Package engine implements FindMatches(teachers) -> []match.Result: the
// top-level orchestration that partitions teachers into eligibility classes
// and runs the cycle-matching pipeline over each class, optionally in
// parallel.
package engine

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cycleswap/matcher/cycleenum"
	"github.com/cycleswap/matcher/dedup"
	"github.com/cycleswap/matcher/eligibility"
	"github.com/cycleswap/matcher/match"
	"github.com/cycleswap/matcher/model"
	"github.com/cycleswap/matcher/prefgraph"
)

// Engine runs the matching pipeline. Its zero value is not usable; build
// one with New.
type Engine struct {
	log            *zap.SugaredLogger
	maxCycleLength int
	maxWork        int64
	parallel       bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger installs l as the engine's structured logger. The default is
// zap.NewNop(), so an Engine built with no options produces no log output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l.Sugar() }
}

// WithMaxCycleLength overrides the maximum cycle length (default 10).
func WithMaxCycleLength(k int) Option {
	return func(e *Engine) { e.maxCycleLength = k }
}

// WithMaxWork bounds the per-class enumeration work budget. Zero (the
// default) means unlimited.
func WithMaxWork(n int64) Option {
	return func(e *Engine) { e.maxWork = n }
}

// WithParallelClasses enables fanning the per-class pipeline out across an
// errgroup bounded by GOMAXPROCS. Classes are independent, so enabling it
// does not change the output, only the wall-clock cost of producing it.
func WithParallelClasses(enabled bool) Option {
	return func(e *Engine) { e.parallel = enabled }
}

// New builds an Engine. Defaults: max cycle length 10, no work limit,
// sequential per-class processing, no-op logger.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:            zap.NewNop().Sugar(),
		maxCycleLength: cycleenum.DefaultMaxCycleLength,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// FindMatches enumerates every viable transfer cycle over teachers. It is a
// pure function of its input: no I/O, no shared state, and it never returns
// an error for well-formed or malformed input alike. The only error path
// is an internal invariant violation in the core.Graph primitive, which
// would indicate a bug in this module rather than bad input.
func (e *Engine) FindMatches(ctx context.Context, teachers []model.Teacher) ([]match.Result, error) {
	invocationID := uuid.New().String()
	log := e.log.With("invocation_id", invocationID)
	log.Infow("find_matches started", "teacher_count", len(teachers))

	if len(teachers) == 0 {
		log.Infow("find_matches finished", "match_count", 0)
		return nil, nil
	}

	partitioned := eligibility.Partition(teachers)
	log.Infow("partitioned", "class_count", len(partitioned.Order))

	perClass := make([][]match.Result, len(partitioned.Order))

	processClass := func(i int) error {
		key := partitioned.Order[i]
		class := partitioned.Classes[key]

		results, truncated, err := e.runClass(class)
		if err != nil {
			return fmt.Errorf("engine: class (year=%d subject=%s): %w", key.Year, key.Subject, err)
		}
		if truncated {
			log.Warnw("cycle enumeration truncated by work budget",
				"year", key.Year, "subject", key.Subject, "class_size", len(class))
		}
		perClass[i] = results

		return nil
	}

	if e.parallel && len(partitioned.Order) > 1 {
		g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
		g.SetLimit(max(1, runtime.GOMAXPROCS(0)))
		for i := range partitioned.Order {
			i := i
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				return processClass(i)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range partitioned.Order {
			if err := processClass(i); err != nil {
				return nil, err
			}
		}
	}

	var out []match.Result
	for _, results := range perClass {
		out = append(out, results...)
	}

	log.Infow("find_matches finished", "match_count", len(out))

	return out, nil
}

// runClass runs the per-class pipeline: build the preference graph,
// enumerate rotationally-deduplicated cycles, assemble results, then apply
// the location-group canonicaliser.
func (e *Engine) runClass(class []model.Teacher) ([]match.Result, bool, error) {
	if len(class) < 2 {
		return nil, false, nil
	}

	pg, err := prefgraph.Build(class)
	if err != nil {
		return nil, false, err
	}

	enumResult, err := cycleenum.Enumerate(pg,
		cycleenum.WithMaxCycleLength(e.maxCycleLength),
		cycleenum.WithMaxWork(e.maxWork),
	)
	if err != nil {
		return nil, false, err
	}

	results := make([]match.Result, len(enumResult.Cycles))
	for i, c := range enumResult.Cycles {
		results[i] = match.Assemble(class, c.TypeTag, c.Indices)
	}

	deduped := dedup.Filter(results, func(r match.Result) string {
		return dedup.Key(match.LocationMembers(r))
	})

	return deduped, enumResult.Truncated, nil
}
