// Package runner fans independent annealing runs out over a bounded worker
// pool and keeps the best one.
//
// Every run gets its own seed derived from the base seed, so the set of
// results depends only on (model, options, runs), never on scheduling.
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/ShinjiMC/Simulated-Annealing-TSP/tsp"
)

// ErrNoRuns is returned when fewer than one run is requested.
var ErrNoRuns = errors.New("runner: at least one run is required")

// ObserverFactory builds the observer of a single run; it may return nil.
type ObserverFactory func(run int) tsp.Observer

// Config controls MultiStart.
type Config struct {
	// Runs is the number of independent searches (>= 1).
	Runs int

	// Workers bounds concurrency; <= 0 means one worker per run.
	Workers int

	// Observers, when set, overrides Options.Observer per run.
	Observers ObserverFactory
}

// Outcome holds every run in run order plus the index of the winner.
type Outcome struct {
	Seeds []int64
	Runs  []tsp.Result
	Best  int
}

// BestResult returns the winning run.
func (o Outcome) BestResult() tsp.Result {
	if o.Best < 0 || o.Best >= len(o.Runs) {
		return tsp.Result{}
	}

	return o.Runs[o.Best]
}

// MultiStart runs cfg.Runs searches over dm. Run k uses
// tsp.DeriveSeed(opts.Seed, k); opts.Rand is ignored since a *rand.Rand cannot
// be shared across goroutines. The winner is the lowest BestCost, ties broken
// by the lower run index. The first failing run cancels the rest.
func MultiStart(ctx context.Context, dm *tsp.DistanceModel, opts tsp.Options, cfg Config) (Outcome, error) {
	if cfg.Runs < 1 {
		return Outcome{}, fmt.Errorf("%w: got %d", ErrNoRuns, cfg.Runs)
	}
	if dm == nil {
		return Outcome{}, tsp.ErrNilModel
	}
	if ctx == nil {
		ctx = context.Background()
	}

	out := Outcome{
		Seeds: make([]int64, cfg.Runs),
		Runs:  make([]tsp.Result, cfg.Runs),
		Best:  -1,
	}
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}

	for k := 0; k < cfg.Runs; k++ {
		runOpts := opts
		runOpts.Rand = nil
		runOpts.Seed = tsp.DeriveSeed(opts.Seed, uint64(k))
		if cfg.Observers != nil {
			runOpts.Observer = cfg.Observers(k)
		}
		out.Seeds[k] = runOpts.Seed

		g.Go(func() error {
			s, err := tsp.NewSearch(dm, runOpts)
			if err != nil {
				return fmt.Errorf("run %d: %w", k, err)
			}
			res, err := s.Run(gctx)
			if err != nil {
				return fmt.Errorf("run %d: %w", k, err)
			}
			out.Runs[k] = res
			glog.V(1).Infof("run %d seed=%d iterations=%d best=%.4f", k, runOpts.Seed, res.Iterations, res.BestCost)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Outcome{}, err
	}

	out.Best = 0
	for k := 1; k < cfg.Runs; k++ {
		if out.Runs[k].BestCost < out.Runs[out.Best].BestCost {
			out.Best = k
		}
	}

	return out, nil
}
