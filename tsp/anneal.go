// Package tsp - simulated annealing search.
//
// Per iteration, in this exact order:
//  1. Propose: draw distinct positions i<j, reverse the half-open segment [i,j).
//  2. Evaluate: Δ = cost(candidate) − cost(current).
//  3. Accept if Δ<0; otherwise accept iff U[0,1) < exp(−Δ/T), the exponent
//     clamped to ±MaxExponent. The uniform draw happens only for Δ≥0.
//  4. Best: replace best tour/cost when the current cost is strictly lower.
//  5. Trace: append {T, current cost, best cost, accepted} with the pre-cooling T.
//  6. Cool: T ← T·(1 − CoolingRate).
//
// The loop runs while T > TemperatureFloor.
package tsp

import (
	"context"
	"fmt"
	"math"
	"math/rand"
)

// maxTracePrealloc caps the trace capacity reserved up front; longer
// schedules grow the trace as they run.
const maxTracePrealloc = 1 << 16

// State is the lifecycle state of a Search.
type State int

const (
	// Initialized: identity tour, its cost, and the initial temperature.
	Initialized State = iota
	// Iterating: at least one iteration ran and the floor is not reached.
	Iterating
	// Terminated: the temperature reached the floor (or N ≤ 1).
	Terminated
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Iterating:
		return "iterating"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Search owns the mutable state of one annealing run. It is not safe for
// concurrent use; the DistanceModel it reads may be shared.
type Search struct {
	dm   *DistanceModel
	opts Options
	rng  *rand.Rand

	state    State
	temp     float64
	cur      []int
	curCost  float64
	best     []int
	bestCost float64
	cand     []int // scratch buffer for the proposed tour
	accepted bool  // outcome of the last iteration
	trace    []TraceRecord
}

// NewSearch validates opts and prepares a run over dm in the Initialized state.
// For dm.Len() ≤ 1 no move exists: the search starts Terminated with the
// trivial tour and cost 0.
//
// Errors: ErrNilModel, or ErrCoolingRate / ErrTemperatureFloor /
// ErrInitialTemperature (all match ErrInvalidConfiguration).
func NewSearch(dm *DistanceModel, opts Options) (*Search, error) {
	if dm == nil {
		return nil, ErrNilModel
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	var n = dm.Len()
	s := &Search{
		dm:    dm,
		opts:  opts,
		rng:   rngFor(opts),
		state: Initialized,
		temp:  opts.InitialTemperature,
		cur:   IdentityTour(n),
	}
	s.curCost = TourCost(dm, s.cur)
	s.best = CopyTour(s.cur)
	s.bestCost = s.curCost

	if n <= 1 {
		s.state = Terminated
		s.trace = []TraceRecord{}

		return s, nil
	}
	s.cand = make([]int, n)
	s.trace = make([]TraceRecord, 0, min(EstimatedIterations(opts), maxTracePrealloc))

	return s, nil
}

// State returns the current lifecycle state.
func (s *Search) State() State { return s.state }

// Temperature returns the current temperature.
func (s *Search) Temperature() float64 { return s.temp }

// Current returns a copy of the current tour and its cost.
func (s *Search) Current() ([]int, float64) { return CopyTour(s.cur), s.curCost }

// Best returns a copy of the best tour seen so far and its cost.
func (s *Search) Best() ([]int, float64) { return CopyTour(s.best), s.bestCost }

// Iterations returns the number of executed iterations.
func (s *Search) Iterations() int { return len(s.trace) }

// Step executes one iteration. It returns false, without doing anything,
// once the search is Terminated.
//
// Complexity: O(n) per call (copy, reversal and cost evaluation).
func (s *Search) Step() bool {
	if s.state == Terminated {
		return false
	}
	if !(s.temp > s.opts.TemperatureFloor) {
		s.state = Terminated
		return false
	}
	s.state = Iterating

	// 1) Propose a 2-opt neighbour.
	copy(s.cand, s.cur)
	i, j := samplePair(s.rng, len(s.cur))
	reverseSegmentInPlace(s.cand, i, j)

	// 2) Evaluate.
	candCost := TourCost(s.dm, s.cand)
	delta := candCost - s.curCost

	// 3) Metropolis; the uniform draw is consumed only for non-improving moves.
	s.accepted = delta < 0 || s.rng.Float64() < AcceptProbability(delta, s.temp)
	if s.accepted {
		s.cur, s.cand = s.cand, s.cur
		s.curCost = candCost
	}

	// 4) Best tracking.
	if s.curCost < s.bestCost {
		copy(s.best, s.cur)
		s.bestCost = s.curCost
	}

	// 5) Trace with the pre-cooling temperature.
	s.trace = append(s.trace, TraceRecord{
		Temperature: s.temp,
		Cost:        s.curCost,
		BestCost:    s.bestCost,
		Accepted:    s.accepted,
	})

	// 6) Cool.
	s.temp *= 1 - s.opts.CoolingRate
	if !(s.temp > s.opts.TemperatureFloor) {
		s.state = Terminated
	}

	return true
}

// Run drives the search to termination and returns its result.
// ctx is checked once per iteration; when it is done Run returns ErrCanceled
// wrapping ctx.Err() and no result. Calling Run on a Terminated search
// returns the final result again.
//
// Observer contract: one initial snapshot (Iteration 0); then, with
// EmitEveryIteration, one snapshot per iteration; otherwise one final
// snapshot. A run with zero iterations always gets initial and final.
func (s *Search) Run(ctx context.Context) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var (
		obs   = s.opts.Observer
		every = s.opts.EmitEveryIteration
		ran   int
		err   error
	)
	if obs != nil {
		obs.Observe(s.snapshot())
	}

	for s.state != Terminated {
		if err = ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("%w after %d iterations: %w", ErrCanceled, len(s.trace), err)
		}
		if !s.Step() {
			break
		}
		ran++
		if obs != nil && every {
			obs.Observe(s.snapshot())
		}
	}

	if obs != nil && (!every || ran == 0) {
		obs.Observe(s.snapshot())
	}

	return s.Result(), nil
}

// Result returns the outcome so far; after termination it is final.
// BestTour is a copy; Trace is handed over read-only.
func (s *Search) Result() Result {
	return Result{
		BestTour:         CopyTour(s.best),
		BestCost:         s.bestCost,
		FinalTemperature: s.temp,
		Iterations:       len(s.trace),
		Trace:            s.trace,
	}
}

func (s *Search) snapshot() Snapshot {
	return Snapshot{
		Iteration:   len(s.trace),
		State:       s.state,
		Temperature: s.temp,
		Cost:        s.curCost,
		Tour:        CopyTour(s.cur),
		BestCost:    s.bestCost,
		BestTour:    CopyTour(s.best),
		Accepted:    s.accepted,
	}
}

// AcceptProbability returns the Metropolis acceptance probability of a move
// with cost change delta at temperature temp: 1 for delta<0, otherwise
// exp(−delta/temp) with the exponent clamped to [−MaxExponent, MaxExponent]
// so the result is always finite.
//
// Contract: temp > 0.
func AcceptProbability(delta, temp float64) float64 {
	if delta < 0 {
		return 1
	}
	x := -delta / temp
	if x > MaxExponent {
		x = MaxExponent
	} else if x < -MaxExponent {
		x = -MaxExponent
	}

	return math.Exp(x)
}

// Anneal validates points and opts, builds a DistanceModel and runs one search.
// Zero points yield the trivial empty result; one point yields [0] with cost 0.
// Neither case enters the loop.
//
// Errors: ErrNonFiniteCoordinate (ErrInvalidInput), the configuration sentinels
// (ErrInvalidConfiguration), ErrCanceled.
func Anneal(ctx context.Context, points []Point, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if len(points) == 0 {
		return Result{
			BestTour:         []int{},
			FinalTemperature: opts.InitialTemperature,
			Trace:            []TraceRecord{},
		}, nil
	}

	dm, err := NewDistanceModel(points)
	if err != nil {
		return Result{}, err
	}
	s, err := NewSearch(dm, opts)
	if err != nil {
		return Result{}, err
	}

	return s.Run(ctx)
}
