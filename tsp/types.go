package tsp

import "errors"

// Error taxonomy. Specific sentinels wrap one of the two category sentinels,
// so errors.Is(err, ErrInvalidInput) matches every input problem.
var (
	// ErrInvalidInput covers point sets the search cannot run on.
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrInvalidConfiguration covers Options outside the supported regime.
	// Values are never clamped into a different regime.
	ErrInvalidConfiguration = errors.New("tsp: invalid configuration")

	// ErrNoPoints is returned when fewer than one point is supplied.
	ErrNoPoints = wrapSentinel(ErrInvalidInput, "no points")

	// ErrNonFiniteCoordinate is returned for NaN or ±Inf coordinates.
	ErrNonFiniteCoordinate = wrapSentinel(ErrInvalidInput, "non-finite coordinate")

	// ErrCoolingRate is returned when CoolingRate is outside (0,1).
	ErrCoolingRate = wrapSentinel(ErrInvalidConfiguration, "cooling rate must be in (0,1)")

	// ErrTemperatureFloor is returned when TemperatureFloor is not a finite positive number.
	ErrTemperatureFloor = wrapSentinel(ErrInvalidConfiguration, "temperature floor must be > 0")

	// ErrInitialTemperature is returned when InitialTemperature <= TemperatureFloor.
	ErrInitialTemperature = wrapSentinel(ErrInvalidConfiguration, "initial temperature must exceed the floor")

	// ErrNilModel is returned when a nil *DistanceModel reaches NewSearch.
	ErrNilModel = wrapSentinel(ErrInvalidInput, "nil distance model")

	// ErrCanceled is returned when the context passed to Run is done before
	// the cooling schedule completes. No partial result accompanies it.
	ErrCanceled = errors.New("tsp: search canceled")
)

// sentinelError is a leaf sentinel that unwraps to its category.
type sentinelError struct {
	parent error
	msg    string
}

func wrapSentinel(parent error, msg string) error {
	return &sentinelError{parent: parent, msg: msg}
}

func (e *sentinelError) Error() string { return e.parent.Error() + ": " + e.msg }
func (e *sentinelError) Unwrap() error { return e.parent }

// Point is an immutable 2D coordinate supplied by the caller.
type Point struct {
	X, Y float64
}

// TraceRecord is one iteration of the annealing loop.
type TraceRecord struct {
	// Temperature is the temperature the acceptance test ran at (pre-cooling).
	Temperature float64

	// Cost is the current tour cost after the accept/reject decision.
	Cost float64

	// BestCost is the best cost seen up to and including this iteration.
	BestCost float64

	// Accepted reports whether the proposed 2-opt move was taken.
	Accepted bool
}

// Result is the outcome of a completed search.
type Result struct {
	// BestTour is a permutation of 0..N-1, implicitly cyclic (no closing vertex).
	BestTour []int

	// BestCost is the cyclic length of BestTour.
	BestCost float64

	// FinalTemperature is the temperature after the last cooling step
	// (the initial temperature when no iteration ran).
	FinalTemperature float64

	// Iterations is the number of executed iterations; len(Trace)==Iterations.
	Iterations int

	// Trace holds one record per iteration, in order.
	Trace []TraceRecord
}

// AcceptanceRate returns the fraction of accepted moves in the trace
// (0 for an empty trace).
func (r Result) AcceptanceRate() float64 {
	if len(r.Trace) == 0 {
		return 0
	}
	var (
		acc int
		i   int
	)
	for i = range r.Trace {
		if r.Trace[i].Accepted {
			acc++
		}
	}

	return float64(acc) / float64(len(r.Trace))
}
