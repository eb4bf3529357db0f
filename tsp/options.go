// Package tsp - search configuration.
//
// Options is a plain struct with documented defaults; zero values are not
// silently replaced: call DefaultOptions or LiveOptions and override fields.
package tsp

import (
	"math"
	"math/rand"
)

// Defaults of the single-pass variant.
const (
	// DefaultInitialTemperature is the starting temperature.
	DefaultInitialTemperature = 1000.0

	// DefaultCoolingRate is the geometric cooling rate; T ← T·(1 − rate).
	DefaultCoolingRate = 0.005

	// DefaultTemperatureFloor is the stopping threshold; the loop runs while T > floor.
	DefaultTemperatureFloor = 1.0

	// MaxExponent clamps the argument of exp() in the acceptance test.
	// For float64, exp(709) is finite while exp(710) overflows to +Inf.
	MaxExponent = 709.0
)

// Defaults of the live-updating variant.
const (
	// LiveInitialTemperature is the starting temperature of LiveOptions.
	LiveInitialTemperature = 10000.0

	// LiveCoolingRate is the cooling rate of LiveOptions.
	LiveCoolingRate = 0.003
)

// Options configures a Search.
type Options struct {
	// InitialTemperature must be finite and strictly greater than TemperatureFloor.
	InitialTemperature float64

	// CoolingRate must lie in the open interval (0,1).
	CoolingRate float64

	// TemperatureFloor must be finite and > 0.
	TemperatureFloor float64

	// Seed selects the deterministic random stream when Rand is nil.
	// Seed==0 maps to a fixed default seed.
	Seed int64

	// Rand, when non-nil, is used as the run's generator and takes precedence
	// over Seed. The search consumes it exclusively; do not share it.
	Rand *rand.Rand

	// EmitEveryIteration makes the Observer receive a snapshot after every
	// iteration. When false it receives only the initial and final snapshots.
	EmitEveryIteration bool

	// Observer, when non-nil, receives snapshots (see EmitEveryIteration).
	Observer Observer
}

// DefaultOptions returns the single-pass configuration: T0=1000, rate=0.005, floor=1.
func DefaultOptions() Options {
	return Options{
		InitialTemperature: DefaultInitialTemperature,
		CoolingRate:        DefaultCoolingRate,
		TemperatureFloor:   DefaultTemperatureFloor,
	}
}

// LiveOptions returns the live-updating configuration: T0=10000, rate=0.003,
// floor=1, with per-iteration snapshots enabled.
func LiveOptions() Options {
	return Options{
		InitialTemperature: LiveInitialTemperature,
		CoolingRate:        LiveCoolingRate,
		TemperatureFloor:   DefaultTemperatureFloor,
		EmitEveryIteration: true,
	}
}

// replayLimit is the largest estimated iteration count IterationBound replays;
// beyond it the closed form is returned.
const replayLimit = 1 << 24

// IterationBound returns the exact number of iterations a valid
// configuration executes: the count of k ≥ 0 with T0·(1−rate)^k > floor,
// i.e. ceil(log(floor/T0) / log(1−rate)) when that ratio is not an integer.
// The count is obtained by replaying the cooling schedule, so it matches the
// search loop exactly under floating-point rounding. Schedules estimated
// above replayLimit iterations are not replayed and report
// EstimatedIterations instead. Returns 0 for invalid options.
//
// Complexity: O(min(IterationBound, replayLimit)) time, O(1) space.
func IterationBound(opts Options) int {
	est := EstimatedIterations(opts)
	if est == 0 || est > replayLimit {
		return est
	}
	var (
		temp   = opts.InitialTemperature
		factor = 1 - opts.CoolingRate
		k      int
	)
	for temp > opts.TemperatureFloor {
		temp *= factor
		k++
	}

	return k
}

// EstimatedIterations returns the closed-form ceil(log(floor/T0)/log(1−rate))
// for valid options and 0 otherwise, saturating at math.MaxInt. It equals
// IterationBound except when the ratio lands within rounding distance of an
// integer.
//
// Complexity: O(1).
func EstimatedIterations(opts Options) int {
	if validateOptions(opts) != nil {
		return 0
	}
	est := math.Ceil(math.Log(opts.TemperatureFloor/opts.InitialTemperature) / math.Log1p(-opts.CoolingRate))
	if !(est < math.MaxInt) {
		return math.MaxInt
	}

	return int(est)
}
