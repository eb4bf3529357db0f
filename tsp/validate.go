// Package tsp - validation of points and options.
//
// All checks are deterministic, side-effect free and run before any search
// state exists, so a rejected call never starts the loop.
package tsp

import (
	"fmt"
	"math"
)

// validatePoints rejects empty point sets and non-finite coordinates.
// The returned error names the first offending index.
//
// Complexity: O(n).
func validatePoints(points []Point) error {
	if len(points) == 0 {
		return ErrNoPoints
	}

	var i int
	for i = range points {
		if !isFinite(points[i].X) || !isFinite(points[i].Y) {
			return fmt.Errorf("point %d (%v, %v): %w", i, points[i].X, points[i].Y, ErrNonFiniteCoordinate)
		}
	}

	return nil
}

// validateOptions checks the cooling schedule parameters.
// Order: rate → floor → initial temperature (the latter depends on the floor).
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// NaN fails both comparisons and is rejected as well.
	if !(opts.CoolingRate > 0 && opts.CoolingRate < 1) {
		return fmt.Errorf("cooling rate %v: %w", opts.CoolingRate, ErrCoolingRate)
	}
	// Below ~1.1e-16 the factor rounds to 1 and the temperature never drops.
	if 1-opts.CoolingRate == 1 {
		return fmt.Errorf("cooling rate %v does not lower the temperature: %w", opts.CoolingRate, ErrCoolingRate)
	}
	if !isFinite(opts.TemperatureFloor) || opts.TemperatureFloor <= 0 {
		return fmt.Errorf("temperature floor %v: %w", opts.TemperatureFloor, ErrTemperatureFloor)
	}
	if !isFinite(opts.InitialTemperature) || opts.InitialTemperature <= opts.TemperatureFloor {
		return fmt.Errorf("initial temperature %v with floor %v: %w",
			opts.InitialTemperature, opts.TemperatureFloor, ErrInitialTemperature)
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
