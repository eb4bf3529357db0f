// Package tsp approximates the Travelling Salesman Problem on a small,
// fully-connected Euclidean instance with simulated annealing.
//
// The package is a pure computational core:
//
//   - DistanceModel: symmetric Euclidean distances, built once from []Point.
//
//   - TourCost: total length of a cyclic tour (last index closes to the first).
//
//   - Search: geometric cooling, 2-opt segment reversal as the only
//     neighbour move, Metropolis acceptance with a clamped exponent, and
//     best-tour tracking. Every iteration appends one TraceRecord.
//
//   - Polish: an optional deterministic 2-opt descent for the final tour.
//
// The search never loads files, draws, or logs. Callers that want to render
// progress attach an Observer; rendering is entirely their concern.
//
// Determinism: every run owns its *rand.Rand (Options.Rand or one derived from
// Options.Seed). The same seed, points and options always yield bit-identical
// tours, costs and traces. Seed==0 selects a fixed default stream; there is no
// time-based randomness anywhere in the package.
//
// Concurrency: a DistanceModel is read-only after construction and may be
// shared across goroutines. A Search is not goroutine-safe; run independent
// searches for multi-start parallelism.
//
// Termination: temperature strictly decreases by the factor (1 − CoolingRate)
// per iteration and the loop runs while it is above TemperatureFloor, so a run
// executes exactly IterationBound(opts) iterations regardless of the outcome.
package tsp
