// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"testing"

	"github.com/ShinjiMC/Simulated-Annealing-TSP/tsp"
)

const (
	// epsCost is the tolerance for comparing incrementally tracked and
	// recomputed tour costs.
	epsCost = 1e-9

	// seedDet is a deterministic seed used across tests.
	seedDet = int64(42)
)

// Repeat runs fn n times to lock determinism.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// unitSquare returns the unit square in perimeter order (optimal cost 4).
func unitSquare() []tsp.Point {
	return []tsp.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
}

// crossedSquare returns the unit square ordered so the identity tour crosses itself.
func crossedSquare() []tsp.Point {
	return []tsp.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 0}}
}

// rippleCircle places n points on a gently rippled circle and then
// interleaves them so the identity tour is far from optimal.
func rippleCircle(n int) []tsp.Point {
	pts := make([]tsp.Point, 0, n)
	var (
		i  int
		th float64
		r  float64
	)
	for i = 0; i < n; i += 2 {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 10 + 0.25*float64(i%3)
		pts = append(pts, tsp.Point{X: r * math.Cos(th), Y: r * math.Sin(th)})
	}
	for i = 1; i < n; i += 2 {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 10 + 0.25*float64(i%3)
		pts = append(pts, tsp.Point{X: r * math.Cos(th), Y: r * math.Sin(th)})
	}

	return pts
}

// mustModel builds a DistanceModel or fails the test.
func mustModel(t *testing.T, pts []tsp.Point) *tsp.DistanceModel {
	t.Helper()
	dm, err := tsp.NewDistanceModel(pts)
	if err != nil {
		t.Fatalf("NewDistanceModel: %v", err)
	}

	return dm
}

// mustPermutation fails the test if tour is not a permutation of 0..n-1.
func mustPermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	if err := tsp.ValidatePermutation(tour, n); err != nil {
		t.Fatalf("not a permutation: %v (tour=%v)", err, tour)
	}
}

// almostEqual compares floats with an absolute tolerance.
func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
