// Package tsp - Euclidean distance model.
//
// The model is built once from an immutable point set and is read-only
// afterwards, so one instance may back any number of concurrent searches.
package tsp

import (
	"fmt"
	"math"

	"github.com/ShinjiMC/Simulated-Annealing-TSP/matrix"
)

// DistanceModel serves symmetric Euclidean distances between point pairs.
// The zero value and a model over zero points both have Len()==0.
type DistanceModel struct {
	n    int
	dist *matrix.Dense // nil when n==0
}

// NewDistanceModel validates points and precomputes all pairwise distances.
//
// Errors: ErrNoPoints, ErrNonFiniteCoordinate (both match ErrInvalidInput).
//
// Complexity: O(n²) time and memory.
func NewDistanceModel(points []Point) (*DistanceModel, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	d, err := matrix.NewSymmetric(len(points), func(i, j int) float64 {
		return math.Hypot(points[j].X-points[i].X, points[j].Y-points[i].Y)
	})
	if err != nil {
		// Finite coordinates can still overflow Hypot (e.g. ±MaxFloat64 apart).
		return nil, fmt.Errorf("%w: %w", ErrNonFiniteCoordinate, err)
	}

	return &DistanceModel{n: len(points), dist: d}, nil
}

// Len returns the number of points.
func (m *DistanceModel) Len() int {
	if m == nil {
		return 0
	}

	return m.n
}

// Distance returns the Euclidean distance between points i and j.
// Out-of-range indices are a programming error and panic.
//
// Complexity: O(1).
func (m *DistanceModel) Distance(i, j int) float64 {
	v, err := m.dist.At(i, j)
	if err != nil {
		panic(fmt.Sprintf("tsp: Distance(%d,%d) on %d points: %v", i, j, m.n, err))
	}

	return v
}

// Matrix returns an independent copy of the distance matrix, or nil for an
// empty model.
func (m *DistanceModel) Matrix() matrix.Matrix {
	if m == nil || m.dist == nil {
		return nil
	}

	return m.dist.Clone()
}
