package tsp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ShinjiMC/Simulated-Annealing-TSP/tsp"
)

func TestDistanceModel_EuclideanSymmetricZeroDiagonal(t *testing.T) {
	pts := []tsp.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: -1, Y: 2}}
	dm := mustModel(t, pts)

	if dm.Len() != 3 {
		t.Fatalf("Len=%d, want 3", dm.Len())
	}
	if got := dm.Distance(0, 1); got != 5 {
		t.Fatalf("d(0,1)=%v, want 5", got)
	}
	var i, j int
	for i = 0; i < 3; i++ {
		if dm.Distance(i, i) != 0 {
			t.Fatalf("d(%d,%d) != 0", i, i)
		}
		for j = 0; j < 3; j++ {
			if dm.Distance(i, j) != dm.Distance(j, i) {
				t.Fatalf("asymmetric at (%d,%d)", i, j)
			}
			if dm.Distance(i, j) < 0 {
				t.Fatalf("negative distance at (%d,%d)", i, j)
			}
		}
	}

	// Matrix returns a detached copy.
	m := dm.Matrix()
	if err := m.Set(0, 1, 99); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if dm.Distance(0, 1) != 5 {
		t.Fatalf("model mutated through Matrix() copy")
	}
}

func TestDistanceModel_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		pts  []tsp.Point
		want error
	}{
		{"empty", nil, tsp.ErrNoPoints},
		{"nan", []tsp.Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}}, tsp.ErrNonFiniteCoordinate},
		{"inf", []tsp.Point{{X: math.Inf(-1), Y: 0}}, tsp.ErrNonFiniteCoordinate},
		{"overflow", []tsp.Point{{X: -math.MaxFloat64, Y: 0}, {X: math.MaxFloat64, Y: 0}}, tsp.ErrNonFiniteCoordinate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsp.NewDistanceModel(tc.pts)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err=%v, want %v", err, tc.want)
			}
			if !errors.Is(err, tsp.ErrInvalidInput) {
				t.Fatalf("err=%v does not match ErrInvalidInput", err)
			}
		})
	}
}

func TestDistanceModel_OutOfRangePanics(t *testing.T) {
	dm := mustModel(t, unitSquare())
	defer func() {
		if recover() == nil {
			t.Fatalf("Distance(0,4) did not panic")
		}
	}()
	_ = dm.Distance(0, 4)
}
