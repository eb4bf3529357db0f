package tsp_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/ShinjiMC/Simulated-Annealing-TSP/tsp"
)

func TestIdentityTour(t *testing.T) {
	if got := tsp.IdentityTour(4); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Fatalf("IdentityTour(4)=%v", got)
	}
	if got := tsp.IdentityTour(0); got == nil || len(got) != 0 {
		t.Fatalf("IdentityTour(0)=%v, want empty non-nil", got)
	}
}

func TestValidatePermutation(t *testing.T) {
	cases := []struct {
		name string
		perm []int
		n    int
		ok   bool
	}{
		{"ok", []int{2, 0, 1}, 3, true},
		{"empty", []int{}, 0, true},
		{"short", []int{0, 1}, 3, false},
		{"dup", []int{0, 1, 1}, 3, false},
		{"range", []int{0, 1, 3}, 3, false},
		{"negative", []int{0, -1, 2}, 3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.ValidatePermutation(tc.perm, tc.n)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, tsp.ErrInvalidInput) {
				t.Fatalf("err=%v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCopyTour_Independent(t *testing.T) {
	a := []int{0, 1, 2}
	b := tsp.CopyTour(a)
	b[0] = 9
	if a[0] != 0 {
		t.Fatalf("CopyTour aliases its input")
	}
	if tsp.CopyTour(nil) != nil {
		t.Fatalf("CopyTour(nil) != nil")
	}
}

func TestSameCycle(t *testing.T) {
	a := []int{0, 1, 2, 3, 4}
	cases := []struct {
		b    []int
		want bool
	}{
		{[]int{0, 1, 2, 3, 4}, true},
		{[]int{2, 3, 4, 0, 1}, true},
		{[]int{4, 3, 2, 1, 0}, true},
		{[]int{1, 0, 4, 3, 2}, true},
		{[]int{0, 2, 1, 3, 4}, false},
		{[]int{0, 1, 2, 3}, false},
	}
	for _, tc := range cases {
		if got := tsp.SameCycle(a, tc.b); got != tc.want {
			t.Fatalf("SameCycle(%v,%v)=%v, want %v", a, tc.b, got, tc.want)
		}
	}
	if !tsp.SameCycle(nil, []int{}) {
		t.Fatalf("empty cycles should compare equal")
	}
}
