// Package tsp - tour cost.
//
// A tour is an implicitly cyclic permutation: the last index connects back
// to the first, so no closing vertex is stored.
package tsp

// TourCost returns the cyclic length of tour under dm:
// Σ d(tour[k], tour[k+1]) for k in 0..n-2, plus d(tour[n-1], tour[0]).
//
// Contract: tour is a permutation of 0..dm.Len()-1. Out-of-range indices
// panic (see DistanceModel.Distance); duplicates are not detected here.
// For len(tour) <= 1 the cost is 0 by definition.
//
// Complexity: O(n).
func TourCost(dm *DistanceModel, tour []int) float64 {
	var n = len(tour)
	if n <= 1 {
		return 0
	}

	var (
		sum float64
		k   int
	)
	for k = 0; k < n-1; k++ {
		sum += dm.Distance(tour[k], tour[k+1])
	}
	sum += dm.Distance(tour[n-1], tour[0]) // close the cycle

	return sum
}
