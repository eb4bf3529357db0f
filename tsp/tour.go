// Package tsp - tour utilities.
//
// Helpers operate purely on index sequences, without touching distances:
//   - IdentityTour: the initial tour [0..n-1].
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - CopyTour: independent copy of a tour slice.
//   - SameCycle: equality under rotation and reversal.
//   - reverseSegmentInPlace: half-open segment reversal (the 2-opt move).
package tsp

import "fmt"

// IdentityTour returns [0, 1, …, n-1] (empty for n<=0).
//
// Complexity: O(n) time and space.
func IdentityTour(n int) []int {
	if n <= 0 {
		return []int{}
	}
	t := make([]int, n)

	var i int
	for i = range t {
		t[i] = i
	}

	return t
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// The returned error wraps ErrInvalidInput and names the first violation.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("tour length %d, want %d: %w", len(perm), n, ErrInvalidInput)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("tour[%d]=%d out of range [0,%d): %w", i, v, n, ErrInvalidInput)
		}
		if seen[v] {
			return fmt.Errorf("tour[%d]=%d duplicated: %w", i, v, ErrInvalidInput)
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// SameCycle reports whether a and b describe the same undirected cycle,
// i.e. b is a rotation of a or of a reversed.
//
// Complexity: O(n) time.
func SameCycle(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	var n = len(a)
	if n == 0 {
		return true
	}

	var (
		p = -1
		j int
	)
	for j = 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	var (
		i       int
		forward = true
		reverse = true
	)
	for i = 0; i < n && (forward || reverse); i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[(p-i+n)%n] {
			reverse = false
		}
	}

	return forward || reverse
}

// reverseSegmentInPlace reverses tour[i:j] (half-open) in place.
// Contract: 0 ≤ i < j ≤ len(tour). The multiset of indices is unchanged.
//
// Complexity: O(j-i) time, O(1) space.
func reverseSegmentInPlace(tour []int, i, j int) {
	for j--; i < j; i, j = i+1, j-1 {
		tour[i], tour[j] = tour[j], tour[i]
	}
}
