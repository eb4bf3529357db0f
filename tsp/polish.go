// Package tsp - deterministic 2-opt polish.
//
// Polish is a descent, not a search: it only ever applies strictly improving
// reversals, scanning in a fixed order, so it uses no RNG.
package tsp

// polishEps is the minimum gain for a 2-opt move to count as an improvement.
const polishEps = 1e-12

// Polish runs deterministic first-improvement 2-opt on tour until no move
// shortens it or maxMoves moves have been applied (maxMoves <= 0 means no
// limit). The input is not modified; the returned tour keeps tour[0] first.
//
// For positions i < k, reversing tour[i..k] replaces edges (a,b),(c,d) with
// (a,c),(b,d) where a = tour[i-1], b = tour[i], c = tour[k], d = tour[k+1],
// indices taken cyclically. One full scan is O(n²).
func Polish(dm *DistanceModel, tour []int, maxMoves int) ([]int, float64, int) {
	cur := CopyTour(tour)
	n := len(cur)
	if dm == nil {
		return cur, 0, 0
	}
	if n < 4 {
		return cur, TourCost(dm, cur), 0
	}

	var (
		a, b, c, d int
		i, k       int
		delta      float64
		moves      int
	)
	for {
		improved := false
		for i = 1; i < n-1; i++ {
			for k = i + 1; k < n; k++ {
				a = cur[i-1]
				b = cur[i]
				c = cur[k]
				d = cur[(k+1)%n]
				if a == d {
					continue
				}
				delta = dm.Distance(a, c) + dm.Distance(b, d) - dm.Distance(a, b) - dm.Distance(c, d)
				if delta >= -polishEps {
					continue
				}
				reverseSegmentInPlace(cur, i, k+1)
				moves++
				improved = true

				break
			}
			if improved || (maxMoves > 0 && moves >= maxMoves) {
				break
			}
		}
		if !improved || (maxMoves > 0 && moves >= maxMoves) {
			break
		}
	}

	return cur, TourCost(dm, cur), moves
}
