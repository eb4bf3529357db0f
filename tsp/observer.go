package tsp

// Snapshot is a read-only view of the search handed to an Observer.
// Tours are copies; observers may keep them.
type Snapshot struct {
	// Iteration is the number of completed iterations (0 for the initial snapshot).
	Iteration int

	// State is the search state at the time of the snapshot.
	State State

	// Temperature is the current temperature (after the iteration's cooling step).
	Temperature float64

	// Cost and Tour describe the current tour.
	Cost float64
	Tour []int

	// BestCost and BestTour describe the best tour seen so far.
	BestCost float64
	BestTour []int

	// Accepted reports whether the last iteration accepted its move
	// (false for the initial snapshot).
	Accepted bool
}

// Observer receives snapshots from Search.Run. Observe is called synchronously
// on the search goroutine; slow observers slow the search down.
type Observer interface {
	Observe(Snapshot)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(Snapshot)

// Observe calls f(s).
func (f ObserverFunc) Observe(s Snapshot) { f(s) }
