package colony

import (
	"time"

	"github.com/katalvlaran/antcolony/maze"
)

// Status is the lifecycle state of a colony run.
type Status int

const (
	// Running means more rounds may follow.
	Running Status = iota
	// Converged means the best path reached the target length.
	Converged
	// Stagnated means StagnationLimit rounds passed without improvement.
	Stagnated
	// ExhaustedIterations means the round budget is spent.
	ExhaustedIterations
	// Canceled means the context ended the run.
	Canceled
)

// String returns the lowercase name of s.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Stagnated:
		return "stagnated"
	case ExhaustedIterations:
		return "exhausted_iterations"
	case Canceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// RoundStats summarizes one round.
type RoundStats struct {
	Round      int // 1-based
	Successes  int
	Failures   int // dead ends, timeouts included
	Timeouts   int
	Steps      int // summed over all ants
	RoundBest  int // shortest successful path this round, 0 if none
	BestLength int // best-ever length after the round, 0 if none yet
	Improved   bool
	Stagnation int
	FieldTotal float64
	Elapsed    time.Duration
}

// Result is what Run returns.
type Result struct {
	Status     Status
	Rounds     int
	Best       []maze.Pos
	BestLength int
	Seed       int64
	History    []RoundStats
}

// Found reports whether any ant ever reached the food.
func (r Result) Found() bool { return r.BestLength > 0 }
