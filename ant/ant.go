package ant

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/antcolony/maze"
)

// Ant walks a maze from the nest toward the food, one cell per Step.
//
// State machine: walking → reachedFood | failed. Both outcomes are terminal
// and mutually exclusive; Reset returns the ant to walking on the nest.
type Ant struct {
	view        maze.View
	alpha, beta float64

	pos     maze.Pos
	stack   []maze.Pos // walked route nest → pos; popped on backtrack
	visited []bool     // row-major, reset every round

	reachedFood bool
	failed      bool
	steps       int

	rng *rand.Rand

	// scratch buffers reused across steps
	moves []maze.Pos
	probs []float64
}

// New returns an ant placed on the nest of v.
// Returns ErrNilView for a zero view and ErrInvalidWeight for bad weights.
func New(v maze.View, opts ...Option) (*Ant, error) {
	if !v.Valid() {
		return nil, ErrNilView
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !validWeight(o.alpha) || !validWeight(o.beta) {
		return nil, fmt.Errorf("%w: alpha=%g beta=%g", ErrInvalidWeight, o.alpha, o.beta)
	}
	if o.rng == nil {
		o.rng = NewRand(RandomSeed())
	}

	a := &Ant{
		view:    v,
		alpha:   o.alpha,
		beta:    o.beta,
		visited: make([]bool, v.Width()*v.Height()),
		stack:   make([]maze.Pos, 0, v.Width()+v.Height()),
		rng:     o.rng,
		moves:   make([]maze.Pos, 0, 4),
		probs:   make([]float64, 0, 4),
	}
	a.Reset()

	return a, nil
}

func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

// Reset clears the terminal flags, the path stack and the visited set, then
// puts the ant back on the nest with the nest as the only stack entry.
// Buffers are reused; Reset does not allocate.
func (a *Ant) Reset() {
	a.reachedFood = false
	a.failed = false
	a.steps = 0
	for i := range a.visited {
		a.visited[i] = false
	}
	nest := a.view.Nest()
	a.pos = nest
	a.stack = append(a.stack[:0], nest)
	a.visited[a.index(nest)] = true
}

// Step advances the ant by one move or one backtrack. It is a no-op once
// the ant has reached food or failed.
func (a *Ant) Step() {
	if a.reachedFood || a.failed {
		return
	}
	a.steps++

	moves := a.validMoves()
	if len(moves) == 0 {
		if len(a.stack) < 2 {
			// Stuck on the nest: nothing left to explore.
			a.failed = true
			return
		}
		a.stack = a.stack[:len(a.stack)-1]
		a.pos = a.stack[len(a.stack)-1]
		return
	}

	a.probs = Transition(a.view, moves, a.alpha, a.beta, a.probs[:0])
	next := moves[Sample(a.probs, a.rng)]

	a.pos = next
	a.stack = append(a.stack, next)
	a.visited[a.index(next)] = true
	if next == a.view.Food() {
		a.reachedFood = true
	}
}

// ForceFail marks the ant as failed. Used as a step-count watchdog by the
// caller. An ant that already reached food keeps its success.
func (a *Ant) ForceFail() {
	if a.reachedFood {
		return
	}
	a.failed = true
}

// validMoves fills a.moves with the in-bounds, non-wall, unvisited axis
// neighbours of the current position, in the order left, right, up, down.
func (a *Ant) validMoves() []maze.Pos {
	a.moves = a.moves[:0]
	for _, d := range neighborOffsets {
		p := a.pos.Add(d[0], d[1])
		if !a.view.Passable(p) || a.visited[a.index(p)] {
			continue
		}
		a.moves = append(a.moves, p)
	}
	return a.moves
}

var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func (a *Ant) index(p maze.Pos) int {
	return p.Y*a.view.Width() + p.X
}

// ReachedFood reports whether the ant stands on the food.
func (a *Ant) ReachedFood() bool { return a.reachedFood }

// Failed reports whether the ant gave up or was force-failed.
func (a *Ant) Failed() bool { return a.failed }

// Done reports whether the ant is in a terminal state.
func (a *Ant) Done() bool { return a.reachedFood || a.failed }

// Position returns the current cell.
func (a *Ant) Position() maze.Pos { return a.pos }

// Steps returns how many non-terminal Step calls ran since Reset.
func (a *Ant) Steps() int { return a.steps }

// Weights returns the ant's alpha and beta.
func (a *Ant) Weights() (alpha, beta float64) { return a.alpha, a.beta }

// PathLen returns the number of cells on the stack, nest included.
func (a *Ant) PathLen() int { return len(a.stack) }

// Path returns a copy of the walked route from the nest to the current cell.
// After ReachedFood it is the solution path, nest and food inclusive.
func (a *Ant) Path() []maze.Pos {
	out := make([]maze.Pos, len(a.stack))
	copy(out, a.stack)
	return out
}

// Visited reports whether p was entered by the ant this round.
// Out-of-bounds positions report false.
func (a *Ant) Visited(p maze.Pos) bool {
	if !a.view.InBounds(p) {
		return false
	}
	return a.visited[a.index(p)]
}

// Walk steps a until it reaches food or fails. If maxSteps > 0 and the ant is
// still walking after maxSteps steps, it is force-failed.
// Returns the number of steps taken and whether the watchdog fired.
func Walk(a *Ant, maxSteps int) (steps int, timedOut bool) {
	for !a.Done() {
		a.Step()
		steps++
		if maxSteps > 0 && steps >= maxSteps && !a.Done() {
			a.ForceFail()
			return steps, true
		}
	}
	return steps, false
}
