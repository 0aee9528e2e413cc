package maze

import (
	"fmt"
	"math"
)

// Field holds one pheromone intensity per grid cell, row-major.
// It is not safe for concurrent mutation; the colony writes to it only
// between rounds, while no ant is walking.
type Field struct {
	width, height int
	values        []float64
}

// NewField returns a w×h field with every cell set to initial.
// Returns ErrInvalidDimensions for non-positive sizes and ErrInvalidRate
// for a negative or non-finite initial value.
func NewField(w, h int, initial float64) (*Field, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: field %dx%d", ErrInvalidDimensions, w, h)
	}
	if initial < 0 || math.IsNaN(initial) || math.IsInf(initial, 0) {
		return nil, fmt.Errorf("%w: initial intensity %g", ErrInvalidRate, initial)
	}
	f := &Field{width: w, height: h, values: make([]float64, w*h)}
	for i := range f.values {
		f.values[i] = initial
	}
	return f, nil
}

// NewFieldFor returns a field sized to g.
func NewFieldFor(g *Grid, initial float64) (*Field, error) {
	return NewField(g.width, g.height, initial)
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// Pheromone returns the intensity at p, or ErrOutOfBounds.
// Complexity: O(1).
func (f *Field) Pheromone(p Pos) (float64, error) {
	if p.X < 0 || p.X >= f.width || p.Y < 0 || p.Y >= f.height {
		return 0, fmt.Errorf("%w: %v in %dx%d field", ErrOutOfBounds, p, f.width, f.height)
	}
	return f.values[p.Y*f.width+p.X], nil
}

// Evaporate multiplies every intensity by (1-rate) and clamps it to floor
// from below. Cells are independent, so the update order does not matter.
// Complexity: O(W×H).
func (f *Field) Evaporate(rate, floor float64) error {
	if rate < 0 || rate > 1 || math.IsNaN(rate) {
		return fmt.Errorf("%w: rate %g", ErrInvalidRate, rate)
	}
	if floor < 0 || math.IsNaN(floor) {
		return fmt.Errorf("%w: floor %g", ErrInvalidRate, floor)
	}
	keep := 1 - rate
	for i, v := range f.values {
		v *= keep
		if v < floor {
			v = floor
		}
		f.values[i] = v
	}
	return nil
}

// Deposit spreads total evenly over the cells of path, adding
// total/len(path) to each. An empty path is a no-op. Every position is
// validated before the field is touched, so an ErrOutOfBounds leaves the
// field unchanged.
// Complexity: O(len(path)).
func (f *Field) Deposit(path []Pos, total float64) error {
	if len(path) == 0 {
		return nil
	}
	for _, p := range path {
		if p.X < 0 || p.X >= f.width || p.Y < 0 || p.Y >= f.height {
			return fmt.Errorf("%w: deposit at %v", ErrOutOfBounds, p)
		}
	}
	share := total / float64(len(path))
	for _, p := range path {
		f.values[p.Y*f.width+p.X] += share
	}
	return nil
}

// Total returns the sum of all intensities.
func (f *Field) Total() float64 {
	var sum float64
	for _, v := range f.values {
		sum += v
	}
	return sum
}

// Max returns the largest intensity in the field.
func (f *Field) Max() float64 {
	m := 0.0
	for _, v := range f.values {
		if v > m {
			m = v
		}
	}
	return m
}

// Min returns the smallest intensity in the field.
func (f *Field) Min() float64 {
	m := math.Inf(1)
	for _, v := range f.values {
		if v < m {
			m = v
		}
	}
	return m
}
