package maze_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/maze"
)

const tol = 1e-9

// cells returns every position of a w×h field.
func cells(w, h int) []maze.Pos {
	out := make([]maze.Pos, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out = append(out, maze.Pos{X: x, Y: y})
		}
	}
	return out
}

// TestEvaporate_FloorAndDecrease checks both evaporation properties: every
// value ends ≥ floor, and every value above floor strictly decreases.
func TestEvaporate_FloorAndDecrease(t *testing.T) {
	f, err := maze.NewField(11, 11, 0.5)
	require.NoError(t, err)
	// Build a varied field: a strong trail, and some cells already near floor.
	require.NoError(t, f.Deposit([]maze.Pos{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}, 30))
	require.NoError(t, f.Evaporate(0.99, 0.01)) // pushes untouched cells to 0.01

	before := make(map[maze.Pos]float64)
	for _, p := range cells(11, 11) {
		before[p], _ = f.Pheromone(p)
	}

	const rate, floor = 0.35, 0.01
	require.NoError(t, f.Evaporate(rate, floor))

	for _, p := range cells(11, 11) {
		v, err := f.Pheromone(p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, floor, "cell %v below floor", p)
		if before[p] > floor {
			assert.Less(t, v, before[p], "cell %v did not decrease", p)
		} else {
			assert.InDelta(t, floor, v, tol, "cell %v at floor should stay", p)
		}
	}
}

// TestEvaporate_Exact checks the multiply-then-clamp arithmetic.
func TestEvaporate_Exact(t *testing.T) {
	f, err := maze.NewField(11, 11, 2.0)
	require.NoError(t, err)
	require.NoError(t, f.Evaporate(0.25, 0.01))
	v, _ := f.Pheromone(maze.Pos{X: 4, Y: 4})
	assert.InDelta(t, 1.5, v, tol)

	require.NoError(t, f.Evaporate(1, 0.2))
	v, _ = f.Pheromone(maze.Pos{X: 4, Y: 4})
	assert.InDelta(t, 0.2, v, tol)
}

// TestEvaporate_InvalidParameters rejects out-of-range rates and floors.
func TestEvaporate_InvalidParameters(t *testing.T) {
	f, err := maze.NewField(11, 11, 1)
	require.NoError(t, err)
	for _, tc := range []struct{ rate, floor float64 }{
		{-0.1, 0}, {1.1, 0}, {math.NaN(), 0}, {0.5, -1},
	} {
		assert.ErrorIs(t, f.Evaporate(tc.rate, tc.floor), maze.ErrInvalidRate, "rate=%g floor=%g", tc.rate, tc.floor)
	}
	assert.InDelta(t, 121.0, f.Total(), tol, "rejected call must not mutate")
}

// TestDeposit_SumIncreasesByIntensity checks that depositing I over a path of
// distinct cells grows the field total by exactly I.
func TestDeposit_SumIncreasesByIntensity(t *testing.T) {
	f, err := maze.NewField(11, 11, 0.5)
	require.NoError(t, err)
	path := []maze.Pos{{X: 9, Y: 1}, {X: 9, Y: 2}, {X: 9, Y: 3}, {X: 8, Y: 3}, {X: 7, Y: 3}}

	for _, intensity := range []float64{1, 12.1, 1000} {
		before := f.Total()
		require.NoError(t, f.Deposit(path, intensity))
		assert.InDelta(t, before+intensity, f.Total(), 1e-6)
	}

	v, _ := f.Pheromone(maze.Pos{X: 8, Y: 3})
	assert.InDelta(t, 0.5+(1+12.1+1000)/5, v, 1e-9)
}

// TestDeposit_EmptyAndOutOfBounds covers the no-op and the rejected deposit.
func TestDeposit_EmptyAndOutOfBounds(t *testing.T) {
	f, err := maze.NewField(11, 11, 0.5)
	require.NoError(t, err)
	before := f.Total()

	require.NoError(t, f.Deposit(nil, 100))
	assert.InDelta(t, before, f.Total(), tol)

	err = f.Deposit([]maze.Pos{{X: 1, Y: 1}, {X: 11, Y: 1}}, 100)
	assert.ErrorIs(t, err, maze.ErrOutOfBounds)
	assert.InDelta(t, before, f.Total(), tol, "failed deposit must not mutate")
}

// TestDeposit_RepeatedCellsAccumulate documents that a cell listed twice
// receives two shares.
func TestDeposit_RepeatedCellsAccumulate(t *testing.T) {
	f, err := maze.NewField(11, 11, 0)
	require.NoError(t, err)
	p := maze.Pos{X: 3, Y: 3}
	require.NoError(t, f.Deposit([]maze.Pos{p, p, {X: 3, Y: 4}, {X: 3, Y: 5}}, 4))
	v, _ := f.Pheromone(p)
	assert.InDelta(t, 2.0, v, tol)
}

func TestField_Accessors(t *testing.T) {
	_, err := maze.NewField(0, 5, 1)
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	_, err = maze.NewField(5, 5, -1)
	assert.ErrorIs(t, err, maze.ErrInvalidRate)

	f, err := maze.NewField(12, 11, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 12, f.Width())
	assert.Equal(t, 11, f.Height())
	_, err = f.Pheromone(maze.Pos{X: 12, Y: 0})
	assert.ErrorIs(t, err, maze.ErrOutOfBounds)

	require.NoError(t, f.Deposit([]maze.Pos{{X: 0, Y: 0}}, 3))
	assert.InDelta(t, 3.5, f.Max(), tol)
	assert.InDelta(t, 0.5, f.Min(), tol)
}

// TestView_ReadOnly pairs a grid with a field and reads through the view.
func TestView_ReadOnly(t *testing.T) {
	g, err := maze.Simple(11, 11)
	require.NoError(t, err)
	f, err := maze.NewFieldFor(g, maze.DefaultInitialPheromone)
	require.NoError(t, err)

	v, err := maze.NewView(g, f)
	require.NoError(t, err)
	assert.True(t, v.Valid())
	assert.Equal(t, g.Nest(), v.Nest())
	assert.Equal(t, g.Food(), v.Food())
	assert.Equal(t, 11, v.Width())
	assert.False(t, v.Passable(maze.Pos{X: 0, Y: 0}))
	assert.True(t, v.Passable(g.Nest()))

	require.NoError(t, f.Deposit([]maze.Pos{g.Nest()}, 1))
	ph, err := v.Pheromone(g.Nest())
	require.NoError(t, err)
	assert.InDelta(t, 1.5, ph, tol, "view observes field writes made between rounds")

	small, _ := maze.NewField(12, 11, 0)
	_, err = maze.NewView(g, small)
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	_, err = maze.NewView(nil, f)
	assert.Error(t, err)
	assert.False(t, maze.View{}.Valid())
}
