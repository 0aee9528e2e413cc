package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/gridgraph"
	"github.com/katalvlaran/antcolony/maze"
)

// TestShortestPath_Line walks a straight corridor end to end.
func TestShortestPath_Line(t *testing.T) {
	g := layout(t, append([]string{
		"###########",
		"#N.......F#",
	}, walls(9, 11)...)...)
	gg := gridgraph.FromMaze(g)

	path, err := gg.ShortestPath(g.Nest(), g.Food())
	require.NoError(t, err)
	require.Len(t, path, 9)
	for i, p := range path {
		assert.Equal(t, maze.Pos{X: 1 + i, Y: 1}, p)
	}

	self, err := gg.ShortestPath(g.Nest(), g.Nest())
	require.NoError(t, err)
	assert.Equal(t, []maze.Pos{g.Nest()}, self)
}

// TestShortestPath_Detour forces a route around a wall.
//
//	###########
//	#N......###
//	#######.###
//	#F......###
func TestShortestPath_Detour(t *testing.T) {
	g := layout(t, append([]string{
		"###########",
		"#N......###",
		"#######.###",
		"#F......###",
	}, walls(7, 11)...)...)
	gg := gridgraph.FromMaze(g)

	path, err := gg.ShortestPath(g.Nest(), g.Food())
	require.NoError(t, err)
	assert.Len(t, path, 15)
	assert.Equal(t, g.Nest(), path[0])
	assert.Equal(t, g.Food(), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, maze.Manhattan(path[i-1], path[i]))
	}
}

// TestShortestPath_Errors covers disconnected, water and out-of-bounds cells.
func TestShortestPath_Errors(t *testing.T) {
	g := layout(t, append([]string{
		"###########",
		"#N..#...F.#",
	}, walls(9, 11)...)...)
	gg := gridgraph.FromMaze(g)

	_, err := gg.ShortestPath(g.Nest(), g.Food())
	assert.True(t, errors.Is(err, gridgraph.ErrNoPath))
	assert.False(t, gg.Reachable(g.Nest(), g.Food()))

	_, err = gg.ShortestPath(maze.Pos{X: 4, Y: 1}, g.Food())
	assert.ErrorIs(t, err, gridgraph.ErrNoPath)

	_, err = gg.ShortestPath(g.Nest(), maze.Pos{X: 11, Y: 1})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	_, err = gridgraph.OptimalLength(g)
	assert.ErrorIs(t, err, gridgraph.ErrNoPath)
}

// TestOptimalLength_Simple checks the shortest nest→food route of pillar
// mazes: every manhattan-monotone route is open, so the optimum is the
// manhattan distance plus one.
func TestOptimalLength_Simple(t *testing.T) {
	for _, size := range [][2]int{{11, 11}, {21, 13}, {75, 75}} {
		g, err := maze.Simple(size[0], size[1])
		require.NoError(t, err)
		n, err := gridgraph.OptimalLength(g)
		require.NoError(t, err)
		assert.Equal(t, maze.Manhattan(g.Nest(), g.Food())+1, n, "size %v", size)
	}
}
