package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/gridgraph"
	"github.com/katalvlaran/antcolony/maze"
)

// pocketMaze returns the 11×11 pillar maze with the cells (3,3) and (7,7)
// walled in on all four sides.
//
//	###########
//	#........N#
//	#.###.#.#.#
//	#.#X#.....#   X = (3,3), sealed
//	#.###.#.#.#
//	#.........#
//	#.#.#.###.#
//	#.....#X#.#   X = (7,7), sealed
//	#.#.#.###.#
//	#F........#
//	###########
func pocketMaze(t testing.TB) *maze.Grid {
	t.Helper()
	b, err := maze.NewBuilder(11, 11)
	require.NoError(t, err)
	b.Pillars()
	b.Set(maze.Pos{X: 9, Y: 1}, maze.Nest)
	b.Set(maze.Pos{X: 1, Y: 9}, maze.Food)
	for _, c := range []maze.Pos{{X: 3, Y: 3}, {X: 7, Y: 7}} {
		b.Set(c.Add(-1, 0), maze.Wall)
		b.Set(c.Add(1, 0), maze.Wall)
		b.Set(c.Add(0, -1), maze.Wall)
		b.Set(c.Add(0, 1), maze.Wall)
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

// TestConnectedComponents_Pockets finds the main region and two sealed cells.
//
// Complexity: O(W·H·4) time, O(W·H) memory.
func TestConnectedComponents_Pockets(t *testing.T) {
	gg := gridgraph.FromMaze(pocketMaze(t))

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 3)

	sizes := []int{len(comps[0]), len(comps[1]), len(comps[2])}
	sort.Ints(sizes)
	// 65 open cells minus 8 sealing walls, 2 of them cut off.
	assert.Equal(t, []int{1, 1, 55}, sizes)

	// ordered by lowest index: the main region owns (1,1)
	assert.Len(t, comps[0], 55)
	assert.Equal(t, []int{3*11 + 3}, comps[1])
	assert.Equal(t, []int{7*11 + 7}, comps[2])
}

// TestConnectedComponents_Simple: pillar mazes are a single region.
func TestConnectedComponents_Simple(t *testing.T) {
	for _, size := range [][2]int{{11, 11}, {21, 13}} {
		g, err := maze.Simple(size[0], size[1])
		require.NoError(t, err)
		gg := gridgraph.FromMaze(g)
		comps := gg.ConnectedComponents()
		require.Len(t, comps, 1, "size %v", size)
		assert.Len(t, comps[0], gg.LandCount())
	}
}

// TestComponentOf returns the region of a land cell and nil for water.
func TestComponentOf(t *testing.T) {
	g := layout(t, append([]string{
		"###########",
		"#N..#...F.#",
	}, walls(9, 11)...)...)
	gg := gridgraph.FromMaze(g)

	got := gg.ComponentOf(g.Nest())
	sort.Ints(got)
	assert.Equal(t, []int{12, 13, 14}, got)
	assert.Len(t, gg.ComponentOf(g.Food()), 5)
	assert.Nil(t, gg.ComponentOf(maze.Pos{X: 4, Y: 1}), "wall")
	assert.Nil(t, gg.ComponentOf(maze.Pos{X: 20, Y: 1}), "out of bounds")
}

// TestPockets counts the regions and cells the nest cannot reach.
func TestPockets(t *testing.T) {
	n, cells := gridgraph.Pockets(pocketMaze(t))
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, cells)

	g, err := maze.Simple(21, 21)
	require.NoError(t, err)
	n, cells = gridgraph.Pockets(g)
	assert.Zero(t, n)
	assert.Zero(t, cells)

	// the food side is a pocket when the corridor is cut
	split := layout(t, append([]string{
		"###########",
		"#N..#...F.#",
	}, walls(9, 11)...)...)
	n, cells = gridgraph.Pockets(split)
	assert.Equal(t, 1, n)
	assert.Equal(t, 5, cells)
}
