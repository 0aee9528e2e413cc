package gridgraph

import (
	"github.com/katalvlaran/antcolony/maze"
)

// neighbors lists the 4 orthogonal offsets in N, E, S, W order.
var neighbors = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// FromMaze builds the land mask of g: walls become water and every other
// kind (open, nest, food) becomes land.
// Complexity: O(W×H).
func FromMaze(g *maze.Grid) *GridGraph {
	gg := &GridGraph{
		Width:  g.Width(),
		Height: g.Height(),
		land:   make([]bool, g.Width()*g.Height()),
	}
	for i := range gg.land {
		gg.land[i] = g.Passable(gg.Coordinate(i))
	}
	return gg
}

// InBounds reports whether (x,y) lies inside the grid.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is inside the grid and passable.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.land[gg.index(x, y)]
}

// LandCount returns the number of passable cells.
func (gg *GridGraph) LandCount() int {
	n := 0
	for _, l := range gg.land {
		if l {
			n++
		}
	}
	return n
}

func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to a position.
func (gg *GridGraph) Coordinate(idx int) maze.Pos {
	return maze.Pos{X: idx % gg.Width, Y: idx / gg.Width}
}
