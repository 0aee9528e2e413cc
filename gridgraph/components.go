package gridgraph

import (
	"github.com/katalvlaran/antcolony/maze"
)

// ConnectedComponents returns every group of mutually reachable land cells,
// each as a list of row-major indices in BFS discovery order. Components are
// ordered by their lowest index.
// Complexity: O(W×H×4), Memory: O(W×H).
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, len(gg.land))
	var comps [][]int

	for i0, isLand := range gg.land {
		if !isLand || seen[i0] {
			continue
		}
		seen[i0] = true
		comps = append(comps, gg.flood(i0, seen))
	}
	return comps
}

// flood collects the component of start, marking it in seen.
func (gg *GridGraph) flood(start int, seen []bool) []int {
	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		u := gg.Coordinate(queue[qi])
		for _, d := range neighbors {
			vx, vy := u.X+d[0], u.Y+d[1]
			if !gg.IsLand(vx, vy) {
				continue
			}
			vi := gg.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}

// ComponentOf returns the component containing p, or nil when p is water or
// outside the grid.
func (gg *GridGraph) ComponentOf(p maze.Pos) []int {
	if !gg.IsLand(p.X, p.Y) {
		return nil
	}
	seen := make([]bool, len(gg.land))
	i0 := gg.index(p.X, p.Y)
	seen[i0] = true
	return gg.flood(i0, seen)
}

// Pockets counts the open regions of g that the nest cannot reach, and the
// cells inside them. Ants never enter a pocket, so its pheromone only ever
// evaporates down to the floor.
// Complexity: O(W×H×4).
func Pockets(g *maze.Grid) (count, cells int) {
	gg := FromMaze(g)
	comps := gg.ConnectedComponents()
	home := gg.ComponentOf(g.Nest())
	return len(comps) - 1, gg.LandCount() - len(home)
}
