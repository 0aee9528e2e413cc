package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/antcolony/maze"
)

// ShortestPath returns a minimum-length land path from src to dst, both
// inclusive, using breadth-first search over orthogonal neighbors.
//
// Behavior:
//  1. Validate that both cells are in bounds (ErrOutOfBounds).
//  2. Water endpoints, or no connecting land, yield ErrNoPath.
//  3. BFS from src records predecessors until dst is dequeued.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) ShortestPath(src, dst maze.Pos) ([]maze.Pos, error) {
	if !gg.InBounds(src.X, src.Y) || !gg.InBounds(dst.X, dst.Y) {
		return nil, fmt.Errorf("%w: %v or %v", ErrOutOfBounds, src, dst)
	}
	if !gg.IsLand(src.X, src.Y) || !gg.IsLand(dst.X, dst.Y) {
		return nil, ErrNoPath
	}

	prev := make([]int, len(gg.land))
	for i := range prev {
		prev[i] = -1
	}
	s, t := gg.index(src.X, src.Y), gg.index(dst.X, dst.Y)
	prev[s] = s

	queue := []int{s}
	found := s == t
	for qi := 0; qi < len(queue) && !found; qi++ {
		u := queue[qi]
		up := gg.Coordinate(u)
		for _, d := range neighbors {
			vx, vy := up.X+d[0], up.Y+d[1]
			if !gg.IsLand(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			if prev[v] != -1 {
				continue
			}
			prev[v] = u
			if v == t {
				found = true
				break
			}
			queue = append(queue, v)
		}
	}
	if !found {
		return nil, ErrNoPath
	}

	var rev []maze.Pos
	for at := t; ; at = prev[at] {
		rev = append(rev, gg.Coordinate(at))
		if at == s {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev, nil
}

// Reachable reports whether a land path connects a and b.
// Complexity: O(W·H·d).
func (gg *GridGraph) Reachable(a, b maze.Pos) bool {
	_, err := gg.ShortestPath(a, b)
	return err == nil
}

// OptimalLength returns the number of cells on a shortest nest→food route of
// g, nest and food inclusive: the best length an ant can achieve.
func OptimalLength(g *maze.Grid) (int, error) {
	path, err := FromMaze(g).ShortestPath(g.Nest(), g.Food())
	if err != nil {
		return 0, err
	}
	return len(path), nil
}
