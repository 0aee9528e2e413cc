// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/antcolony/gridgraph"
	"github.com/katalvlaran/antcolony/maze"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Pockets
////////////////////////////////////////////////////////////////////////////////

// ExamplePockets seals one corridor cell of the smallest pillar maze and
// reports it as a region the colony can never visit.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExamplePockets() {
	b, _ := maze.NewBuilder(11, 11)
	b.Pillars()
	b.Set(maze.Pos{X: 9, Y: 1}, maze.Nest)
	b.Set(maze.Pos{X: 1, Y: 9}, maze.Food)
	// (5,5) already has pillars on its diagonals; close its four sides.
	for _, p := range []maze.Pos{{X: 4, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 6}} {
		b.Set(p, maze.Wall)
	}
	g, _ := b.Build()

	n, cells := gridgraph.Pockets(g)
	fmt.Println("pockets:", n, "cells:", cells)

	// Output:
	// pockets: 1 cells: 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: OptimalLength
////////////////////////////////////////////////////////////////////////////////

// ExampleOptimalLength computes the best route an ant colony can find in the
// smallest pillar maze.
func ExampleOptimalLength() {
	g, _ := maze.Simple(11, 11)
	n, err := gridgraph.OptimalLength(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("optimal length:", n)

	// Output:
	// optimal length: 17
}
