package ant_test

import (
	"fmt"

	"github.com/katalvlaran/antcolony/ant"
	"github.com/katalvlaran/antcolony/maze"
)

// ExampleWalk sends a heuristic scout (alpha=0) through the smallest pillar
// maze. No route can be shorter than the manhattan distance between nest
// and food plus one cell.
func ExampleWalk() {
	g, _ := maze.Simple(11, 11)
	f, _ := maze.NewFieldFor(g, maze.DefaultInitialPheromone)
	v, _ := maze.NewView(g, f)

	scout, _ := ant.New(v, ant.WithWeights(0, ant.ScoutBeta), ant.WithSeed(1))
	ant.Walk(scout, 0)

	path := scout.Path()
	fmt.Println("reached food:", scout.ReachedFood())
	fmt.Println("from", path[0], "to", path[len(path)-1])
	fmt.Println("at least manhattan+1:", len(path) >= maze.Manhattan(g.Nest(), g.Food())+1)

	// Output:
	// reached food: true
	// from (9,1) to (1,9)
	// at least manhattan+1: true
}
