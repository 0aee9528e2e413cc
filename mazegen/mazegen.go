package mazegen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/antcolony/ant"
	"github.com/katalvlaran/antcolony/gridgraph"
	"github.com/katalvlaran/antcolony/maze"
)

// Stats describes how a maze was produced.
type Stats struct {
	Attempts   int   // candidates drawn, the accepted one included
	Walls      int   // random walls in the accepted layout
	ScoutSteps int   // steps the scout needed on the accepted layout
	Seed       int64 // generator seed, 0 when the caller supplied WithRand

	// Pockets is the number of open regions the nest cannot reach, and
	// PocketCells the open cells inside them.
	Pockets     int
	PocketCells int
}

// Generate returns a hard maze when hard is set, the simple one otherwise.
// Options are validated in both modes even though the simple layout draws no
// random numbers.
func Generate(ctx context.Context, w, h int, hard bool, opts ...Option) (*maze.Grid, Stats, error) {
	if hard {
		return Hard(ctx, w, h, opts...)
	}
	if _, err := resolve(opts); err != nil {
		return nil, Stats{}, err
	}
	g, err := maze.Simple(w, h)
	if err != nil {
		return nil, Stats{}, err
	}
	st := Stats{Attempts: 1}
	st.Pockets, st.PocketCells = gridgraph.Pockets(g)
	return g, st, nil
}

// Hard draws random-wall layouts until a scout ant crosses one from nest to
// food. Nest is (1,h-2), food is (w-2,1).
func Hard(ctx context.Context, w, h int, opts ...Option) (*maze.Grid, Stats, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, Stats{}, err
	}
	b, err := maze.NewBuilder(w, h)
	if err != nil {
		return nil, Stats{}, err
	}
	field, err := maze.NewField(w, h, maze.DefaultInitialPheromone)
	if err != nil {
		return nil, Stats{}, err
	}

	st := Stats{Seed: o.Seed}
	for {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		if o.MaxAttempts > 0 && st.Attempts >= o.MaxAttempts {
			return nil, st, fmt.Errorf("%w: %d attempts on %dx%d", ErrAttemptsExhausted, st.Attempts, w, h)
		}
		st.Attempts++

		walls := drawLayout(b, o.Rand, o.WallChance)
		g, err := b.Build()
		if err != nil {
			return nil, st, err
		}
		steps, ok, err := scout(g, field, o.Rand)
		if err != nil {
			return nil, st, err
		}
		if ok {
			st.Walls = walls
			st.ScoutSteps = steps
			st.Pockets, st.PocketCells = gridgraph.Pockets(g)
			o.Logger.Debug("hard maze accepted",
				"attempt", st.Attempts, "walls", walls, "scout_steps", steps,
				"pockets", st.Pockets, "pocket_cells", st.PocketCells)
			return g, st, nil
		}
		o.Logger.Debug("hard maze rejected", "attempt", st.Attempts, "walls", walls)
	}
}

// drawLayout resets b to a fresh hard candidate and returns the number of
// random walls placed.
func drawLayout(b *maze.Builder, rng *rand.Rand, chance float64) int {
	w, h := b.Width(), b.Height()
	nest, food := maze.Pos{X: 1, Y: h - 2}, maze.Pos{X: w - 2, Y: 1}
	b.Reset()
	b.Pillars()

	walls := 0
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			p := maze.Pos{X: x, Y: y}
			if x%2 == y%2 || p == nest || p == food {
				continue
			}
			if rng.Float64() < chance {
				b.Set(p, maze.Wall)
				walls++
			}
		}
	}
	b.Set(nest, maze.Nest)
	b.Set(food, maze.Food)
	return walls
}

// scout walks a pure-heuristic ant over g. The field is only read.
func scout(g *maze.Grid, field *maze.Field, rng *rand.Rand) (steps int, ok bool, err error) {
	v, err := maze.NewView(g, field)
	if err != nil {
		return 0, false, err
	}
	a, err := ant.New(v, ant.WithWeights(0, ant.ScoutBeta), ant.WithRand(ant.NewRand(rng.Int63())))
	if err != nil {
		return 0, false, err
	}
	steps, _ = ant.Walk(a, 0)
	return steps, a.ReachedFood(), nil
}
