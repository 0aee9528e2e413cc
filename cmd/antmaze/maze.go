package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antcolony/gridgraph"
	"github.com/katalvlaran/antcolony/maze"
	"github.com/katalvlaran/antcolony/mazegen"
)

func newMazeCmd() *cobra.Command {
	var (
		width, height int
		hard          bool
		seed          int64
		wallChance    float64
	)
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate a maze and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !hard {
				for _, name := range []string{"seed", "wall-chance"} {
					if cmd.Flags().Changed(name) {
						return fmt.Errorf("--%s only applies with --hard", name)
					}
				}
			}
			g, st, err := mazegen.Generate(cmd.Context(), width, height, hard,
				mazegen.WithSeed(seed), mazegen.WithWallChance(wallChance))
			if err != nil {
				return err
			}
			optimal, err := gridgraph.OptimalLength(g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, g.String())
			fmt.Fprintf(out, "nest %v food %v\n", g.Nest(), g.Food())
			fmt.Fprintf(out, "attempts: %d walls: %d optimal length: %d\n", st.Attempts, st.Walls, optimal)
			fmt.Fprintf(out, "pockets: %d (%d cells)\n", st.Pockets, st.PocketCells)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&width, "width", 75, "maze width (>= 11)")
	f.IntVar(&height, "height", 75, "maze height (>= 11)")
	f.BoolVar(&hard, "hard", false, "add random walls")
	f.Int64Var(&seed, "seed", 0, "generator seed, 0 for random")
	f.Float64Var(&wallChance, "wall-chance", mazegen.DefaultWallChance, "wall probability of pillar-adjacent cells")
	return cmd
}

// renderPath draws g with the cells of path marked '*'.
func renderPath(g *maze.Grid, path []maze.Pos) string {
	on := make(map[maze.Pos]bool, len(path))
	for _, p := range path {
		on[p] = true
	}
	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := maze.Pos{X: x, Y: y}
			k, _ := g.Kind(p)
			if on[p] && k == maze.Open {
				sb.WriteByte('*')
				continue
			}
			sb.WriteRune(k.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
