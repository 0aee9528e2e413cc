// Package mazegen builds the two maze layouts the colony runs on.
//
// What:
//
//   - Simple: the deterministic checkerboard-pillar maze (maze.Simple).
//   - Hard: the same pillar skeleton with random extra walls. Every cell with
//     exactly one odd coordinate sits between two pillars; each of those
//     becomes a wall with probability WallChance. The nest goes to the
//     bottom-left corridor cell and the food to the top-right one.
//
// Solvability:
//
//	A pure-heuristic scout ant (alpha=0, beta=ant.ScoutBeta) walks every
//	hard candidate on a fresh field. Its depth-first walk reaches the food
//	iff the food is connected to the nest, so a failed scout means the
//	candidate is discarded and a new one is drawn from scratch. Random walls
//	can still seal off open cells away from the route; Stats.Pockets and
//	Stats.PocketCells report them (gridgraph.Pockets).
//
// Randomness:
//
//	Generation draws from its own *rand.Rand (WithRand / WithSeed), never the
//	colony's streams, so a maze seed reproduces the same layout.
//
// Complexity:
//
//   - Simple: O(W×H).
//   - Hard: O(A×W×H) for A attempts; with WallChance 0.2 A is small.
//
// Errors:
//
//   - maze.ErrInvalidDimensions for sizes below maze.MinDimension.
//   - ErrWallChance for a chance outside [0,1).
//   - ErrAttemptsExhausted when WithMaxAttempts caps the retries.
//   - context errors between attempts.
package mazegen
