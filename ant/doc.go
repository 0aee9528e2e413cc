// Package ant implements a single foraging agent of an ant colony walking a
// maze.View from the nest toward the food.
//
// What:
//
//   - Each Step picks one unvisited, non-wall axis neighbour with probability
//     proportional to pheromone^alpha × heuristic^beta, where the heuristic is
//     1/(manhattan distance to food + 1e-5).
//   - When no neighbour is available the ant pops its path stack and retreats
//     one cell (backtracking). The popped cell stays visited, so it is never
//     retried in the same round.
//   - An ant stuck on the nest with nothing left to explore fails. Reaching
//     food or failing is terminal; further Step calls are no-ops until Reset.
//
// Weights:
//
//   - alpha=1, beta=4 is the standard forager.
//   - alpha=0 ignores the trail entirely: a pure heuristic walker, used by
//     maze generation to prove a layout is solvable.
//
// Concurrency:
//
//   - An Ant is owned by one goroutine at a time. It reads the shared field
//     through maze.View only and owns its stack, visited set and *rand.Rand.
//
// Errors:
//
//   - ErrNilView: New was given a zero maze.View.
//   - ErrInvalidWeight: alpha or beta is negative or not finite.
package ant
