// Package gridgraph treats a maze as an unweighted 4-connected graph,
// enabling connectivity checks and shortest-path search over its layout.
//
// What:
//
//   - GridGraph is the land/water mask of a *maze.Grid built by FromMaze
//     (walls are "water", everything else "land").
//   - Identifies connected components ("islands") of land cells, and the
//     pockets the nest cannot reach.
//   - Answers reachability and computes BFS shortest paths between two cells.
//
// Why:
//
//   - Maze generation: confirm a random layout connects nest and food, and
//     report the open cells it sealed off.
//   - Colony runs: the BFS length is the optimum an ant colony converges to,
//     so it doubles as a stop target and as a quality reference.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×4), Memory: O(W×H).
//   - Pockets:             O(W×H×4), Memory: O(W×H).
//   - ShortestPath:        O(W×H×4), Memory: O(W×H).
//   - Reachable:           O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrOutOfBounds: a queried cell lies outside the grid.
//   - ErrNoPath: no land path exists between two cells.
package gridgraph
