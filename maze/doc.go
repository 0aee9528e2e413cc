// Package maze holds the terrain shared by every ant of a colony: a static
// grid of cell kinds and a mutable pheromone field of the same size.
//
// What:
//
//   - Grid is an immutable width×height layout of Open, Wall, Nest and Food
//     cells. Every border cell is a Wall, and exactly one Nest and one Food exist.
//   - Field stores one non-negative pheromone intensity per cell. It is the
//     only mutable piece of the terrain: Evaporate and Deposit update it in bulk.
//   - View composes a Grid and a Field into a read-only handle. Ants only ever
//     receive a View, so the type system keeps them from writing to the field
//     while they walk in parallel.
//
// Construction:
//
//   - Simple builds the deterministic checkerboard-pillar maze.
//   - FromKinds builds a Grid from an explicit [y][x] layout.
//   - Builder is a reusable draft for generators that retry layouts.
//
// Complexity:
//
//   - Kind, Pheromone, InBounds: O(1).
//   - Evaporate, Total:          O(W×H).
//   - Deposit:                   O(len(path)).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ MinDimension-1.
//   - ErrInvalidLayout: border not walled, or nest/food count ≠ 1.
//   - ErrOutOfBounds: a position outside [0,W)×[0,H).
//   - ErrInvalidRate: evaporation rate outside [0,1] or negative floor.
package maze
