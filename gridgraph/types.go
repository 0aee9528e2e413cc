// Package gridgraph defines core types and sentinel errors
// for the gridgraph package of github.com/katalvlaran/antcolony.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrOutOfBounds indicates a queried cell lies outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrNoPath indicates no land path exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)

// GridGraph is an immutable land/water mask of a maze. Passable cells are
// land, walls are water, and cells connect to their 4 orthogonal neighbors,
// the moves an ant can make. Cells are addressed row-major: index = y*Width + x.
type GridGraph struct {
	Width, Height int

	land []bool
}
