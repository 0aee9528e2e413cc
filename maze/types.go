package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid and field operations.
var (
	// ErrInvalidDimensions indicates a width or height not greater than 10.
	ErrInvalidDimensions = errors.New("maze: width and height must be greater than 10")
	// ErrInvalidLayout indicates a layout that breaks a grid invariant.
	ErrInvalidLayout = errors.New("maze: invalid layout")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrInvalidRate indicates an evaporation rate outside [0,1] or a negative floor.
	ErrInvalidRate = errors.New("maze: invalid evaporation parameters")
)

// MinDimension is the smallest accepted width and height.
const MinDimension = 11

// DefaultInitialPheromone is the intensity every cell starts with.
const DefaultInitialPheromone = 0.5

// CellKind classifies a grid cell.
type CellKind uint8

const (
	// Open is a walkable corridor cell.
	Open CellKind = iota
	// Wall blocks movement.
	Wall
	// Nest is the walkable cell every ant starts from.
	Nest
	// Food is the walkable goal cell.
	Food
)

// String returns a short name of the kind.
func (k CellKind) String() string {
	switch k {
	case Open:
		return "open"
	case Wall:
		return "wall"
	case Nest:
		return "nest"
	case Food:
		return "food"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// Rune returns the character used by Grid.String.
func (k CellKind) Rune() rune {
	switch k {
	case Wall:
		return '#'
	case Nest:
		return 'N'
	case Food:
		return 'F'
	default:
		return '.'
	}
}

// Walkable reports whether an ant may stand on a cell of this kind.
func (k CellKind) Walkable() bool {
	return k != Wall
}

// Pos is a cell coordinate. X grows to the right, Y grows downward.
type Pos struct {
	X, Y int
}

// String formats the position as "(x,y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p shifted by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Pos) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
