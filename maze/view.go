package maze

import "fmt"

// View is a read-only handle over a Grid and its Field. It carries no
// mutating methods; ants receive a View so that the parallel walking phase
// cannot write to the field.
//
// A View is a small value; copy it freely.
type View struct {
	grid  *Grid
	field *Field
}

// NewView pairs g and f. They must have the same dimensions.
func NewView(g *Grid, f *Field) (View, error) {
	if g == nil || f == nil {
		return View{}, fmt.Errorf("%w: nil grid or field", ErrInvalidLayout)
	}
	if g.width != f.width || g.height != f.height {
		return View{}, fmt.Errorf("%w: grid %dx%d, field %dx%d",
			ErrInvalidDimensions, g.width, g.height, f.width, f.height)
	}
	return View{grid: g, field: f}, nil
}

// Valid reports whether the view was built by NewView.
func (v View) Valid() bool { return v.grid != nil && v.field != nil }

// Grid returns the underlying immutable grid.
func (v View) Grid() *Grid { return v.grid }

// Width returns the number of columns.
func (v View) Width() int { return v.grid.width }

// Height returns the number of rows.
func (v View) Height() int { return v.grid.height }

// Nest returns the nest position.
func (v View) Nest() Pos { return v.grid.nest }

// Food returns the food position.
func (v View) Food() Pos { return v.grid.food }

// InBounds reports whether p lies inside the grid.
func (v View) InBounds(p Pos) bool { return v.grid.InBounds(p) }

// Passable reports whether p is inside the grid and not a Wall.
func (v View) Passable(p Pos) bool { return v.grid.Passable(p) }

// Kind returns the kind at p, or ErrOutOfBounds.
func (v View) Kind(p Pos) (CellKind, error) { return v.grid.Kind(p) }

// Pheromone returns the intensity at p, or ErrOutOfBounds.
func (v View) Pheromone(p Pos) (float64, error) { return v.field.Pheromone(p) }

// Total returns the sum of all field intensities.
func (v View) Total() float64 { return v.field.Total() }
