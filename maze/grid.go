package maze

import (
	"fmt"
	"strings"
)

// Grid is an immutable width×height layout of cell kinds.
// Cells are stored row-major: index = y*Width + x.
type Grid struct {
	width, height int
	cells         []CellKind
	nest, food    Pos
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Nest returns the nest position.
func (g *Grid) Nest() Pos { return g.nest }

// Food returns the food position.
func (g *Grid) Food() Pos { return g.food }

// InBounds reports whether p lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Kind returns the kind of the cell at p, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) Kind(p Pos) (CellKind, error) {
	if !g.InBounds(p) {
		return Wall, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	return g.cells[g.index(p)], nil
}

// Passable reports whether p is inside the grid and not a Wall.
func (g *Grid) Passable(p Pos) bool {
	return g.InBounds(p) && g.cells[g.index(p)] != Wall
}

// Index maps p to its row-major index. p must be in bounds.
func (g *Grid) Index(p Pos) int {
	return g.index(p)
}

// Coordinate converts a row-major index back to a position.
func (g *Grid) Coordinate(idx int) Pos {
	return Pos{X: idx % g.width, Y: idx / g.width}
}

// Count returns how many cells have kind k.
func (g *Grid) Count(k CellKind) int {
	n := 0
	for _, c := range g.cells {
		if c == k {
			n++
		}
	}
	return n
}

// String renders the grid one row per line: '#' wall, '.' open, 'N' nest, 'F' food.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cells[y*g.width+x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) index(p Pos) int {
	return p.Y*g.width + p.X
}

// isPillar reports whether (x,y) belongs to the pillar skeleton shared by the
// simple and hard layouts: even-even coordinates and the whole border.
func isPillar(x, y, w, h int) bool {
	return (x%2 == 0 && y%2 == 0) || x == 0 || y == 0 || x == w-1 || y == h-1
}

// Simple builds the deterministic checkerboard-pillar maze: walls at every
// even-even coordinate and on the border, food at (1,h-2) and nest at (w-2,1).
// Returns ErrInvalidDimensions if w or h is not greater than 10.
// Complexity: O(W×H).
func Simple(w, h int) (*Grid, error) {
	b, err := NewBuilder(w, h)
	if err != nil {
		return nil, err
	}
	b.Pillars()
	b.Set(Pos{X: 1, Y: h - 2}, Food)
	b.Set(Pos{X: w - 2, Y: 1}, Nest)

	return b.Build()
}

// FromKinds builds a Grid from an explicit layout indexed kinds[y][x].
// The input is deep-copied. All Grid invariants are checked.
// Complexity: O(W×H).
func FromKinds(kinds [][]CellKind) (*Grid, error) {
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidDimensions)
	}
	h, w := len(kinds), len(kinds[0])
	b, err := NewBuilder(w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range kinds {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLayout, y, len(row), w)
		}
		for x, k := range row {
			b.Set(Pos{X: x, Y: y}, k)
		}
	}
	return b.Build()
}

// Builder is a mutable draft of a Grid. Generators reuse one Builder across
// attempts: Reset clears it, Set and Pillars shape it, Build validates and
// snapshots it into an immutable Grid.
type Builder struct {
	width, height int
	cells         []CellKind
}

// NewBuilder returns an all-open draft of size w×h.
func NewBuilder(w, h int) (*Builder, error) {
	if w < MinDimension || h < MinDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, w, h)
	}
	return &Builder{width: w, height: h, cells: make([]CellKind, w*h)}, nil
}

// Width returns the draft width.
func (b *Builder) Width() int { return b.width }

// Height returns the draft height.
func (b *Builder) Height() int { return b.height }

// Reset turns every cell back to Open.
func (b *Builder) Reset() {
	for i := range b.cells {
		b.cells[i] = Open
	}
}

// Pillars walls the border and every even-even coordinate.
func (b *Builder) Pillars() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if isPillar(x, y, b.width, b.height) {
				b.cells[y*b.width+x] = Wall
			}
		}
	}
}

// Set assigns kind k to p. Positions outside the draft are ignored.
func (b *Builder) Set(p Pos, k CellKind) {
	if p.X < 0 || p.X >= b.width || p.Y < 0 || p.Y >= b.height {
		return
	}
	b.cells[p.Y*b.width+p.X] = k
}

// Kind returns the current kind at p; out-of-range positions read as Wall.
func (b *Builder) Kind(p Pos) CellKind {
	if p.X < 0 || p.X >= b.width || p.Y < 0 || p.Y >= b.height {
		return Wall
	}
	return b.cells[p.Y*b.width+p.X]
}

// Build validates the draft and returns an immutable copy of it.
//
// Invariants checked:
//   - every border cell is Wall;
//   - exactly one Nest and exactly one Food.
func (b *Builder) Build() (*Grid, error) {
	g := &Grid{
		width:  b.width,
		height: b.height,
		cells:  make([]CellKind, len(b.cells)),
	}
	copy(g.cells, b.cells)

	nests, foods := 0, 0
	for i, k := range g.cells {
		p := g.Coordinate(i)
		onBorder := p.X == 0 || p.Y == 0 || p.X == g.width-1 || p.Y == g.height-1
		if onBorder && k != Wall {
			return nil, fmt.Errorf("%w: border cell %v is %v", ErrInvalidLayout, p, k)
		}
		switch k {
		case Nest:
			nests++
			g.nest = p
		case Food:
			foods++
			g.food = p
		case Open, Wall:
		default:
			return nil, fmt.Errorf("%w: unknown kind at %v", ErrInvalidLayout, p)
		}
	}
	if nests != 1 || foods != 1 {
		return nil, fmt.Errorf("%w: want one nest and one food, got %d and %d", ErrInvalidLayout, nests, foods)
	}

	return g, nil
}
