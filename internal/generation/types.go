package generation

import "gores.dev/internal/twmap"

// Point represents a 2D coordinate, X is the column and Y the row
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns a new point offset by dx, dy
func (p Point) Add(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Neighbors returns the 8 surrounding points, orthogonal and diagonal
func (p Point) Neighbors() [8]Point {
	return [8]Point{
		{p.X + 1, p.Y - 1},
		{p.X, p.Y - 1},
		{p.X - 1, p.Y - 1},
		{p.X - 1, p.Y},
		{p.X + 1, p.Y},
		{p.X + 1, p.Y + 1},
		{p.X, p.Y + 1},
		{p.X - 1, p.Y + 1},
	}
}

// Kind is the terrain category of a cell
type Kind uint8

const (
	KindEmpty Kind = iota
	KindHookable
	KindFreeze
	KindSpawn
	KindStart
	KindFinish
)

var kindNames = [...]string{
	KindEmpty:    "empty",
	KindHookable: "hookable",
	KindFreeze:   "freeze",
	KindSpawn:    "spawn",
	KindStart:    "start",
	KindFinish:   "finish",
}

// Kinds lists every kind in declaration order
var Kinds = []Kind{KindEmpty, KindHookable, KindFreeze, KindSpawn, KindStart, KindFinish}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Cell is one grid position: a terrain kind plus reserved modifier flags
type Cell struct {
	Kind  Kind
	Flags twmap.TileFlags
}

// Grid is a fixed-size 2D container of cells, addressed by (row, col)
type Grid struct {
	height, width int
	cells         []Cell
}

// NewGrid creates a new grid filled with a default cell
func NewGrid(height, width int, fill Cell) *Grid {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	cells := make([]Cell, height*width)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid{height: height, width: width, cells: cells}
}

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// InBounds checks if a position is within the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Get returns the cell at a position, the zero cell when out of range
func (g *Grid) Get(row, col int) Cell {
	if g.InBounds(row, col) {
		return g.cells[row*g.width+col]
	}
	return Cell{}
}

// Set sets a cell at a position. Out-of-range writes are ignored.
func (g *Grid) Set(row, col int, c Cell) {
	if g.InBounds(row, col) {
		g.cells[row*g.width+col] = c
	}
}

// SetKind changes only the kind of a cell, keeping its flags
func (g *Grid) SetKind(row, col int, k Kind) {
	if g.InBounds(row, col) {
		g.cells[row*g.width+col].Kind = k
	}
}

// KindAt is shorthand for Get(row, col).Kind
func (g *Grid) KindAt(row, col int) Kind {
	return g.Get(row, col).Kind
}

// Count returns how many cells have the given kind
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have the same shape and contents
func (g *Grid) Equal(other *Grid) bool {
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{height: g.height, width: g.width, cells: cells}
}
