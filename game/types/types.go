package types

// Point is the pixel position of a grid cell's top-left corner.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Grid represents the drawing surface dimensions in pixels and the edge
// length of one cell.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// Columns returns the number of cells per row.
func (g Grid) Columns() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cells per column.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Cells returns the total number of cells on the grid.
func (g Grid) Cells() int {
	return g.Columns() * g.Rows()
}

// Contains reports whether p lies within [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cell returns the pixel position of the cell at column col, row row.
func (g Grid) Cell(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// Center returns the cell holding the midpoint of the surface.
func (g Grid) Center() Point {
	return Point{
		X: (g.Width / 2) / g.CellSize * g.CellSize,
		Y: (g.Height / 2) / g.CellSize * g.CellSize,
	}
}

type Color struct {
	R, G, B uint8
}

var (
	Background = Color{R: 255, G: 255, B: 255}
	SnakeColor = Color{R: 0, G: 0, B: 0}
	FoodColor  = Color{R: 255, G: 0, B: 0}
)
