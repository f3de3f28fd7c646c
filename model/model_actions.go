package model

// Direction indexes a cell side.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Delta is the grid step taken when crossing the side.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return -1, 0
	}
}

// Opposite returns the matching side of the neighbouring cell.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Directions lists all sides in bit order.
var Directions = [4]Direction{Up, Right, Down, Left}

// NewMaze returns a width x height maze with every wall closed. A
// non-positive size gets no cells.
func NewMaze(width, height int) Maze {
	n := 0
	if width > 0 && height > 0 {
		n = width * height
	}
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = Cell{Top: true, Right: true, Bottom: true, Left: true}
	}
	return Maze{
		Width:  width,
		Height: height,
		EndX:   width - 1,
		EndY:   height - 1,
		Cells:  cells,
	}
}

// Contains reports whether (x, y) lies on the grid.
func (m Maze) Contains(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Index returns the row-major cell index of (x, y).
func (m Maze) Index(x, y int) int {
	return y*m.Width + x
}

// Wall reports whether the side d of (x, y) is closed. Positions without
// cell data are treated as fully walled.
func (m Maze) Wall(x, y int, d Direction) bool {
	i := m.Index(x, y)
	if !m.Contains(x, y) || i >= len(m.Cells) {
		return true
	}
	return m.Cells[i].side(d)
}

// SetWall sets side d of (x, y) and the facing side of its neighbour.
func (m Maze) SetWall(x, y int, d Direction, wall bool) {
	if !m.Contains(x, y) {
		return
	}
	m.Cells[m.Index(x, y)].setSide(d, wall)
	dx, dy := d.Delta()
	nx, ny := x+dx, y+dy
	if m.Contains(nx, ny) {
		m.Cells[m.Index(nx, ny)].setSide(d.Opposite(), wall)
	}
}

func (c Cell) side(d Direction) bool {
	switch d {
	case Up:
		return c.Top
	case Right:
		return c.Right
	case Down:
		return c.Bottom
	default:
		return c.Left
	}
}

func (c *Cell) setSide(d Direction, wall bool) {
	switch d {
	case Up:
		c.Top = wall
	case Right:
		c.Right = wall
	case Down:
		c.Bottom = wall
	default:
		c.Left = wall
	}
}
