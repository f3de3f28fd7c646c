package model

// Cell holds the four wall flags of one grid position.
type Cell struct {
	Top, Right, Bottom, Left bool
}

// Maze is a decoded grid. Cells are row-major and may run past Width*Height
// when the last chunk carries padding.
type Maze struct {
	Width, Height  int
	StartX, StartY int
	EndX, EndY     int
	Cells          []Cell
}

// Player is a named marker at fractional grid coordinates.
type Player struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
	Name  string  `json:"name"`
}

// Ready reports whether the maze has a drawable grid.
func (m Maze) Ready() bool {
	return m.Width > 0 && m.Height > 0
}

// Meaningful is the number of leading cells that belong to the grid.
func (m Maze) Meaningful() int {
	if !m.Ready() {
		return 0
	}
	return m.Width * m.Height
}
