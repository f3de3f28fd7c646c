package render

import (
	"image/color"
	"math"
)

const labelGap = 5

// Options tune painting.
type Options struct {
	Palette   Palette
	WallWidth float64
}

var DefaultOptions = Options{
	Palette:   DefaultPalette,
	WallWidth: 1,
}

// Layout is the cell geometry of one frame.
type Layout struct {
	Ready      bool
	CellWidth  float64
	CellHeight float64
	// Width and Height span the painted maze area.
	Width  float64
	Height float64
}

// Cell returns the top left corner of grid position (x, y).
func (l Layout) Cell(x, y float64) (float64, float64) {
	return x * l.CellWidth, y * l.CellHeight
}

// ComputeLayout fits the maze grid into a backing store of the given size.
// Cells are sized in whole device pixels.
func ComputeLayout(width, height int, mazeWidth, mazeHeight int) Layout {
	if mazeWidth <= 0 || mazeHeight <= 0 {
		return Layout{}
	}
	cw := math.Floor(float64(width) / float64(mazeWidth))
	ch := math.Floor(float64(height) / float64(mazeHeight))
	return Layout{
		Ready:      true,
		CellWidth:  cw,
		CellHeight: ch,
		Width:      cw * float64(mazeWidth),
		Height:     ch * float64(mazeHeight),
	}
}

// Paint draws the scene in layers: background, start and end highlights,
// player markers, walls, then name labels. A maze without a grid paints
// nothing.
func Paint(s Surface, scene *Scene, opts Options) Layout {
	m := scene.Maze
	w, h := s.Resolution()
	l := ComputeLayout(w, h, m.Width, m.Height)
	if !l.Ready {
		return l
	}
	p := opts.Palette

	s.Clear(0, 0, l.Width, l.Height)
	s.FillRect(0, 0, l.Width, l.Height, p.Background)

	x, y := l.Cell(float64(m.StartX), float64(m.StartY))
	s.FillRect(x, y, l.CellWidth, l.CellHeight, p.Start)
	x, y = l.Cell(float64(m.EndX), float64(m.EndY))
	s.FillRect(x, y, l.CellWidth, l.CellHeight, p.End)

	// an unreadable player colour keeps the previous fill
	var pen color.Color = p.End
	for _, pl := range scene.Players {
		if c, ok := ParseColor(pl.Color); ok {
			pen = c
		}
		x, y := l.Cell(pl.X, pl.Y)
		s.FillCircle(x+l.CellWidth/2, y+l.CellHeight/2, l.CellWidth/2, pen)
	}

	paintWalls(s, l, scene, opts)

	for _, pl := range scene.Players {
		x, y := l.Cell(pl.X+1, pl.Y)
		s.FillText(pl.Name, x+labelGap, y+l.CellHeight/2, p.Label)
	}
	return l
}

func paintWalls(s Surface, l Layout, scene *Scene, opts Options) {
	m := scene.Maze
	t := opts.WallWidth
	cw, ch := l.CellWidth, l.CellHeight
	n := m.Meaningful()
	for i, c := range scene.Maze.Cells {
		if i >= n {
			break
		}
		x, y := l.Cell(float64(i%m.Width), float64(i/m.Width))
		if c.Top {
			s.FillRect(x, y, cw, t, opts.Palette.Wall)
		}
		if c.Right {
			s.FillRect(x+cw-t, y, t, ch, opts.Palette.Wall)
		}
		if c.Bottom {
			s.FillRect(x, y+ch-t, cw, t, opts.Palette.Wall)
		}
		if c.Left {
			s.FillRect(x, y, t, ch, opts.Palette.Wall)
		}
	}
}
