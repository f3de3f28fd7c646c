package feed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/zucenko/mazeview/model"
)

// Layout is a hand drawn maze with named bot spawn points.
type Layout struct {
	Maze   model.Maze
	Spawns []Spawn
}

// Spawn places a named bot.
type Spawn struct {
	Name string
	At   Point
}

var ErrEmptyLayout = errors.New("layout has no cells")

// LoadLayout reads an ASCII layout file.
func LoadLayout(path string) (*Layout, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer file.Close()
	layout, err := ParseLayout(file)
	if err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	log.Infof("layout %s loaded %dx%d, %d spawns", path, layout.Maze.Width, layout.Maze.Height, len(layout.Spawns))
	return layout, nil
}

// ParseLayout reads lines in pairs. The first line of a pair holds the cells
// of one row at even columns and the walls between them at odd columns: '|'
// closed, ' ' open. The second line marks the walls below each cell at even
// columns: '-' closed, ' ' open. Cell markers: 'S' start, 'E' end, other
// capital letters spawn a bot of that name. Anything missing is a wall, and
// the outer boundary is always walled.
func ParseLayout(reader io.Reader) (*Layout, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	var rows, below []string
	lines := 0
	for scanner.Scan() {
		s := strings.TrimRight(scanner.Text(), "\r")
		if lines%2 == 0 {
			rows = append(rows, s)
		} else {
			below = append(below, s)
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	width := 0
	for _, row := range rows {
		if w := (len(row) + 1) / 2; w > width {
			width = w
		}
	}
	if width == 0 {
		return nil, ErrEmptyLayout
	}

	m := model.NewMaze(width, len(rows))
	layout := &Layout{}
	named := mapset.New[byte]()
	start, end := Point{0, 0}, Point{width - 1, len(rows) - 1}
	for y, row := range rows {
		for x := 0; x < width; x++ {
			switch char := at(row, 2*x); {
			case char == 'S':
				start = Point{x, y}
			case char == 'E':
				end = Point{x, y}
			case char >= 'A' && char <= 'Z':
				if named.Has(char) {
					return nil, fmt.Errorf("bot %c spawns twice", char)
				}
				named.Put(char)
				layout.Spawns = append(layout.Spawns, Spawn{Name: string(char), At: Point{x, y}})
			}
			if x < width-1 && at(row, 2*x+1) == ' ' {
				m.SetWall(x, y, model.Right, false)
			}
			if y < len(rows)-1 && y < len(below) && at(below[y], 2*x) == ' ' {
				m.SetWall(x, y, model.Down, false)
			}
		}
	}
	m.StartX, m.StartY = start.X, start.Y
	m.EndX, m.EndY = end.X, end.Y
	layout.Maze = m
	return layout, nil
}

func at(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i]
}
