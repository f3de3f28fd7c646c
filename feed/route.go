package feed

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/zucenko/mazeview/model"
)

// Point is a cell position.
type Point struct {
	X, Y int
}

// Route returns the shortest path from one cell to another through open
// walls, both ends included, or nil when to cannot be reached.
func Route(m model.Maze, from, to Point) []Point {
	if !m.Contains(from.X, from.Y) || !m.Contains(to.X, to.Y) {
		return nil
	}
	visited := mapset.New[Point]()
	prev := make(map[Point]Point)
	visited.Put(from)
	queue := []Point{from}

	for len(queue) > 0 && !visited.Has(to) {
		current := queue[0]
		queue = queue[1:]
		for _, d := range model.Directions {
			if m.Wall(current.X, current.Y, d) {
				continue
			}
			dx, dy := d.Delta()
			n := Point{current.X + dx, current.Y + dy}
			if !m.Contains(n.X, n.Y) || visited.Has(n) {
				continue
			}
			visited.Put(n)
			prev[n] = current
			queue = append(queue, n)
		}
	}
	if !visited.Has(to) {
		return nil
	}

	path := []Point{to}
	for p := to; p != from; {
		p = prev[p]
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
