package feed

import (
	"math/rand"

	"github.com/zucenko/mazeview/model"
)

// Generate carves a perfect maze with Wilson's algorithm: loop-erased random
// walks from unvisited cells are grafted onto the growing tree until every
// cell belongs to it. Start is the top left cell, end the bottom right one.
func Generate(width, height int, r *rand.Rand) model.Maze {
	m := model.NewMaze(width, height)
	n := len(m.Cells)
	if n == 0 {
		return m
	}

	visited := make([]bool, n)
	visited[r.Intn(n)] = true
	remaining := n - 1
	exits := make([]model.Direction, n)

	for remaining > 0 {
		start := randomUnvisited(r, visited)

		// walk until the tree is hit; revisiting a cell overwrites its exit,
		// which erases the loop
		cell := start
		for !visited[cell] {
			d := randomExit(m, cell, r)
			exits[cell] = d
			cell = neighbour(m, cell, d)
		}

		cell = start
		for !visited[cell] {
			visited[cell] = true
			remaining--
			m.SetWall(cell%width, cell/width, exits[cell], false)
			cell = neighbour(m, cell, exits[cell])
		}
	}
	return m
}

func randomUnvisited(r *rand.Rand, visited []bool) int {
	for {
		i := r.Intn(len(visited))
		if !visited[i] {
			return i
		}
	}
}

func randomExit(m model.Maze, cell int, r *rand.Rand) model.Direction {
	x, y := cell%m.Width, cell/m.Width
	var options [4]model.Direction
	count := 0
	for _, d := range model.Directions {
		dx, dy := d.Delta()
		if m.Contains(x+dx, y+dy) {
			options[count] = d
			count++
		}
	}
	return options[r.Intn(count)]
}

func neighbour(m model.Maze, cell int, d model.Direction) int {
	dx, dy := d.Delta()
	return m.Index(cell%m.Width+dx, cell/m.Width+dy)
}
