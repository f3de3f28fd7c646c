package render

import "github.com/zucenko/mazeview/model"

// Scene is the state a frame is painted from. Updates replace its fields
// wholesale and never mutate them in place.
type Scene struct {
	Maze    model.Maze
	Players []model.Player
}

// Apply folds one payload into the scene. It reports whether the maze was
// replaced.
func (s *Scene) Apply(p model.Payload) bool {
	if p.Players != nil {
		s.Players = p.Players
	}
	if p.Maze == nil {
		return false
	}
	s.Maze = model.Decode(p.Maze)
	return true
}
