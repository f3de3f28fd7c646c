package feed

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/mazeview/model"
)

var botColors = []string{
	"#fa3636",
	"#edbc1e",
	"#0abd38",
	"#34fbf6",
	"#321ecc",
	"#cb18dd",
}

func (h *Hub) start() Point {
	return Point{h.maze.StartX, h.maze.StartY}
}

func (h *Hub) end() Point {
	return Point{h.maze.EndX, h.maze.EndY}
}

func (h *Hub) spawnBots() {
	h.bots = h.bots[:0]
	if h.cfg.Layout != nil && len(h.cfg.Layout.Spawns) > 0 {
		for i, s := range h.cfg.Layout.Spawns {
			h.bots = append(h.bots, newBot(s.Name, botColors[i%len(botColors)], s.At))
		}
		return
	}
	for i := 0; i < h.cfg.Bots; i++ {
		name := fmt.Sprintf("bot-%d", i+1)
		h.bots = append(h.bots, newBot(name, botColors[i%len(botColors)], h.start()))
	}
}

func newBot(name, color string, at Point) *bot {
	return &bot{name: name, color: color, at: at, x: float64(at.X), y: float64(at.Y)}
}

func (b *bot) place(p Point) {
	b.at = p
	b.x, b.y = float64(p.X), float64(p.Y)
}

func (b *bot) player() model.Player {
	return model.Player{X: b.x, Y: b.y, Color: b.color, Name: b.name}
}

// walk sends b along the shortest route to the end. A bot already there, or
// walled off from it, stays put.
func (h *Hub) walk(b *bot) {
	path := Route(h.maze, b.at, h.end())
	if len(path) < 2 {
		if path == nil {
			log.Warnf("bot %s at %d,%d cannot reach the end", b.name, b.at.X, b.at.Y)
		}
		return
	}
	h.step(b, path, 1, h.epoch)
}

// step tweens b from path[i-1] into path[i]. Steps of an older maze are
// abandoned.
func (h *Hub) step(b *bot, path []Point, i int, epoch int) {
	from, to := path[i-1], path[i]
	t := gween.New(0, 1, float32(h.cfg.Step.Seconds()), ease.InOutQuad)
	a := &Action{onChange: func(v float32) {
		b.x = float64(from.X) + float64(to.X-from.X)*float64(v)
		b.y = float64(from.Y) + float64(to.Y-from.Y)*float64(v)
	}}
	a.addOnFinish(func() {
		b.place(to)
	})
	a.addNext(func(h *Hub) {
		if h.epoch != epoch {
			return
		}
		if i+1 < len(path) {
			h.step(b, path, i+1, epoch)
		} else {
			h.arrive(b)
		}
	})
	h.tweens[t] = a
}

func (h *Hub) arrive(b *bot) {
	log.Infof("bot %s reached the end", b.name)
	if h.cfg.Layout == nil {
		h.regenerate()
		return
	}
	b.place(h.start())
	h.walk(b)
}

func (h *Hub) setMaze(m model.Maze) {
	h.maze = m
	h.encoded = model.Encode(m)
}

// regenerate replaces the maze, sends every bot back to the start and pushes
// the new maze to all subscribers.
func (h *Hub) regenerate() {
	h.epoch++
	h.tweens = make(map[*gween.Tween]*Action)
	h.setMaze(Generate(h.cfg.Width, h.cfg.Height, h.rand))
	for _, b := range h.bots {
		b.place(h.start())
		h.walk(b)
	}
	log.Infof("maze regenerated %dx%d, epoch %d", h.maze.Width, h.maze.Height, h.epoch)
	h.broadcast(h.fullEnvelope(), true)
}

func (h *Hub) players() []model.Player {
	players := make([]model.Player, 0, len(h.bots))
	for _, b := range h.bots {
		players = append(players, b.player())
	}
	return players
}

func (h *Hub) fullEnvelope() model.Envelope {
	return model.Envelope{
		Event:   model.EventMaze,
		Payload: model.Payload{Maze: h.encoded, Players: h.players()},
	}
}

func (h *Hub) playersEnvelope() model.Envelope {
	return model.Envelope{
		Event:   model.EventMaze,
		Payload: model.Payload{Players: h.players()},
	}
}
