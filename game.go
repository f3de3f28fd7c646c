package main

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazeview/bridge"
	"github.com/zucenko/mazeview/config"
	"github.com/zucenko/mazeview/fonts"
	"github.com/zucenko/mazeview/model"
	"github.com/zucenko/mazeview/render"
)

// Game hands ebiten's frames to the render loop.
type Game struct {
	screen *Screen
	sched  *render.FrameScheduler
	loop   *render.Loop
}

func NewGame(cfg config.Config, intake <-chan model.Payload) (*Game, error) {
	face, err := fonts.Label(cfg.LabelSize)
	if err != nil {
		return nil, err
	}
	screen, err := NewScreen(face)
	if err != nil {
		return nil, err
	}
	screen.setDisplaySize(cfg.WindowWidth, cfg.WindowHeight)
	sched := &render.FrameScheduler{}
	g := &Game{
		screen: screen,
		sched:  sched,
		loop:   render.Setup(screen, sched, intake),
	}
	g.loop.ViewportChanged()
	return g, nil
}

// Layout makes the screen as large as the backing resolution so the maze is
// drawn at device pixel density.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.loop.Layout(g.screen.setDisplaySize(outsideWidth, outsideHeight))
}

func (g *Game) Update(screen *ebiten.Image) error {
	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.screen.bind(screen)
	g.sched.RunFrame()
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	cfg.Apply()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	intake := make(chan model.Payload, 16)
	go func() {
		err := bridge.NewClient(cfg.FeedURL, cfg.Retry).Run(ctx, intake)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Warnf("feed client stopped: %v", err)
		}
	}()

	game, err := NewGame(cfg, intake)
	if err != nil {
		log.Fatal(err)
	}
	setupWindow(cfg)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	game.loop.Stop()
}
