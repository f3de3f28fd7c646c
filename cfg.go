package main

import (
	"github.com/hajimehoshi/ebiten"

	"github.com/zucenko/mazeview/config"
)

const title = "mazeview"

func setupWindow(cfg config.Config) {
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
}
