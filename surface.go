package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/text"
	"golang.org/x/image/font"

	"github.com/zucenko/mazeview/fonts"
	"github.com/zucenko/mazeview/raster"
)

const dotSize = 64

// Screen draws render calls onto the ebiten screen of the current frame.
type Screen struct {
	screen        *ebiten.Image
	pixel         *ebiten.Image
	dot           *ebiten.Image
	face          font.Face
	width, height float64
	resW, resH    int
}

func NewScreen(face font.Face) (*Screen, error) {
	pixel, err := ebiten.NewImage(1, 1, ebiten.FilterNearest)
	if err != nil {
		return nil, err
	}
	if err := pixel.Fill(color.White); err != nil {
		return nil, err
	}

	// white antialiased disc, tinted per player
	r := raster.New(dotSize, dotSize, 1, nil)
	r.SetResolution(dotSize, dotSize)
	r.FillCircle(dotSize/2, dotSize/2, dotSize/2, color.White)
	dot, err := ebiten.NewImageFromImage(r.Image(), ebiten.FilterLinear)
	if err != nil {
		return nil, err
	}
	return &Screen{pixel: pixel, dot: dot, face: face}, nil
}

func (s *Screen) bind(screen *ebiten.Image) {
	s.screen = screen
}

// setDisplaySize reports whether the window size changed.
func (s *Screen) setDisplaySize(w, h int) bool {
	if float64(w) == s.width && float64(h) == s.height {
		return false
	}
	s.width, s.height = float64(w), float64(h)
	return true
}

func (s *Screen) DisplaySize() (float64, float64) {
	return s.width, s.height
}

func (s *Screen) PixelRatio() float64 {
	return ebiten.DeviceScaleFactor()
}

func (s *Screen) SetResolution(w, h int) {
	s.resW, s.resH = w, h
}

func (s *Screen) Resolution() (int, int) {
	return s.resW, s.resH
}

func (s *Screen) Clear(x, y, w, h float64) {
	op := s.rect(x, y, w, h)
	if op == nil {
		return
	}
	op.CompositeMode = ebiten.CompositeModeClear
	_ = s.screen.DrawImage(s.pixel, op)
}

func (s *Screen) FillRect(x, y, w, h float64, c color.Color) {
	op := s.rect(x, y, w, h)
	if op == nil {
		return
	}
	tint(op, c)
	_ = s.screen.DrawImage(s.pixel, op)
}

func (s *Screen) FillCircle(cx, cy, r float64, c color.Color) {
	if s.screen == nil || !finite(cx, cy, r) || r <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*r/dotSize, 2*r/dotSize)
	op.GeoM.Translate(cx-r, cy-r)
	tint(op, c)
	_ = s.screen.DrawImage(s.dot, op)
}

func (s *Screen) FillText(str string, x, y float64, c color.Color) {
	if s.screen == nil || s.face == nil || !finite(x, y) {
		return
	}
	text.Draw(s.screen, str, s.face, int(x), int(fonts.Baseline(s.face, y)), c)
}

func (s *Screen) rect(x, y, w, h float64) *ebiten.DrawImageOptions {
	if s.screen == nil || !finite(x, y, w, h) || w <= 0 || h <= 0 {
		return nil
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	return op
}

func tint(op *ebiten.DrawImageOptions, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	op.ColorM.Scale(float64(n.R)/255, float64(n.G)/255, float64(n.B)/255, float64(n.A)/255)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
