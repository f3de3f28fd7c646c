// Package raster is a CPU render.Surface backed by an image.RGBA.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/zucenko/mazeview/fonts"
)

// kappa places cubic control points for a quarter circle
const kappa = 0.5522847498

// Surface draws into an in-memory image. It is not safe for concurrent use.
type Surface struct {
	img                *image.RGBA
	displayW, displayH float64
	ratio              float64
	face               font.Face
}

// New returns a surface of the given display size. A nil face disables text.
func New(displayW, displayH, ratio float64, face font.Face) *Surface {
	return &Surface{
		img:      image.NewRGBA(image.Rect(0, 0, 0, 0)),
		displayW: displayW,
		displayH: displayH,
		ratio:    ratio,
		face:     face,
	}
}

// SetDisplaySize changes the displayed size picked up by the next resize.
func (s *Surface) SetDisplaySize(w, h float64) {
	s.displayW, s.displayH = w, h
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

func (s *Surface) DisplaySize() (float64, float64) {
	return s.displayW, s.displayH
}

func (s *Surface) PixelRatio() float64 {
	return s.ratio
}

func (s *Surface) Resolution() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// SetResolution wipes the image, reallocating it when the size changes,
// the way assigning a canvas width does.
func (s *Surface) SetResolution(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if cw, ch := s.Resolution(); cw == w && ch == h {
		draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (s *Surface) Clear(x, y, w, h float64) {
	if r, ok := s.rect(x, y, w, h); ok {
		draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
	}
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	if r, ok := s.rect(x, y, w, h); ok {
		draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Over)
	}
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	if !finite(cx, cy, r) || r <= 0 {
		return
	}
	if _, ok := s.rect(cx-r, cy-r, 2*r, 2*r); !ok {
		return
	}
	b := s.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	x, y, k := float32(cx), float32(cy), float32(r)
	kr := float32(kappa * r)
	z.MoveTo(x+k, y)
	z.CubeTo(x+k, y+kr, x+kr, y+k, x, y+k)
	z.CubeTo(x-kr, y+k, x-k, y+kr, x-k, y)
	z.CubeTo(x-k, y-kr, x-kr, y-k, x, y-k)
	z.CubeTo(x+kr, y-k, x+k, y-kr, x+k, y)
	z.ClosePath()
	z.Draw(s.img, b, image.NewUniform(c), image.Point{})
}

func (s *Surface) FillText(str string, x, y float64, c color.Color) {
	if s.face == nil || str == "" || !finite(x, y) {
		return
	}
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: s.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x * 64)),
			Y: fixed.Int26_6(math.Round(fonts.Baseline(s.face, y) * 64)),
		},
	}
	d.DrawString(str)
}

// rect converts float geometry to whole pixels clipped to the image.
func (s *Surface) rect(x, y, w, h float64) (image.Rectangle, bool) {
	if !finite(x, y, w, h) || w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	b := s.img.Bounds()
	x0 := clamp(math.Round(x), b.Dx())
	y0 := clamp(math.Round(y), b.Dy())
	x1 := clamp(math.Round(x+w), b.Dx())
	y1 := clamp(math.Round(y+h), b.Dy())
	r := image.Rect(x0, y0, x1, y1)
	return r, !r.Empty()
}

func clamp(v float64, max int) int {
	if v < 0 {
		return 0
	}
	if v > float64(max) {
		return max
	}
	return int(v)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
