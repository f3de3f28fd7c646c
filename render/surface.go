// Package render paints a decoded maze and its players onto a 2D surface,
// once per animation frame.
package render

import (
	"image/color"
)

// Surface is a 2D drawing target with a resizable backing store.
// Implementations ignore calls with non-finite or empty geometry.
type Surface interface {
	// DisplaySize is the displayed size in logical units.
	DisplaySize() (width, height float64)
	// PixelRatio is the number of device pixels per logical unit.
	PixelRatio() float64
	// SetResolution sets the backing store size in device pixels.
	SetResolution(width, height int)
	// Resolution returns the backing store size in device pixels.
	Resolution() (width, height int)

	Clear(x, y, w, h float64)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	// FillText draws s left aligned with its vertical middle at y.
	FillText(s string, x, y float64, c color.Color)
}

// Resize matches the backing store to the displayed size.
func Resize(s Surface) {
	ratio := s.PixelRatio()
	if ratio <= 0 {
		ratio = 1
	}
	w, h := s.DisplaySize()
	s.SetResolution(int(w*ratio), int(h*ratio))
}
