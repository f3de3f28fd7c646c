// Package fonts builds the face used for player name labels.
package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const dpi = 72

// Label returns a face of the Go regular font at size points.
func Label(size float64) (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse label font: %w", err)
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

// Baseline returns the baseline that centres a line of face vertically on y.
func Baseline(face font.Face, y float64) float64 {
	m := face.Metrics()
	return y + float64(m.Ascent-m.Descent)/64/2
}
