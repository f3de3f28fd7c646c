package render

import (
	"fmt"
	"image/color"
)

type op struct {
	kind       string
	x, y, w, h float64
	text       string
	color      color.Color
}

func (o op) String() string {
	return fmt.Sprintf("%s(%g,%g,%g,%g %q)", o.kind, o.x, o.y, o.w, o.h, o.text)
}

// recorder is a Surface that keeps every call.
type recorder struct {
	displayW, displayH float64
	ratio              float64
	resW, resH         int
	resizes            int
	ops                []op
}

func newRecorder(w, h float64) *recorder {
	return &recorder{displayW: w, displayH: h, ratio: 1}
}

func (r *recorder) DisplaySize() (float64, float64) { return r.displayW, r.displayH }
func (r *recorder) PixelRatio() float64             { return r.ratio }
func (r *recorder) Resolution() (int, int)          { return r.resW, r.resH }

func (r *recorder) SetResolution(w, h int) {
	r.resW, r.resH = w, h
	r.resizes++
}

func (r *recorder) Clear(x, y, w, h float64) {
	r.ops = append(r.ops, op{kind: "clear", x: x, y: y, w: w, h: h})
}

func (r *recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.ops = append(r.ops, op{kind: "rect", x: x, y: y, w: w, h: h, color: c})
}

func (r *recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.ops = append(r.ops, op{kind: "circle", x: cx, y: cy, w: rad, color: c})
}

func (r *recorder) FillText(s string, x, y float64, c color.Color) {
	r.ops = append(r.ops, op{kind: "text", x: x, y: y, text: s, color: c})
}

func (r *recorder) reset() {
	r.ops = nil
}

func (r *recorder) kinds() []string {
	kinds := make([]string, len(r.ops))
	for i, o := range r.ops {
		kinds[i] = o.kind
	}
	return kinds
}

func (r *recorder) withColor(c color.Color) []op {
	var out []op
	for _, o := range r.ops {
		if o.color == c {
			out = append(out, o)
		}
	}
	return out
}
