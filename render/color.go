package render

import (
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the fixed scene colours.
type Palette struct {
	Background color.RGBA
	Start      color.RGBA
	End        color.RGBA
	Wall       color.RGBA
	Label      color.RGBA
}

var DefaultPalette = Palette{
	Background: hex(0x1f2937),
	Start:      hex(0x4b5563),
	End:        hex(0x10b981),
	Wall:       hex(0x374151),
	Label:      hex(0xf9fafb),
}

func hex(u uint32) color.RGBA {
	return color.RGBA{R: uint8(u >> 16), G: uint8(u >> 8), B: uint8(u), A: 0xff}
}

var namedColors = map[string]color.RGBA{
	"black":   hex(0x000000),
	"white":   hex(0xffffff),
	"red":     hex(0xff0000),
	"lime":    hex(0x00ff00),
	"green":   hex(0x008000),
	"blue":    hex(0x0000ff),
	"yellow":  hex(0xffff00),
	"orange":  hex(0xffa500),
	"purple":  hex(0x800080),
	"magenta": hex(0xff00ff),
	"cyan":    hex(0x00ffff),
	"gray":    hex(0x808080),
	"grey":    hex(0x808080),
	"pink":    hex(0xffc0cb),
}

// ParseColor reads a CSS style colour: #rgb, #rgba, #rrggbb, #rrggbbaa,
// rgb(r,g,b), rgba(r,g,b,a) or a basic colour name. Alpha is not
// premultiplied.
func ParseColor(s string) (color.NRGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")") {
		return parseFunc(s[len("rgba("):len(s)-1], 4)
	}
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		return parseFunc(s[len("rgb("):len(s)-1], 3)
	}
	return color.NRGBA{}, false
}

func parseHex(s string) (color.NRGBA, bool) {
	switch len(s) {
	case 3, 4:
		// #abc is #aabbcc
		var long strings.Builder
		for _, r := range s {
			long.WriteRune(r)
			long.WriteRune(r)
		}
		s = long.String()
	case 6, 8:
	default:
		return color.NRGBA{}, false
	}
	if len(s) == 6 {
		s += "ff"
	}
	u, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(u >> 24), G: uint8(u >> 16), B: uint8(u >> 8), A: uint8(u)}, true
}

func parseFunc(args string, n int) (color.NRGBA, bool) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return color.NRGBA{}, false
	}
	var vals [4]uint8
	vals[3] = 0xff
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, false
		}
		vals[i] = uint8(v)
	}
	if n == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.NRGBA{}, false
		}
		vals[3] = uint8(a*255 + 0.5)
	}
	return color.NRGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, true
}
