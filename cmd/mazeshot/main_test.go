package main

import (
	"context"
	"image/color"
	"image/png"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazeview/feed"
	"github.com/zucenko/mazeview/render"
)

func TestTakeRendersFeed(t *testing.T) {
	hub := feed.NewHub(feed.HubConfig{Width: 5, Height: 4, Tick: 10 * time.Millisecond, Seed: 5})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = hub.Run(ctx) }()
	srv := httptest.NewServer(hub.HandleHttpCall())
	defer srv.Close()

	s := shot{
		feedURL:   "ws" + strings.TrimPrefix(srv.URL, "http"),
		retry:     50 * time.Millisecond,
		watch:     400 * time.Millisecond,
		frame:     10 * time.Millisecond,
		width:     100,
		height:    80,
		ratio:     1,
		labelSize: 12,
	}
	img, err := s.take(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())

	toRGBA := func(c color.Color) color.RGBA {
		r, g, b, a := c.RGBA()
		return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}
	assert.Equal(t, toRGBA(render.DefaultPalette.Start), toRGBA(img.At(2, 2)))
	assert.Equal(t, toRGBA(render.DefaultPalette.End), toRGBA(img.At(90, 70)))

	out := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, writePNG(out, img))
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestTakeWithoutFeed(t *testing.T) {
	s := shot{
		feedURL:   "ws://127.0.0.1:1/play",
		retry:     10 * time.Millisecond,
		watch:     100 * time.Millisecond,
		frame:     10 * time.Millisecond,
		width:     40,
		height:    40,
		ratio:     1,
		labelSize: 12,
	}
	img, err := s.take(context.Background())
	require.NoError(t, err)
	// nothing received, nothing drawn
	assert.Equal(t, color.RGBA{}, img.RGBAAt(20, 20))
}
