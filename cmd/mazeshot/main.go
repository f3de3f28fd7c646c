// Command mazeshot watches a maze feed headlessly and saves the last frame
// as a PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/zucenko/mazeview/bridge"
	"github.com/zucenko/mazeview/config"
	"github.com/zucenko/mazeview/fonts"
	"github.com/zucenko/mazeview/model"
	"github.com/zucenko/mazeview/raster"
	"github.com/zucenko/mazeview/render"
)

type shot struct {
	feedURL   string
	retry     time.Duration
	watch     time.Duration
	frame     time.Duration
	width     int
	height    int
	ratio     float64
	labelSize float64
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}
	cfg.Apply()

	s := shot{feedURL: cfg.FeedURL, retry: cfg.Retry, labelSize: cfg.LabelSize}
	flag.DurationVar(&s.watch, "for", 2*time.Second, "how long to watch the feed")
	flag.DurationVar(&s.frame, "frame", time.Second/30, "interval between frames")
	flag.IntVar(&s.width, "width", cfg.WindowWidth, "display width")
	flag.IntVar(&s.height, "height", cfg.WindowHeight, "display height")
	flag.Float64Var(&s.ratio, "ratio", 1, "device pixel ratio")
	out := flag.String("out", "mazeshot.png", "PNG file to write, - for stdout")
	flag.Parse()

	if *out == "-" && term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalln("refusing to write a PNG to a terminal")
	}

	img, err := s.take(context.Background())
	if err != nil {
		log.Fatalln(err)
	}
	if *out == "-" {
		err = encodePNG(os.Stdout, img)
	} else {
		err = writePNG(*out, img)
	}
	if err != nil {
		log.Fatalln(err)
	}
	log.Infof("wrote %s %dx%d", *out, img.Bounds().Dx(), img.Bounds().Dy())
}

// take renders the feed for s.watch and returns the final frame.
func (s shot) take(ctx context.Context) (*image.RGBA, error) {
	face, err := fonts.Label(s.labelSize)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.watch)
	defer cancel()

	intake := make(chan model.Payload, 16)
	client := bridge.NewClient(s.feedURL, s.retry)
	go func() {
		_ = client.Run(ctx, intake)
	}()

	surface := raster.New(float64(s.width), float64(s.height), s.ratio, face)
	sched := render.NewTickerScheduler(s.frame)
	loop := render.Setup(surface, sched, intake)
	err = sched.Run(ctx)
	loop.Stop()
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	if loop.Frames() == 0 {
		return nil, fmt.Errorf("no frame rendered in %s", s.watch)
	}
	return surface.Image(), nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encodePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func encodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
