package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazeview/config"
	"github.com/zucenko/mazeview/feed"
)

type Server struct {
	router *way.Router
	Hub    *feed.Hub
}

func newServer(cfg config.Config) (*Server, error) {
	hubCfg := feed.HubConfig{
		Width:  cfg.MazeWidth,
		Height: cfg.MazeHeight,
		Bots:   cfg.Bots,
		Tick:   cfg.Tick,
		Step:   cfg.Step,
	}
	if cfg.LayoutFile != "" {
		layout, err := feed.LoadLayout(cfg.LayoutFile)
		if err != nil {
			return nil, err
		}
		hubCfg.Layout = layout
	}
	s := &Server{Hub: feed.NewHub(hubCfg)}
	s.routes()
	return s, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}
	cfg.Apply()

	s, err := newServer(cfg)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		if err := s.Hub.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Errorf("hub stopped: %v", err)
		}
	}()

	httpServer := &http.Server{Addr: ":" + cfg.Port, Handler: s.router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("feed listening on :%s%s", cfg.Port, URI_WS)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalln(err)
	}
}
