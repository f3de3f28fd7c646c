package main

import (
	"net/http"

	"github.com/matryer/way"
)

const URI_WS = "/play"
const URI_HEALTH = "/healthz"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WS, s.Hub.HandleHttpCall())
	s.router.HandleFunc("GET", URI_HEALTH, s.health())
}

func (s *Server) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
