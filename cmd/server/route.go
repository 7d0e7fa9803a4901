package main

import (
	"net/http"
	"os"

	"github.com/matryer/way"
)

const URI_WS = "/view"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WS, s.ViewServer.HandleView())
	s.router.HandleFunc("GET", "/", serveIndex)
}

// works when run from the repo root or from cmd/server
var indexCandidates = []string{
	"cmd/server/static/index.html",
	"static/index.html",
}

func serveIndex(w http.ResponseWriter, r *http.Request) {
	for _, p := range indexCandidates {
		if _, err := os.Stat(p); err == nil {
			http.ServeFile(w, r, p)
			return
		}
	}
	http.Error(w, "index.html not found", http.StatusInternalServerError)
}
