package main

import (
	"net/http"
	"os"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/pathviz/server"
)

type Server struct {
	router     *way.Router
	ViewServer *server.ViewServer
}

func main() {
	Server := Server{
		ViewServer: server.NewViewServer(),
	}
	Server.routes()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Fatalln(http.ListenAndServe(":"+port, Server.router))
}
