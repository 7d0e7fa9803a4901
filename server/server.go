package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// ViewServer upgrades browser connections and hands each one its own
// Session with a private grid. Sessions are independent; there is no shared
// state between viewers.
type ViewServer struct {
	Upgrader *websocket.Upgrader
}

func NewViewServer() *ViewServer {
	return &ViewServer{
		Upgrader: &websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *ViewServer) HandleView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleView connection from %s", r.RemoteAddr)
		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("HandleView websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		sess := NewSession(con)
		go sess.LoopChannelRead()
		go sess.LoopChannelWrite()
		sess.Loop()
		log.Printf("HandleView session over for %s", r.RemoteAddr)
	}
}
