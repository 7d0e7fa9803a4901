package server

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/pathviz/anim"
	"github.com/zucenko/pathviz/model"
	"github.com/zucenko/pathviz/search"
)

type SessionState int

const (
	SESS_IDLE SessionState = iota + 1
	SESS_ANIMATING
)

func (s SessionState) Name() string {
	switch s {
	case SESS_IDLE:
		return "IDLE"
	case SESS_ANIMATING:
		return "ANIMATING"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

const sequencerTick = 10 * time.Millisecond

// Session owns one viewer's grid and replay state. Loop is the single
// control thread; the read/write goroutines only move messages.
type Session struct {
	State SessionState
	Grid  *model.Grid
	Conn  *websocket.Conn

	Events         chan ClientMessage
	MessagesToSend chan ServerMessage

	seq  *anim.Sequencer
	rng  *rand.Rand
	quit chan struct{}
}

func NewSession(con *websocket.Conn) *Session {
	return &Session{
		State:          SESS_IDLE,
		Grid:           DefaultGrid(),
		Conn:           con,
		Events:         make(chan ClientMessage, 16),
		MessagesToSend: make(chan ServerMessage, 64),
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		quit:           make(chan struct{}),
	}
}

func (sess *Session) Loop() {
	log.Printf("Session.Loop start")
	ticker := time.NewTicker(sequencerTick)
	defer ticker.Stop()

	sess.send(ServerMessage{Setup: &Setup{Cols: sess.Grid.Cols, Rows: sess.Grid.Rows}})
	sess.sendBoard()

	for {
		select {
		case <-sess.quit:
			log.Printf("Session.Loop over")
			return
		case cm := <-sess.Events:
			sess.apply(cm)
		case <-ticker.C:
			sess.tick(sequencerTick)
		}
	}
}

// tick advances a running replay and streams the applied transitions.
func (sess *Session) tick(dt time.Duration) {
	if sess.State != SESS_ANIMATING {
		return
	}
	steps, done := sess.seq.Advance(dt)
	if len(steps) > 0 {
		updates := make([]CellUpdate, 0, len(steps))
		for _, step := range steps {
			kind := "visited"
			if step.Kind == anim.StepPath {
				kind = "path"
			}
			updates = append(updates, CellUpdate{X: step.Cell.X, Y: step.Cell.Y, Kind: kind})
		}
		sess.send(ServerMessage{Cells: updates})
	}
	if done {
		stats := sess.seq.Stats()
		busy := false
		sess.send(ServerMessage{
			Stats: &Stats{
				Algorithm:     stats.Algorithm,
				NodesExplored: stats.NodesExplored,
				PathLength:    stats.PathLength,
			},
			Busy: &busy,
		})
		sess.seq = nil
		sess.State = SESS_IDLE
	}
}

func (sess *Session) apply(cm ClientMessage) {
	if sess.State == SESS_ANIMATING {
		// busy: structural edits and run requests are ignored, not errors
		return
	}
	switch cm.Cmd {
	case "wall":
		sess.Grid.SetWall(cm.X, cm.Y, true)
		sess.sendBoard()
	case "erase":
		sess.Grid.SetWall(cm.X, cm.Y, false)
		sess.sendBoard()
	case "start":
		sess.Grid.MoveStart(cm.X, cm.Y)
		sess.sendBoard()
	case "end":
		sess.Grid.MoveEnd(cm.X, cm.Y)
		sess.sendBoard()
	case "reset":
		sess.Grid.ResetMetadata()
		sess.sendBoard()
	case "clear":
		sess.Grid.ClearAll()
		sess.Grid.MoveStart(DefaultStart.X, DefaultStart.Y)
		sess.Grid.MoveEnd(DefaultEnd.X, DefaultEnd.Y)
		sess.sendBoard()
	case "scatter":
		sess.Grid.ResetMetadata()
		sess.Grid.ScatterWalls(sess.rng, 8, 200, 0.25)
		sess.sendBoard()
	case "run":
		sess.run(cm.Algo)
	default:
		log.Warnf("Session.apply unknown cmd %q", cm.Cmd)
	}
}

func (sess *Session) run(algo string) {
	var runner func(*model.Grid) (search.Result, error)
	switch algo {
	case "dijkstra":
		runner = search.Dijkstra
	case "astar":
		runner = search.AStar
	default:
		sess.Error(fmt.Sprintf("unknown algorithm %q", algo))
		return
	}

	sess.Grid.ResetMetadata()
	sess.sendBoard()
	result, err := runner(sess.Grid)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrMissingEndpoints):
			sess.Error("Place both start and end cells first")
		case errors.Is(err, search.ErrNoPathFound):
			sess.Error("No path found")
		default:
			sess.Error(err.Error())
		}
		return
	}
	log.Printf("Session.run %s: %d explored, path %d",
		result.Algorithm, result.NodesExplored(), result.PathLength())
	sess.seq = anim.New(sess.Grid, result, anim.WithNotifier(sess))
	sess.State = SESS_ANIMATING
	busy := true
	sess.send(ServerMessage{Busy: &busy})
}

// Error implements anim.Notifier.
func (sess *Session) Error(msg string) {
	sess.send(ServerMessage{Toast: &Toast{Level: "error", Message: msg}})
}

// Success implements anim.Notifier.
func (sess *Session) Success(msg string) {
	sess.send(ServerMessage{Toast: &Toast{Level: "success", Message: msg}})
}

func (sess *Session) sendBoard() {
	board := Board{Walls: make([][2]int, 0, 64)}
	for c := 0; c < sess.Grid.Cols; c++ {
		for r := 0; r < sess.Grid.Rows; r++ {
			if sess.Grid.Cells[c][r].Wall {
				board.Walls = append(board.Walls, [2]int{c, r})
			}
		}
	}
	if start, ok := sess.Grid.Start(); ok {
		board.Start = &[2]int{start.X, start.Y}
	}
	if end, ok := sess.Grid.End(); ok {
		board.End = &[2]int{end.X, end.Y}
	}
	sess.send(ServerMessage{Board: &board})
}

// send never blocks the control loop; a viewer that cannot keep up loses
// frames, not the session.
func (sess *Session) send(mes ServerMessage) {
	select {
	case sess.MessagesToSend <- mes:
	default:
		log.Warnf("Session.send dropping message, buffer full")
	}
}

func (sess *Session) LoopChannelRead() {
	log.Printf("LoopChannelRead STARTED")
	for {
		cm := ClientMessage{}
		if err := sess.Conn.ReadJSON(&cm); err != nil {
			log.Printf("LoopChannelRead err reading message from Conn %v", err)
			close(sess.quit)
			return
		}
		select {
		case sess.Events <- cm:
		default:
			log.Warnf("Dropping command, Events full")
		}
	}
}

func (sess *Session) LoopChannelWrite() {
	log.Printf("LoopChannelWrite STARTED")
	for {
		select {
		case <-sess.quit:
			log.Printf("LoopChannelWrite ENDED")
			return
		case mes := <-sess.MessagesToSend:
			if err := sess.Conn.WriteJSON(mes); err != nil {
				log.Warnf("LoopChannelWrite cant write %v", err)
				return
			}
		}
	}
}
