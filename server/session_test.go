package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain empties the outgoing buffer so assertions see a full picture and
// long replays never hit the drop path.
func drain(sess *Session) []ServerMessage {
	var out []ServerMessage
	for {
		select {
		case mes := <-sess.MessagesToSend:
			out = append(out, mes)
		default:
			return out
		}
	}
}

func lastBoard(msgs []ServerMessage) *Board {
	var board *Board
	for _, mes := range msgs {
		if mes.Board != nil {
			board = mes.Board
		}
	}
	return board
}

func TestSessionApplyWallAndErase(t *testing.T) {
	sess := NewSession(nil)
	drain(sess)

	sess.apply(ClientMessage{Cmd: "wall", X: 2, Y: 2})
	assert.True(t, sess.Grid.Cells[2][2].Wall)

	board := lastBoard(drain(sess))
	require.NotNil(t, board)
	assert.Contains(t, board.Walls, [2]int{2, 2})

	sess.apply(ClientMessage{Cmd: "erase", X: 2, Y: 2})
	assert.False(t, sess.Grid.Cells[2][2].Wall)

	board = lastBoard(drain(sess))
	require.NotNil(t, board)
	assert.NotContains(t, board.Walls, [2]int{2, 2})
}

func TestSessionApplyWallOnEndpointIgnored(t *testing.T) {
	sess := NewSession(nil)

	sess.apply(ClientMessage{Cmd: "wall", X: DefaultStart.X, Y: DefaultStart.Y})
	assert.False(t, sess.Grid.Cells[DefaultStart.X][DefaultStart.Y].Wall)
}

func TestSessionClearRestoresDefaults(t *testing.T) {
	sess := NewSession(nil)
	sess.apply(ClientMessage{Cmd: "wall", X: 3, Y: 3})
	sess.apply(ClientMessage{Cmd: "start", X: 10, Y: 10})
	drain(sess)

	sess.apply(ClientMessage{Cmd: "clear"})

	assert.False(t, sess.Grid.Cells[3][3].Wall)
	start, ok := sess.Grid.Start()
	require.True(t, ok)
	assert.Equal(t, DefaultStart, start)
	end, ok := sess.Grid.End()
	require.True(t, ok)
	assert.Equal(t, DefaultEnd, end)

	board := lastBoard(drain(sess))
	require.NotNil(t, board)
	assert.Empty(t, board.Walls)
}

func TestSessionRunMissingEndpoints(t *testing.T) {
	sess := NewSession(nil)
	sess.Grid.ClearAll()
	drain(sess)

	sess.apply(ClientMessage{Cmd: "run", Algo: "dijkstra"})

	assert.Equal(t, SESS_IDLE, sess.State)
	var toast *Toast
	for _, mes := range drain(sess) {
		require.Nil(t, mes.Busy, "a failed run must not flip busy")
		if mes.Toast != nil {
			toast = mes.Toast
		}
	}
	require.NotNil(t, toast)
	assert.Equal(t, "error", toast.Level)
	assert.Equal(t, "Place both start and end cells first", toast.Message)
}

func TestSessionRunUnknownAlgorithm(t *testing.T) {
	sess := NewSession(nil)
	drain(sess)

	sess.apply(ClientMessage{Cmd: "run", Algo: "bfs"})

	assert.Equal(t, SESS_IDLE, sess.State)
	msgs := drain(sess)
	require.NotEmpty(t, msgs)
	require.NotNil(t, msgs[len(msgs)-1].Toast)
	assert.Equal(t, "error", msgs[len(msgs)-1].Toast.Level)
}

func TestSessionReplayLifecycle(t *testing.T) {
	sess := NewSession(nil)
	drain(sess)

	sess.apply(ClientMessage{Cmd: "run", Algo: "astar"})
	require.Equal(t, SESS_ANIMATING, sess.State)

	msgs := drain(sess)
	require.NotEmpty(t, msgs)
	busy := msgs[len(msgs)-1].Busy
	require.NotNil(t, busy)
	assert.True(t, *busy)

	// edits are ignored while the replay runs
	sess.apply(ClientMessage{Cmd: "wall", X: 2, Y: 2})
	assert.False(t, sess.Grid.Cells[2][2].Wall)
	assert.Empty(t, drain(sess))

	var (
		visited, path int
		stats         *Stats
		success       *Toast
		idleBusy      *bool
	)
	for i := 0; i < 20000 && sess.State == SESS_ANIMATING; i++ {
		sess.tick(10 * time.Millisecond)
		for _, mes := range drain(sess) {
			for _, cu := range mes.Cells {
				switch cu.Kind {
				case "visited":
					visited++
				case "path":
					path++
				}
			}
			if mes.Stats != nil {
				stats = mes.Stats
			}
			if mes.Toast != nil && mes.Toast.Level == "success" {
				success = mes.Toast
			}
			if mes.Busy != nil {
				idleBusy = mes.Busy
			}
		}
	}

	require.Equal(t, SESS_IDLE, sess.State, "replay must drain")
	require.NotNil(t, stats)
	assert.Equal(t, "A*", stats.Algorithm)
	assert.Equal(t, 40, stats.PathLength)
	require.NotNil(t, idleBusy)
	assert.False(t, *idleBusy)
	require.NotNil(t, success)

	// start and end are never streamed as transitions
	assert.Equal(t, stats.PathLength-2, path)
	assert.Positive(t, visited)

	// the grid is usable again
	sess.apply(ClientMessage{Cmd: "wall", X: 2, Y: 2})
	assert.True(t, sess.Grid.Cells[2][2].Wall)
}
