package server

// JSON wire types for the browser view. The client sends small commands,
// the server answers with full board states for structural edits and with
// per-cell diffs while a replay is running.

type ClientMessage struct {
	Cmd  string `json:"cmd"` // wall, erase, start, end, run, reset, clear, scatter
	X    int    `json:"x,omitempty"`
	Y    int    `json:"y,omitempty"`
	Algo string `json:"algo,omitempty"` // dijkstra, astar
}

type Setup struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

type Board struct {
	Walls [][2]int `json:"walls"`
	Start *[2]int  `json:"start,omitempty"`
	End   *[2]int  `json:"end,omitempty"`
}

type CellUpdate struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"` // visited, path
}

type Toast struct {
	Level   string `json:"level"` // error, success
	Message string `json:"message"`
}

type Stats struct {
	Algorithm     string `json:"algorithm"`
	NodesExplored int    `json:"nodesExplored"`
	PathLength    int    `json:"pathLength"`
}

type ServerMessage struct {
	Setup *Setup       `json:"setup,omitempty"`
	Board *Board       `json:"board,omitempty"`
	Cells []CellUpdate `json:"cells,omitempty"`
	Toast *Toast       `json:"toast,omitempty"`
	Stats *Stats       `json:"stats,omitempty"`
	Busy  *bool        `json:"busy,omitempty"`
}
