package model

import "math"

// Point is a grid coordinate. It doubles as the parent back-reference kept
// during a search, so cells never hold pointers into the backing storage.
type Point struct {
	X, Y int
}

type Cell struct {
	X, Y int

	Wall  bool
	Start bool
	End   bool

	// Set by the animation sequencer, never by the search engine.
	Visited bool
	Path    bool

	// Search metadata. G is cost-so-far, H the heuristic estimate,
	// F their sum. Reset to +Inf (H to 0) between runs.
	G, H, F float64

	Parent    Point
	HasParent bool
}

type Grid struct {
	Cols, Rows int
	Cells      [][]Cell // indexed [col][row]

	start, end Point
	hasStart   bool
	hasEnd     bool
}

func (c *Cell) resetMetadata() {
	c.Visited = false
	c.Path = false
	c.G = math.Inf(1)
	c.H = 0
	c.F = math.Inf(1)
	c.HasParent = false
	c.Parent = Point{}
}
