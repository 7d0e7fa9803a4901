// Package search implements grid shortest-path search: Dijkstra and A* over
// a 4-connected unit-cost grid. Both algorithms work on a clone of the grid
// they are given and never mutate the caller's copy; their output is an
// ordered exploration trace plus the reconstructed path, which the animation
// layer replays onto the live grid.
package search

import (
	"errors"

	"github.com/zucenko/pathviz/model"
)

const (
	AlgoDijkstra = "Dijkstra"
	AlgoAStar    = "A*"
)

var (
	// ErrMissingEndpoints is returned when start or end is not placed.
	// The check happens before any work, so no state is touched.
	ErrMissingEndpoints = errors.New("start or end cell is not set")

	// ErrNoPathFound is returned when the frontier empties without
	// reaching the end cell.
	ErrNoPathFound = errors.New("no path between start and end")
)

// Result is the outcome of a completed search.
type Result struct {
	Algorithm string
	Visited   []model.Point // exploration order, start included, end excluded
	Path      []model.Point // start to end inclusive
}

func (r Result) NodesExplored() int { return len(r.Visited) }

func (r Result) PathLength() int { return len(r.Path) }

// up, down, left, right. This enumeration order is the tie-break that makes
// replays reproducible, so it must not change.
var directions = []model.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// Neighbors returns the axis-aligned adjacent cells of p that are in bounds
// and not walls, in the fixed enumeration order.
func Neighbors(g *model.Grid, p model.Point) []model.Point {
	out := make([]model.Point, 0, 4)
	for _, d := range directions {
		np := model.Point{X: p.X + d.X, Y: p.Y + d.Y}
		if cell := g.At(np.X, np.Y); cell != nil && !cell.Wall {
			out = append(out, np)
		}
	}
	return out
}

// Manhattan is the |dx|+|dy| distance. Admissible and consistent for
// 4-directional unit-cost movement.
func Manhattan(a, b model.Point) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

func endpoints(g *model.Grid) (start, end model.Point, err error) {
	start, okStart := g.Start()
	end, okEnd := g.End()
	if !okStart || !okEnd {
		return model.Point{}, model.Point{}, ErrMissingEndpoints
	}
	return start, end, nil
}

// reconstruct follows parent links backward from end and returns the full
// path including both endpoints.
func reconstruct(g *model.Grid, end model.Point) []model.Point {
	path := []model.Point{end}
	current := g.At(end.X, end.Y)
	for current.HasParent {
		p := current.Parent
		path = append(path, p)
		current = g.At(p.X, p.Y)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
