package search

import (
	"math"

	"github.com/zucenko/pathviz/model"
)

// Dijkstra runs uniform-cost search over a working copy of the grid.
//
// Selection scans the flat unvisited set for the minimum G on every
// iteration. That is O(V) per step, which is perfectly fine at this grid
// size and keeps the selection order trivially deterministic.
func Dijkstra(g *model.Grid) (Result, error) {
	start, end, err := endpoints(g)
	if err != nil {
		return Result{}, err
	}

	work := g.Clone()
	work.ResetMetadata()
	startCell := work.At(start.X, start.Y)
	startCell.G = 0
	startCell.F = 0

	res := Result{Algorithm: AlgoDijkstra}
	for {
		current := minUnvisited(work)
		if current == nil || math.IsInf(current.G, 1) {
			// Everything still reachable has been finalized.
			return Result{}, ErrNoPathFound
		}
		current.Visited = true
		here := model.Point{X: current.X, Y: current.Y}
		if here == end {
			res.Path = reconstruct(work, end)
			return res, nil
		}
		res.Visited = append(res.Visited, here)

		for _, np := range Neighbors(work, here) {
			nb := work.At(np.X, np.Y)
			tentative := current.G + 1
			if tentative < nb.G {
				nb.G = tentative
				nb.F = tentative // no heuristic, F tracks G
				nb.Parent = here
				nb.HasParent = true
			}
		}
	}
}

// minUnvisited returns the unvisited cell with the smallest G, scanning in
// storage order, or nil once every cell is finalized. The Visited flag on
// the working copy doubles as set membership.
func minUnvisited(g *model.Grid) *model.Cell {
	var best *model.Cell
	for c := range g.Cells {
		for r := range g.Cells[c] {
			cell := &g.Cells[c][r]
			if cell.Visited {
				continue
			}
			if best == nil || cell.G < best.G {
				best = cell
			}
		}
	}
	return best
}
