package search

import (
	"container/heap"

	"github.com/zucenko/pathviz/model"
)

// AStar runs best-first search guided by the Manhattan heuristic. With unit
// edge costs the heuristic is consistent, so cells are never reopened once
// closed and the first time the end cell is popped its cost is optimal.
//
// Improved entries are pushed lazily; a popped entry whose cell is already
// closed is stale and skipped.
func AStar(g *model.Grid) (Result, error) {
	start, end, err := endpoints(g)
	if err != nil {
		return Result{}, err
	}

	work := g.Clone()
	work.ResetMetadata()
	startCell := work.At(start.X, start.Y)
	startCell.G = 0
	startCell.H = Manhattan(start, end)
	startCell.F = startCell.H

	open := make(frontier, 0, 64)
	heap.Init(&open)
	seq := 0
	heap.Push(&open, &frontierItem{point: start, f: startCell.F, seq: seq})

	res := Result{Algorithm: AlgoAStar}
	for open.Len() > 0 {
		item := heap.Pop(&open).(*frontierItem)
		current := work.At(item.point.X, item.point.Y)
		if current.Visited {
			continue
		}
		if item.point == end {
			res.Path = reconstruct(work, end)
			return res, nil
		}
		current.Visited = true // closed
		res.Visited = append(res.Visited, item.point)

		for _, np := range Neighbors(work, item.point) {
			nb := work.At(np.X, np.Y)
			if nb.Visited {
				continue
			}
			tentative := current.G + 1
			if tentative >= nb.G {
				continue
			}
			nb.G = tentative
			nb.H = Manhattan(np, end)
			nb.F = nb.G + nb.H
			nb.Parent = item.point
			nb.HasParent = true
			seq++
			heap.Push(&open, &frontierItem{point: np, f: nb.F, seq: seq})
		}
	}
	return Result{}, ErrNoPathFound
}
