package search

import "github.com/zucenko/pathviz/model"

type frontierItem struct {
	point model.Point
	f     float64
	seq   int // insertion order, breaks F ties deterministically
	index int
}

// frontier is a container/heap min-queue over F.
type frontier []*frontierItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}
