package server

import "github.com/zucenko/pathviz/model"

const (
	GridCols = 50
	GridRows = 30
)

var (
	DefaultStart = model.Point{X: 5, Y: 15}
	DefaultEnd   = model.Point{X: 44, Y: 15}
)

// DefaultGrid builds the board every new session starts from.
func DefaultGrid() *model.Grid {
	return model.New(GridCols, GridRows, DefaultStart, DefaultEnd)
}
