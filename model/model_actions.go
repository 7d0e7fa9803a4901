package model

// New creates a grid with every cell open and the given start/end placement.
func New(cols, rows int, start, end Point) *Grid {
	matrix := make([][]Cell, cols)
	for c := 0; c < cols; c++ {
		column := make([]Cell, rows)
		for r := 0; r < rows; r++ {
			column[r] = Cell{X: c, Y: r}
			column[r].resetMetadata()
		}
		matrix[c] = column
	}
	g := &Grid{Cols: cols, Rows: rows, Cells: matrix}
	g.MoveStart(start.X, start.Y)
	g.MoveEnd(end.X, end.Y)
	return g
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// At returns the cell at (x, y), or nil when out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.Cells[x][y]
}

// Start reports the current start cell, if one is placed.
func (g *Grid) Start() (Point, bool) {
	return g.start, g.hasStart
}

// End reports the current end cell, if one is placed.
func (g *Grid) End() (Point, bool) {
	return g.end, g.hasEnd
}

// SetWall sets or clears the wall flag at (x, y). Placing a wall on the
// start or end cell is a silent no-op, as is an out-of-bounds target.
func (g *Grid) SetWall(x, y int, wall bool) {
	cell := g.At(x, y)
	if cell == nil || cell.Start || cell.End {
		return
	}
	cell.Wall = wall
}

// ToggleWall flips the wall flag at (x, y) under the same rules as SetWall.
func (g *Grid) ToggleWall(x, y int) {
	cell := g.At(x, y)
	if cell == nil || cell.Start || cell.End {
		return
	}
	cell.Wall = !cell.Wall
}

// MoveStart places the start flag on (x, y), clearing the previous holder
// and any wall on the target. Moving onto the end cell is a no-op.
func (g *Grid) MoveStart(x, y int) {
	cell := g.At(x, y)
	if cell == nil || cell.End {
		return
	}
	if g.hasStart {
		g.Cells[g.start.X][g.start.Y].Start = false
	}
	cell.Start = true
	cell.Wall = false
	g.start = Point{X: x, Y: y}
	g.hasStart = true
}

// MoveEnd places the end flag on (x, y), clearing the previous holder and
// any wall on the target. Moving onto the start cell is a no-op.
func (g *Grid) MoveEnd(x, y int) {
	cell := g.At(x, y)
	if cell == nil || cell.Start {
		return
	}
	if g.hasEnd {
		g.Cells[g.end.X][g.end.Y].End = false
	}
	cell.End = true
	cell.Wall = false
	g.end = Point{X: x, Y: y}
	g.hasEnd = true
}

// ResetMetadata clears all search metadata and visited/path flags in place,
// keeping the wall/start/end layout. Used between runs.
func (g *Grid) ResetMetadata() {
	for c := range g.Cells {
		for r := range g.Cells[c] {
			g.Cells[c][r].resetMetadata()
		}
	}
}

// ClearAll resets metadata and additionally removes every wall and the
// start/end placement.
func (g *Grid) ClearAll() {
	g.ResetMetadata()
	for c := range g.Cells {
		for r := range g.Cells[c] {
			g.Cells[c][r].Wall = false
			g.Cells[c][r].Start = false
			g.Cells[c][r].End = false
		}
	}
	g.hasStart = false
	g.hasEnd = false
}

// Clone returns a deep copy. The search engine works on clones so the live
// grid is only ever mutated by the animation sequencer.
func (g *Grid) Clone() *Grid {
	matrix := make([][]Cell, g.Cols)
	for c := range g.Cells {
		column := make([]Cell, g.Rows)
		copy(column, g.Cells[c])
		matrix[c] = column
	}
	return &Grid{
		Cols: g.Cols, Rows: g.Rows, Cells: matrix,
		start: g.start, end: g.end,
		hasStart: g.hasStart, hasEnd: g.hasEnd,
	}
}
