package model

import "math/rand"

// ScatterWalls drops clustered random walls on the grid by running short
// random walks, one per cluster. Start and end cells are left open.
func (g *Grid) ScatterWalls(rng *rand.Rand, clusters, steps int, density float64) {
	dirs := []Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for c := 0; c < clusters; c++ {
		p := Point{X: rng.Intn(g.Cols), Y: rng.Intn(g.Rows)}
		for s := 0; s < steps; s++ {
			if rng.Float64() < density {
				g.SetWall(p.X, p.Y, true)
			}
			d := dirs[rng.Intn(len(dirs))]
			np := Point{X: p.X + d.X, Y: p.Y + d.Y}
			if g.InBounds(np.X, np.Y) {
				p = np
			}
		}
	}
}
