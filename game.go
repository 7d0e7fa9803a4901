package main

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/pathviz/anim"
	"github.com/zucenko/pathviz/model"
	"github.com/zucenko/pathviz/search"
)

type GameState int

const (
	IDLE GameState = iota + 1
	ANIMATING
)

func (s GameState) Name() string {
	switch s {
	case IDLE:
		return "IDLE"
	case ANIMATING:
		return "ANIMATING"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type Tool int

const (
	ToolWall Tool = iota
	ToolStart
	ToolEnd
)

func (t Tool) String() string {
	switch t {
	case ToolWall:
		return "Wall"
	case ToolStart:
		return "Start"
	case ToolEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Stroke tracks one wall-painting drag. Each cell toggles once per stroke,
// no matter how often the cursor passes over it.
type Stroke struct {
	painted map[model.Point]struct{}
}

func NewStroke() *Stroke {
	return &Stroke{painted: map[model.Point]struct{}{}}
}

func (s *Stroke) Visit(g *model.Grid, p model.Point) {
	if _, seen := s.painted[p]; seen {
		return
	}
	s.painted[p] = struct{}{}
	g.ToggleWall(p.X, p.Y)
}

type Game struct {
	State GameState
	Grid  *model.Grid

	seq  *anim.Sequencer
	tool Tool

	stroke *Stroke
	toasts *ToastStack

	stats     anim.Stats
	haveStats bool

	pixel *ebiten.Image
	rng   *rand.Rand
}

func NewGame() *Game {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(hexRGB(0xffffff))
	return &Game{
		State:  IDLE,
		Grid:   model.New(gridCols, gridRows, defaultStart, defaultEnd),
		tool:   ToolWall,
		toasts: &ToastStack{},
		pixel:  pixel,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Update ticks at the fixed TPS. It is the single control thread: the
// sequencer only mutates the grid here, between frames.
func (g *Game) Update() error {
	const dt = time.Second / 60

	g.toasts.Update(1.0 / 60)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1) || inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.tool = ToolStart
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2) || inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.tool = ToolEnd
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3) || inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.tool = ToolWall
	}

	if g.State == ANIMATING {
		_, done := g.seq.Advance(dt)
		if done {
			g.stats = g.seq.Stats()
			g.haveStats = true
			g.seq = nil
			g.State = IDLE
		}
		// structural edits and run requests are ignored while a run
		// is in flight
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.runSearch(search.Dijkstra)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.runSearch(search.AStar)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.Grid.ResetMetadata()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.Grid.ClearAll()
		g.Grid.MoveStart(defaultStart.X, defaultStart.Y)
		g.Grid.MoveEnd(defaultEnd.X, defaultEnd.Y)
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.Grid.ResetMetadata()
		g.Grid.ScatterWalls(g.rng, 8, 200, 0.25)
	}

	g.updatePointer()
	return nil
}

func (g *Game) updatePointer() {
	cx, cy := ebiten.CursorPosition()
	p := model.Point{X: cx / cellSize, Y: cy / cellSize}
	inGrid := cx >= 0 && cy >= 0 && g.Grid.InBounds(p.X, p.Y)

	switch g.tool {
	case ToolWall:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.stroke = NewStroke()
		}
		if g.stroke != nil && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && inGrid {
			g.stroke.Visit(g.Grid, p)
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			g.stroke = nil
		}
	case ToolStart:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inGrid {
			g.Grid.MoveStart(p.X, p.Y)
		}
	case ToolEnd:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inGrid {
			g.Grid.MoveEnd(p.X, p.Y)
		}
	}
}

func (g *Game) runSearch(run func(*model.Grid) (search.Result, error)) {
	if g.State != IDLE {
		return
	}
	g.Grid.ResetMetadata()
	result, err := run(g.Grid)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrMissingEndpoints):
			g.toasts.Error("Place both start and end cells first")
		case errors.Is(err, search.ErrNoPathFound):
			g.toasts.Error("No path found")
		default:
			g.toasts.Error(err.Error())
		}
		return
	}
	log.Printf("%s finished: %d explored, path %d",
		result.Algorithm, result.NodesExplored(), result.PathLength())
	g.seq = anim.New(g.Grid, result, anim.WithNotifier(g.toasts))
	g.State = ANIMATING
}

func cellColor(cell *model.Cell) (color.Color, bool) {
	switch {
	case cell.Start:
		return colorStart, true
	case cell.End:
		return colorEnd, true
	case cell.Path:
		return colorPath, true
	case cell.Visited:
		return colorVisited, true
	case cell.Wall:
		return colorWall, true
	default:
		return nil, false
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	for c := 0; c < g.Grid.Cols; c++ {
		for r := 0; r < g.Grid.Rows; r++ {
			clr, ok := cellColor(&g.Grid.Cells[c][r])
			if !ok {
				continue
			}
			g.fillRect(screen, float64(c*cellSize), float64(r*cellSize),
				cellSize, cellSize, clr)
		}
	}

	for x := 0; x <= g.Grid.Cols; x++ {
		g.fillRect(screen, float64(x*cellSize), 0, 1, gridRows*cellSize, colorGridline)
	}
	for y := 0; y <= g.Grid.Rows; y++ {
		g.fillRect(screen, 0, float64(y*cellSize), gridCols*cellSize, 1, colorGridline)
	}

	g.drawHUD(screen)
	g.toasts.Draw(screen)
}

func (g *Game) fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	r, gr, b, a := clr.RGBA()
	op.ColorScale.Scale(float32(r)/0xffff, float32(gr)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
	screen.DrawImage(g.pixel, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	game := NewGame()
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("pathviz")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
