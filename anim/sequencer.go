// Package anim replays a finished search onto the live grid as a timed
// sequence of single-cell transitions. The sequencer is a pure step machine
// driven by ticks from the frontend loop, so the replay is deterministic and
// testable without any real timing.
package anim

import (
	"fmt"
	"time"

	"github.com/zucenko/pathviz/model"
	"github.com/zucenko/pathviz/search"
)

type StepKind int

const (
	StepVisited StepKind = iota + 1
	StepPath
)

func (k StepKind) Name() string {
	switch k {
	case StepVisited:
		return "VISITED"
	case StepPath:
		return "PATH"
	default:
		return fmt.Sprintf("N/A(%d)", k)
	}
}

// Step is one applied grid transition.
type Step struct {
	Cell model.Point
	Kind StepKind
}

// Notifier receives user-facing messages. Frontends plug in a toast overlay
// or a websocket writer.
type Notifier interface {
	Error(msg string)
	Success(msg string)
}

type Stats struct {
	Algorithm     string
	NodesExplored int
	PathLength    int
}

const (
	DefaultVisitInterval = 10 * time.Millisecond
	DefaultTraceInterval = 40 * time.Millisecond
)

// Sequencer owns the only mutation of the live grid while a run is in
// flight. It flags visited cells one at a time in exploration order, then
// path cells in path order, then reports final stats once.
type Sequencer struct {
	grid   *model.Grid
	result search.Result

	visitEvery time.Duration
	traceEvery time.Duration
	notifier   Notifier

	acc      time.Duration
	vi, pi   int
	done     bool
	reported bool
}

type Option func(*Sequencer)

func WithVisitInterval(d time.Duration) Option {
	return func(s *Sequencer) { s.visitEvery = d }
}

func WithTraceInterval(d time.Duration) Option {
	return func(s *Sequencer) { s.traceEvery = d }
}

func WithNotifier(n Notifier) Option {
	return func(s *Sequencer) { s.notifier = n }
}

func New(grid *model.Grid, result search.Result, options ...Option) *Sequencer {
	s := &Sequencer{
		grid:       grid,
		result:     result,
		visitEvery: DefaultVisitInterval,
		traceEvery: DefaultTraceInterval,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Sequencer) Done() bool { return s.done }

func (s *Sequencer) Stats() Stats {
	return Stats{
		Algorithm:     s.result.Algorithm,
		NodesExplored: s.result.NodesExplored(),
		PathLength:    s.result.PathLength(),
	}
}

// Advance consumes dt and applies every step that became due, in order.
// It reports completion through the notifier exactly once, only after the
// last path step has been applied.
func (s *Sequencer) Advance(dt time.Duration) (applied []Step, done bool) {
	if s.done {
		return nil, true
	}
	s.acc += dt
	for {
		interval := s.visitEvery
		if s.vi >= len(s.result.Visited) {
			interval = s.traceEvery
		}
		if s.acc < interval {
			break
		}
		s.acc -= interval
		step, ok := s.StepOne()
		if ok {
			applied = append(applied, step)
		}
		if s.done {
			break
		}
	}
	return applied, s.done
}

// StepOne applies the next pending transition and reports whether a cell
// actually changed (start/end cells keep their visual identity and are
// skipped). The sequence position always moves forward.
func (s *Sequencer) StepOne() (Step, bool) {
	for s.vi < len(s.result.Visited) {
		p := s.result.Visited[s.vi]
		s.vi++
		if cell := s.markable(p); cell != nil {
			cell.Visited = true
			return Step{Cell: p, Kind: StepVisited}, true
		}
	}
	for s.pi < len(s.result.Path) {
		p := s.result.Path[s.pi]
		s.pi++
		if cell := s.markable(p); cell != nil {
			cell.Path = true
			s.finishIfDrained()
			return Step{Cell: p, Kind: StepPath}, true
		}
	}
	s.finishIfDrained()
	return Step{}, false
}

func (s *Sequencer) markable(p model.Point) *model.Cell {
	cell := s.grid.At(p.X, p.Y)
	if cell == nil || cell.Start || cell.End {
		return nil
	}
	return cell
}

func (s *Sequencer) finishIfDrained() {
	if s.vi < len(s.result.Visited) || s.pi < len(s.result.Path) {
		return
	}
	s.done = true
	if s.notifier != nil && !s.reported {
		s.reported = true
		stats := s.Stats()
		s.notifier.Success(fmt.Sprintf("%s: explored %d cells, path length %d",
			stats.Algorithm, stats.NodesExplored, stats.PathLength))
	}
}
