package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/pathviz/model"
	"github.com/zucenko/pathviz/search"
)

type recordingNotifier struct {
	errors    []string
	successes []string
}

func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }
func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }

func smallRun(t *testing.T) (*model.Grid, search.Result) {
	t.Helper()
	g := model.New(7, 3, model.Point{X: 1, Y: 1}, model.Point{X: 5, Y: 1})
	result, err := search.AStar(g)
	require.NoError(t, err)
	return g, result
}

func TestStepOrdering(t *testing.T) {
	g, result := smallRun(t)
	notifier := &recordingNotifier{}
	seq := New(g, result, WithNotifier(notifier))

	var steps []Step
	for {
		step, ok := seq.StepOne()
		if !ok {
			break
		}
		steps = append(steps, step)
	}

	require.True(t, seq.Done())
	require.NotEmpty(t, steps)

	// every visited transition happens before the first path transition
	sawPath := false
	for _, step := range steps {
		if step.Kind == StepPath {
			sawPath = true
		} else {
			assert.False(t, sawPath, "visited step after a path step")
		}
	}
	assert.True(t, sawPath)

	start, _ := g.Start()
	end, _ := g.End()
	assert.False(t, g.At(start.X, start.Y).Visited)
	assert.False(t, g.At(start.X, start.Y).Path)
	assert.False(t, g.At(end.X, end.Y).Visited)
	assert.False(t, g.At(end.X, end.Y).Path)

	for _, step := range steps {
		cell := g.At(step.Cell.X, step.Cell.Y)
		switch step.Kind {
		case StepVisited:
			assert.True(t, cell.Visited)
		case StepPath:
			assert.True(t, cell.Path)
		}
	}
}

func TestAdvancePacing(t *testing.T) {
	g, result := smallRun(t)
	seq := New(g, result,
		WithVisitInterval(10*time.Millisecond),
		WithTraceInterval(40*time.Millisecond))

	applied, done := seq.Advance(5 * time.Millisecond)
	assert.Empty(t, applied, "nothing due yet")
	assert.False(t, done)

	applied, done = seq.Advance(5 * time.Millisecond)
	require.Len(t, applied, 1, "one visit interval elapsed")
	assert.Equal(t, StepVisited, applied[0].Kind)
	assert.False(t, done)

	applied, _ = seq.Advance(30 * time.Millisecond)
	require.Len(t, applied, 2, "the two remaining visited cells")

	// path steps wait for the longer trace interval
	applied, _ = seq.Advance(10 * time.Millisecond)
	assert.Empty(t, applied)
	applied, _ = seq.Advance(20 * time.Millisecond)
	require.Len(t, applied, 1)
	assert.Equal(t, StepPath, applied[0].Kind)
}

func TestAdvanceRunsToCompletion(t *testing.T) {
	g, result := smallRun(t)
	notifier := &recordingNotifier{}
	seq := New(g, result, WithNotifier(notifier))

	var total int
	var done bool
	for i := 0; i < 10000 && !done; i++ {
		var applied []Step
		applied, done = seq.Advance(10 * time.Millisecond)
		total += len(applied)
		if !done {
			assert.Empty(t, notifier.successes, "stats report only after the replay finishes")
		}
	}

	require.True(t, done)
	require.Len(t, notifier.successes, 1)
	assert.Contains(t, notifier.successes[0], result.Algorithm)
	assert.Empty(t, notifier.errors)

	// a later tick is a no-op and does not report again
	applied, done := seq.Advance(time.Second)
	assert.Empty(t, applied)
	assert.True(t, done)
	require.Len(t, notifier.successes, 1)

	stats := seq.Stats()
	assert.Equal(t, result.Algorithm, stats.Algorithm)
	assert.Equal(t, result.NodesExplored(), stats.NodesExplored)
	assert.Equal(t, result.PathLength(), stats.PathLength)
}
