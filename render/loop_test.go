package render

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazeview/model"
)

func TestSceneApply(t *testing.T) {
	var s Scene
	assert.False(t, s.Maze.Ready())
	assert.Empty(t, s.Players)

	players := []model.Player{{X: 1, Name: "A"}}
	assert.True(t, s.Apply(model.Payload{Maze: []int64{2, 2, 0, 0, 1, 1}, Players: players}))
	assert.Equal(t, 2, s.Maze.Width)
	assert.Equal(t, players, s.Players)

	// players only: maze kept
	assert.False(t, s.Apply(model.Payload{Players: []model.Player{}}))
	assert.Equal(t, 2, s.Maze.Width)
	assert.NotNil(t, s.Players)
	assert.Empty(t, s.Players)

	// maze only: players kept
	s.Players = players
	assert.True(t, s.Apply(model.Payload{Maze: []int64{3, 1, 0, 0, 2, 0}}))
	assert.Equal(t, 3, s.Maze.Width)
	assert.Equal(t, players, s.Players)

	assert.False(t, s.Apply(model.Payload{}))
	assert.Equal(t, 3, s.Maze.Width)
	assert.Equal(t, players, s.Players)
}

func TestLoopRepaintsEveryFrame(t *testing.T) {
	r := newRecorder(100, 50)
	sched := &FrameScheduler{}
	intake := make(chan model.Payload, 4)
	loop := Setup(r, sched, intake)

	// nothing to draw yet
	require.True(t, sched.RunFrame())
	assert.Empty(t, r.ops)
	assert.Equal(t, 1, r.resizes)

	intake <- model.Payload{Maze: []int64{2, 1, 0, 0, 1, 0, 1}}
	require.True(t, sched.RunFrame())
	first := append([]op(nil), r.ops...)
	assert.Len(t, first, 5)

	r.reset()
	require.True(t, sched.RunFrame())
	assert.Equal(t, first, r.ops, "unchanged scene paints the same frame")
	assert.Equal(t, 3, r.resizes)
	assert.Equal(t, uint64(3), loop.Frames())
}

func TestLoopAppliesUpdatesInOrder(t *testing.T) {
	r := newRecorder(100, 100)
	sched := &FrameScheduler{}
	intake := make(chan model.Payload, 4)
	loop := Setup(r, sched, intake)

	intake <- model.Payload{Maze: []int64{2, 2, 0, 0, 1, 1}}
	intake <- model.Payload{Players: []model.Player{{Name: "A", Color: "#fff"}}}
	intake <- model.Payload{Players: []model.Player{{Name: "B", Color: "#fff"}}}
	sched.RunFrame()

	scene := loop.Scene()
	require.Len(t, scene.Players, 1)
	assert.Equal(t, "B", scene.Players[0].Name)
	assert.Equal(t, 2, scene.Maze.Width)

	var labels []string
	for _, o := range r.ops {
		if o.kind == "text" {
			labels = append(labels, o.text)
		}
	}
	assert.Equal(t, []string{"B"}, labels)
}

func TestLoopResize(t *testing.T) {
	r := newRecorder(100, 50)
	r.ratio = 2
	sched := &FrameScheduler{}
	loop := Setup(r, sched, nil)

	sched.RunFrame()
	w, h := r.Resolution()
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)

	r.displayW, r.displayH = 30.5, 10
	loop.ViewportChanged()
	w, h = r.Resolution()
	assert.Equal(t, 61, w)
	assert.Equal(t, 20, h)

	r.ratio = 0
	Resize(r)
	w, _ = r.Resolution()
	assert.Equal(t, 30, w)
}

func TestLoopLayout(t *testing.T) {
	r := newRecorder(100, 50)
	r.ratio = 2
	loop := Setup(r, &FrameScheduler{}, nil)

	// first ask sizes the surface even without a reported change
	w, h := loop.Layout(false)
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)
	assert.Equal(t, 1, r.resizes)

	loop.Layout(false)
	assert.Equal(t, 1, r.resizes)

	r.displayW, r.displayH = 40, 30
	w, h = loop.Layout(true)
	assert.Equal(t, 80, w)
	assert.Equal(t, 60, h)

	r.displayW, r.displayH = 0, 0
	w, h = loop.Layout(true)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestLoopStop(t *testing.T) {
	r := newRecorder(10, 10)
	sched := &FrameScheduler{}
	loop := Setup(r, sched, nil)

	require.True(t, sched.RunFrame())
	loop.Stop()
	loop.Stop()
	assert.True(t, sched.Stopped())
	assert.False(t, sched.RunFrame())
	assert.Equal(t, uint64(1), loop.Frames())
}

func TestLoopClosedIntake(t *testing.T) {
	r := newRecorder(10, 10)
	sched := &FrameScheduler{}
	intake := make(chan model.Payload, 1)
	intake <- model.Payload{Maze: []int64{1, 1, 0, 0, 0, 0}}
	close(intake)
	loop := Setup(r, sched, intake)

	sched.RunFrame()
	sched.RunFrame()
	assert.Equal(t, 1, loop.Scene().Maze.Width)
	assert.Equal(t, uint64(2), loop.Frames())
}

type countingSurface struct {
	*recorder
	resizes atomic.Int64
}

func (c *countingSurface) SetResolution(w, h int) {
	c.recorder.SetResolution(w, h)
	c.resizes.Add(1)
}

func TestTickerScheduler(t *testing.T) {
	s := &countingSurface{recorder: newRecorder(20, 20)}
	sched := NewTickerScheduler(time.Millisecond)
	intake := make(chan model.Payload, 1)
	intake <- model.Payload{Maze: []int64{2, 2, 0, 0, 1, 1}}
	loop := Setup(s, sched, intake)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- sched.Run(ctx) }()

	require.Eventually(t, func() bool { return s.resizes.Load() >= 3 }, 4*time.Second, time.Millisecond)
	loop.Stop()
	assert.NoError(t, <-done)
}

func TestTickerSchedulerContext(t *testing.T) {
	sched := NewTickerScheduler(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, context.Canceled, sched.Run(ctx))
}
