package render

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazeview/model"
)

// Loop repaints the scene every frame, whether or not anything changed.
// Payloads sent on intake are applied at the start of the next frame, on
// the frame goroutine, so a frame always sees whole updates.
type Loop struct {
	surface Surface
	sched   Scheduler
	intake  <-chan model.Payload
	opts    Options
	log     *log.Entry

	scene   Scene
	sized   bool
	ready   bool
	frames  uint64
	stopped atomic.Bool
}

type Option func(*Loop)

func WithOptions(o Options) Option {
	return func(l *Loop) { l.opts = o }
}

func WithLogger(e *log.Entry) Option {
	return func(l *Loop) { l.log = e }
}

// Setup installs the render loop on surface and schedules its first frame.
func Setup(surface Surface, sched Scheduler, intake <-chan model.Payload, opts ...Option) *Loop {
	l := &Loop{
		surface: surface,
		sched:   sched,
		intake:  intake,
		opts:    DefaultOptions,
		log:     log.WithField("component", "render"),
	}
	for _, o := range opts {
		o(l)
	}
	sched.ScheduleNext(l.frame)
	return l
}

func (l *Loop) frame() {
	if l.stopped.Load() {
		return
	}
	l.drain()
	Resize(l.surface)
	layout := Paint(l.surface, &l.scene, l.opts)
	if layout.Ready != l.ready {
		l.ready = layout.Ready
		l.log.WithField("ready", l.ready).Debug("render state changed")
	}
	l.frames++
	l.sched.ScheduleNext(l.frame)
}

func (l *Loop) drain() {
	for {
		select {
		case p, ok := <-l.intake:
			if !ok {
				l.intake = nil
				return
			}
			if l.scene.Apply(p) {
				m := l.scene.Maze
				l.log.WithFields(log.Fields{
					"width":  m.Width,
					"height": m.Height,
					"cells":  len(m.Cells),
				}).Debug("maze replaced")
			}
		default:
			return
		}
	}
}

// ViewportChanged refreshes the backing resolution ahead of the next frame.
func (l *Loop) ViewportChanged() {
	Resize(l.surface)
	l.sized = true
}

// Layout answers a host asking for its screen size. The surface is resized
// first when the viewport changed or was never sized. The answer is at
// least 1x1.
func (l *Loop) Layout(changed bool) (int, int) {
	if changed || !l.sized {
		l.ViewportChanged()
	}
	w, h := l.surface.Resolution()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Stop ends the loop after the current frame.
func (l *Loop) Stop() {
	if l.stopped.Swap(true) {
		return
	}
	l.sched.Stop()
	l.log.Debug("render loop stopped")
}

// Scene returns the current scene. Only call it from the frame goroutine.
func (l *Loop) Scene() Scene {
	return l.scene
}

// Frames counts painted frames. Only call it from the frame goroutine.
func (l *Loop) Frames() uint64 {
	return l.frames
}
