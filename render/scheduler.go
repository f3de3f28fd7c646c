package render

import (
	"context"
	"sync"
	"time"
)

// Scheduler runs a callback once on the next animation frame.
type Scheduler interface {
	ScheduleNext(frame func())
	Stop()
}

// FrameScheduler is driven by a host that calls RunFrame once per tick.
type FrameScheduler struct {
	mu      sync.Mutex
	pending func()
	stopped bool
}

func (f *FrameScheduler) ScheduleNext(frame func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return
	}
	f.pending = frame
}

func (f *FrameScheduler) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	f.pending = nil
}

// Stopped reports whether Stop was called.
func (f *FrameScheduler) Stopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

// RunFrame runs the pending callback, if any. Callbacks scheduled while it
// runs wait for the next call.
func (f *FrameScheduler) RunFrame() bool {
	f.mu.Lock()
	frame := f.pending
	f.pending = nil
	f.mu.Unlock()
	if frame == nil {
		return false
	}
	frame()
	return true
}

// TickerScheduler runs frames on a fixed interval from Run's goroutine.
type TickerScheduler struct {
	FrameScheduler
	interval time.Duration
	done     chan struct{}
	once     sync.Once
}

func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	return &TickerScheduler{
		interval: interval,
		done:     make(chan struct{}),
	}
}

func (t *TickerScheduler) Stop() {
	t.FrameScheduler.Stop()
	t.once.Do(func() { close(t.done) })
}

// Run blocks until the context ends or Stop is called.
func (t *TickerScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.done:
			return nil
		case <-ticker.C:
			t.RunFrame()
		}
	}
}
