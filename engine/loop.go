package engine

import (
	"sync"
	"time"
)

// Scheduler requests repeated ticks. Start begins requesting ticks and Stop
// ceases; there is no in-flight tick to cancel since each tick completes
// synchronously before the next is requested.
type Scheduler interface {
	Start(tick func())
	Stop()
}

// TickerScheduler paces ticks with a time.Ticker. Used by headless runs; the
// graphical host is paced by vsync instead and never needs one.
type TickerScheduler struct {
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewTickerScheduler creates a scheduler targeting the given ticks/second.
func NewTickerScheduler(tps int) *TickerScheduler {
	if tps < 1 {
		tps = 60
	}
	return &TickerScheduler{interval: time.Second / time.Duration(tps)}
}

// Start begins calling tick at the configured cadence on a dedicated
// goroutine. Calling Start while running is a no-op.
func (s *TickerScheduler) Start(tick func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func(stop chan struct{}, done chan struct{}) {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		defer close(done)
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				tick()
			}
		}
	}(s.stop, s.done)
}

// Stop ceases tick requests and waits for the current tick, if any, to
// finish.
func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop = nil
	s.done = nil
	s.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}

// Loop binds an engine to a scheduler: ticks run while the surface is
// visible, stop entirely while it is not, and the schedule restarts from
// scratch on resume rather than replaying missed frames.
type Loop struct {
	engine *Engine
	sched  Scheduler
	tick   func()
}

// NewLoop creates a loop. after may be nil; otherwise it runs after each
// step with the tick's boundary wrap count and recreation flag (render,
// telemetry).
func NewLoop(e *Engine, s Scheduler, after func(wraps int, recreated bool)) *Loop {
	l := &Loop{engine: e, sched: s}
	l.tick = func() {
		wraps, recreated := l.engine.Step()
		if after != nil {
			after(wraps, recreated)
		}
	}
	return l
}

// Start begins scheduling ticks. No-op for a nil engine.
func (l *Loop) Start() {
	if l.engine == nil {
		return
	}
	l.sched.Start(l.tick)
}

// Stop ceases scheduling.
func (l *Loop) Stop() {
	if l.engine == nil {
		return
	}
	l.sched.Stop()
}

// SetVisible propagates visibility to the engine and the schedule: hidden
// stops tick requests, visible restarts them.
func (l *Loop) SetVisible(visible bool) {
	if l.engine == nil {
		return
	}
	l.engine.SetVisible(visible)
	if visible {
		l.sched.Start(l.tick)
	} else {
		l.sched.Stop()
	}
}
