package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

// manualScheduler drives ticks by hand, standing in for a display's frame
// callback.
type manualScheduler struct {
	tick    func()
	running bool
}

func (s *manualScheduler) Start(tick func()) {
	s.tick = tick
	s.running = true
}

func (s *manualScheduler) Stop() {
	s.running = false
}

func (s *manualScheduler) fire(n int) {
	for i := 0; i < n; i++ {
		if s.running {
			s.tick()
		}
	}
}

func TestLoopTicksWhileVisible(t *testing.T) {
	cfg := testConfig(t)
	e := New(Options{Width: 640, Height: 480, Seed: 9, Config: cfg})
	sched := &manualScheduler{}

	wrapTotal := 0
	l := NewLoop(e, sched, func(wraps int, _ bool) { wrapTotal += wraps })
	l.Start()

	sched.fire(10)
	if e.Tick() != 10 {
		t.Errorf("tick = %d after 10 fires, want 10", e.Tick())
	}
	if wrapTotal < 0 {
		t.Errorf("wrap total = %d", wrapTotal)
	}
}

func TestLoopPauseStopsScheduling(t *testing.T) {
	cfg := testConfig(t)
	e := New(Options{Width: 640, Height: 480, Seed: 9, Config: cfg})
	sched := &manualScheduler{}
	l := NewLoop(e, sched, nil)
	l.Start()

	sched.fire(5)
	l.SetVisible(false)
	if sched.running {
		t.Error("scheduler still running after visibility lost")
	}
	sched.fire(100)
	if e.Tick() != 5 {
		t.Errorf("tick = %d while hidden, want 5", e.Tick())
	}

	// Resume restarts the schedule; no backlog is replayed.
	l.SetVisible(true)
	if !sched.running {
		t.Error("scheduler not running after visibility restored")
	}
	sched.fire(1)
	if e.Tick() != 6 {
		t.Errorf("tick = %d after resume + 1 fire, want 6", e.Tick())
	}
}

func TestLoopNilEngineIsNoOp(t *testing.T) {
	sched := &manualScheduler{}
	l := NewLoop(nil, sched, nil)
	l.Start()
	if sched.running {
		t.Error("scheduler started for a nil engine")
	}
	l.SetVisible(true)
	l.SetVisible(false)
	l.Stop()
}

func TestTickerSchedulerStartStop(t *testing.T) {
	s := NewTickerScheduler(1000)

	var count atomic.Int64
	s.Start(func() { count.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for count.Load() < 5 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if count.Load() < 5 {
		t.Fatalf("only %d ticks before deadline", count.Load())
	}

	s.Stop()
	at := count.Load()
	time.Sleep(50 * time.Millisecond)
	if got := count.Load(); got != at {
		t.Errorf("ticks advanced from %d to %d after Stop", at, got)
	}
}

// The headless host polls Tick from its own goroutine while a ticker
// scheduler steps the engine, so the tick counter must be safe to read
// across goroutines.
func TestTickVisibleAcrossGoroutines(t *testing.T) {
	cfg := testConfig(t)
	e := New(Options{Width: 640, Height: 480, Seed: 9, Config: cfg})

	l := NewLoop(e, NewTickerScheduler(1000), nil)
	l.Start()

	deadline := time.Now().Add(2 * time.Second)
	for e.Tick() < 5 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	l.Stop()

	if e.Tick() < 5 {
		t.Fatalf("only %d ticks before deadline", e.Tick())
	}
}

func TestLoopReportsRecreation(t *testing.T) {
	cfg := testConfig(t)
	e := New(Options{Width: 640, Height: 480, Seed: 9, Config: cfg})
	sched := &manualScheduler{}

	recreations := 0
	l := NewLoop(e, sched, func(_ int, recreated bool) {
		if recreated {
			recreations++
		}
	})
	l.Start()

	sched.fire(3)
	e.Resize(320, 240)
	sched.fire(3)

	if recreations != 1 {
		t.Errorf("recreations = %d after one resize, want 1", recreations)
	}
}

func TestTickerSchedulerDoubleStart(t *testing.T) {
	s := NewTickerScheduler(1000)

	var count atomic.Int64
	s.Start(func() { count.Add(1) })
	// Second Start must not spawn a second ticker goroutine.
	s.Start(func() { count.Add(1000000) })

	deadline := time.Now().Add(2 * time.Second)
	for count.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	s.Stop()

	if count.Load() >= 1000000 {
		t.Error("second Start replaced the running tick callback")
	}
	if count.Load() < 3 {
		t.Errorf("only %d ticks before deadline", count.Load())
	}
}
