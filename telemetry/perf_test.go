package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorPhases(t *testing.T) {
	p := NewPerfCollector(10)

	for i := 0; i < 3; i++ {
		p.StartTick()
		p.StartPhase(PhaseMotion)
		time.Sleep(2 * time.Millisecond)
		p.StartPhase(PhaseGrain)
		time.Sleep(time.Millisecond)
		p.EndTick()
	}

	if total := p.Total(); total < 3*time.Millisecond {
		t.Errorf("total = %v, want at least 3ms", total)
	}
	if motion := p.Avg(PhaseMotion); motion < 2*time.Millisecond {
		t.Errorf("motion avg = %v, want at least 2ms", motion)
	}
	if grain := p.Avg(PhaseGrain); grain < time.Millisecond {
		t.Errorf("grain avg = %v, want at least 1ms", grain)
	}

	names := p.SortedNames()
	if len(names) != 2 || names[0] != PhaseGrain || names[1] != PhaseMotion {
		t.Errorf("SortedNames() = %v, want [grain motion]", names)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	p := NewPerfCollector(10)
	if p.Total() != 0 {
		t.Errorf("Total() = %v on empty collector, want 0", p.Total())
	}
	if p.Avg(PhaseMotion) != 0 {
		t.Errorf("Avg() = %v on empty collector, want 0", p.Avg(PhaseMotion))
	}
	if names := p.SortedNames(); len(names) != 0 {
		t.Errorf("SortedNames() = %v on empty collector", names)
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	p := NewPerfCollector(4)
	// Overfill the window; only the last windowSize samples count.
	for i := 0; i < 10; i++ {
		p.StartTick()
		p.StartPhase(PhaseMotion)
		p.EndTick()
	}
	if p.sampleCount != 4 {
		t.Errorf("sampleCount = %d, want window size 4", p.sampleCount)
	}
}

func TestPerfSnapshot(t *testing.T) {
	p := NewPerfCollector(10)
	p.StartTick()
	p.StartPhase(PhaseMotion)
	time.Sleep(time.Millisecond)
	p.EndTick()

	rec := p.Snapshot(123)
	if rec.Tick != 123 {
		t.Errorf("tick = %d, want 123", rec.Tick)
	}
	if rec.MotionUs < 1000 {
		t.Errorf("motion_us = %v, want at least 1000", rec.MotionUs)
	}
	if rec.TotalUs < rec.MotionUs {
		t.Errorf("total_us %v below motion_us %v", rec.TotalUs, rec.MotionUs)
	}
}
