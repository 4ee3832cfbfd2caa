package telemetry

import (
	"math"
	"testing"
)

func TestDistribution(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	mean, std, p10, p50, p90 := Distribution(values)

	if math.Abs(mean-5.5) > 0.001 {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	if math.Abs(std-3.0277) > 0.001 {
		t.Errorf("std = %v, want ~3.0277", std)
	}
	if p10 != 1 {
		t.Errorf("p10 = %v, want 1", p10)
	}
	if p50 != 5 {
		t.Errorf("p50 = %v, want 5", p50)
	}
	if p90 != 9 {
		t.Errorf("p90 = %v, want 9", p90)
	}
}

func TestDistributionEmpty(t *testing.T) {
	mean, std, p10, p50, p90 := Distribution(nil)
	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty slice should return all zeros")
	}
}

func TestDistributionSingle(t *testing.T) {
	mean, std, p10, p50, p90 := Distribution([]float64{3.5})
	if mean != 3.5 || p10 != 3.5 || p50 != 3.5 || p90 != 3.5 {
		t.Errorf("single element stats = %v/%v/%v/%v, want all 3.5", mean, p10, p50, p90)
	}
	if std != 0 {
		t.Errorf("std = %v for single element, want 0", std)
	}
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(60, 60)

	for tick := int64(1); tick <= 60; tick++ {
		c.RecordTick(1)
		if tick < 60 && c.WindowDone(tick) {
			t.Fatalf("window closed early at tick %d", tick)
		}
	}
	if !c.WindowDone(60) {
		t.Fatal("window not closed at tick 60")
	}
	c.RecordRecreation()

	stats := c.Flush(60, 80, []float64{0.1, 0.2, 0.3}, []float64{100, 200}, 0.25)
	if stats.WindowStartTick != 0 || stats.WindowEndTick != 60 {
		t.Errorf("window = [%d,%d], want [0,60]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.Wraps != 60 {
		t.Errorf("wraps = %d, want 60", stats.Wraps)
	}
	if stats.Recreations != 1 {
		t.Errorf("recreations = %d, want 1", stats.Recreations)
	}
	if stats.ParticleCount != 80 {
		t.Errorf("particles = %d, want 80", stats.ParticleCount)
	}
	if math.Abs(stats.SimTimeSec-1.0) > 1e-9 {
		t.Errorf("sim_time = %v, want 1.0", stats.SimTimeSec)
	}
	if math.Abs(stats.SpeedMean-0.2) > 1e-9 {
		t.Errorf("speed_mean = %v, want 0.2", stats.SpeedMean)
	}
	if stats.InfluencedFrac != 0.25 {
		t.Errorf("influenced_frac = %v, want 0.25", stats.InfluencedFrac)
	}

	// Counters reset after flush
	next := c.Flush(120, 80, nil, nil, 0)
	if next.Wraps != 0 || next.Recreations != 0 {
		t.Errorf("counters not reset: wraps=%d recreations=%d", next.Wraps, next.Recreations)
	}
	if next.WindowStartTick != 60 {
		t.Errorf("next window start = %d, want 60", next.WindowStartTick)
	}
}
