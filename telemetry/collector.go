package telemetry

// Collector accumulates per-tick counters and closes stats windows at a
// fixed tick interval.
type Collector struct {
	windowTicks int64
	tickRate    float64 // ticks per second, for sim-time conversion

	windowStart int64
	wraps       int
	recreations int
}

// NewCollector creates a collector closing a window every windowTicks ticks.
func NewCollector(windowTicks int64, tickRate float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Collector{windowTicks: windowTicks, tickRate: tickRate}
}

// RecordTick accumulates one tick's counters.
func (c *Collector) RecordTick(wraps int) {
	c.wraps += wraps
}

// RecordRecreation counts a resize-triggered field recreation.
func (c *Collector) RecordRecreation() {
	c.recreations++
}

// WindowDone reports whether the current window closes at tick.
func (c *Collector) WindowDone(tick int64) bool {
	return tick-c.windowStart >= c.windowTicks
}

// Flush closes the current window. The caller supplies the end-of-window
// field samples: per-particle drift speeds and pointer distances, plus the
// fraction of particles inside the attraction radius.
func (c *Collector) Flush(tick int64, particles int, speeds, pointerDists []float64, influencedFrac float64) WindowStats {
	s := WindowStats{
		WindowStartTick: c.windowStart,
		WindowEndTick:   tick,
		SimTimeSec:      float64(tick) / c.tickRate,
		ParticleCount:   particles,
		Wraps:           c.wraps,
		Recreations:     c.recreations,
		InfluencedFrac:  influencedFrac,
	}
	s.SpeedMean, s.SpeedStd, s.SpeedP10, s.SpeedP50, s.SpeedP90 = Distribution(speeds)
	s.PointerDistMean, _, _, s.PointerDistP50, _ = Distribution(pointerDists)

	c.windowStart = tick
	c.wraps = 0
	c.recreations = 0
	return s
}
