package telemetry

import (
	"log/slog"
	"sort"
	"time"
)

// Phase names for the engine tick.
const (
	PhaseMotion = "motion"
	PhaseRender = "render"
	PhaseGrain  = "grain"
)

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector tracks tick timing over a rolling window.
type PerfCollector struct {
	windowSize  int
	samples     []PerfSample
	writeIndex  int
	sampleCount int

	currentPhases map[string]time.Duration
	tickStart     time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a phase, closing the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndTick finishes the current tick and records the sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples[p.writeIndex] = PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Phases:       p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// Total returns the average tick duration over the window.
func (p *PerfCollector) Total() time.Duration {
	if p.sampleCount == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < p.sampleCount; i++ {
		sum += p.samples[i].TickDuration
	}
	return sum / time.Duration(p.sampleCount)
}

// Avg returns the average duration of one phase over the window.
func (p *PerfCollector) Avg(phase string) time.Duration {
	if p.sampleCount == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < p.sampleCount; i++ {
		sum += p.samples[i].Phases[phase]
	}
	return sum / time.Duration(p.sampleCount)
}

// SortedNames returns all phase names seen in the window, sorted.
func (p *PerfCollector) SortedNames() []string {
	seen := make(map[string]bool)
	for i := 0; i < p.sampleCount; i++ {
		for name := range p.samples[i].Phases {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Record holds the window averages as a CSV-ready row.
type Record struct {
	Tick     int64   `csv:"tick"`
	TotalUs  float64 `csv:"total_us"`
	MotionUs float64 `csv:"motion_us"`
	RenderUs float64 `csv:"render_us"`
	GrainUs  float64 `csv:"grain_us"`
}

// Snapshot returns the window averages for tick as one record.
func (p *PerfCollector) Snapshot(tick int64) Record {
	us := func(d time.Duration) float64 { return float64(d.Nanoseconds()) / 1000 }
	return Record{
		Tick:     tick,
		TotalUs:  us(p.Total()),
		MotionUs: us(p.Avg(PhaseMotion)),
		RenderUs: us(p.Avg(PhaseRender)),
		GrainUs:  us(p.Avg(PhaseGrain)),
	}
}

// LogStats emits the window averages as a structured log record.
func (p *PerfCollector) LogStats(tick int64) {
	total := p.Total()
	args := []any{"tick", tick, "total", total.Round(time.Microsecond)}
	for _, name := range p.SortedNames() {
		args = append(args, name, p.Avg(name).Round(time.Microsecond))
	}
	slog.Info("perf", args...)
}
