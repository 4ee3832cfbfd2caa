// Package telemetry aggregates tick statistics and timing for the engine.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated field statistics for one stats window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	ParticleCount int `csv:"particles"`
	Wraps         int `csv:"wraps"`
	Recreations   int `csv:"recreations"`

	// Drift speed distribution over live particles, sampled at window end
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Pointer-to-particle distance distribution, sampled at window end
	PointerDistMean float64 `csv:"pointer_dist_mean"`
	PointerDistP50  float64 `csv:"pointer_dist_p50"`

	// Fraction of particles inside the attraction radius at window end
	InfluencedFrac float64 `csv:"influenced_frac"`
}

// Distribution computes mean, standard deviation, and the 10/50/90
// percentiles of values. Returns zeros for an empty slice.
func Distribution(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if n > 1 {
		std = stat.StdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// Log emits the window stats as a structured log record.
func (s WindowStats) Log() {
	slog.Info("window stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"particles", s.ParticleCount,
		"wraps", s.Wraps,
		"recreations", s.Recreations,
		"speed_mean", s.SpeedMean,
		"speed_p50", s.SpeedP50,
		"pointer_dist_mean", s.PointerDistMean,
		"influenced_frac", s.InfluencedFrac,
	)
}
