// Package config provides configuration loading and access for the glow field.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Palette   []PaletteEntry  `yaml:"palette"`
	Pointer   PointerConfig   `yaml:"pointer"`
	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// FieldConfig holds particle field creation parameters.
type FieldConfig struct {
	ParticleCount int     `yaml:"particle_count"`
	SizeMin       float64 `yaml:"size_min"`      // glow radius lower bound
	SizeMax       float64 `yaml:"size_max"`      // glow radius upper bound
	AmplitudeMin  float64 `yaml:"amplitude_min"` // oscillation magnitude lower bound
	AmplitudeMax  float64 `yaml:"amplitude_max"` // oscillation magnitude upper bound
	DriftMax      float64 `yaml:"drift_max"`     // per-axis drift in [-drift_max, drift_max]
}

// PaletteEntry is one translucent tint color for particles.
type PaletteEntry struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// PointerConfig holds pointer smoothing and attraction parameters.
type PointerConfig struct {
	SmoothingFactor float64 `yaml:"smoothing_factor"` // exponential approach rate, (0,1]
	InfluenceRadius float64 `yaml:"influence_radius"` // attraction cutoff distance
	AttractionGain  float64 `yaml:"attraction_gain"`  // scale of the attraction displacement
}

// RenderConfig holds frame rendering parameters.
type RenderConfig struct {
	FadeAlpha     int     `yaml:"fade_alpha"`     // trail fade fill opacity, 0-255
	GlowMidAlpha  int     `yaml:"glow_mid_alpha"` // mid-stop opacity of the radial glow, 0-255
	GrainStride   int     `yaml:"grain_stride"`   // every Nth pixel gets grain
	GrainStrength int     `yaml:"grain_strength"` // max channel delta per sampled pixel
	TimeStep      float64 `yaml:"time_step"`      // oscillation clock advance per tick
	WashScale     float64 `yaml:"wash_scale"`     // background wash noise frequency
	WashSpeed     float64 `yaml:"wash_speed"`     // background wash animation speed
	WashStrength  int     `yaml:"wash_strength"`  // background wash max opacity, 0-255
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
	PerfWindow  int     `yaml:"perf_window"`  // ticks in the perf rolling window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	SizeMin32      float32
	SizeMax32      float32
	AmplitudeMin32 float32
	AmplitudeMax32 float32
	DriftMax32     float32
	Smoothing32    float32
	Radius32       float32
	Gain32         float32
	TimeStep32     float32
	Colors         [][4]uint8 // palette as RGBA tuples
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// Recompute refreshes the derived block after in-place edits, as the
// preview tool does when a slider changes.
func (c *Config) Recompute() {
	c.computeDerived()
}

// computeDerived calculates values derived from loaded config and clamps
// parameters into their valid ranges.
func (c *Config) computeDerived() {
	// Smoothing factor must stay in (0,1]; anything outside degenerates to
	// no smoothing at all or to overshoot.
	if c.Pointer.SmoothingFactor <= 0 || c.Pointer.SmoothingFactor > 1 {
		c.Pointer.SmoothingFactor = 1
	}
	c.Render.FadeAlpha = clampChannel(c.Render.FadeAlpha)
	c.Render.GlowMidAlpha = clampChannel(c.Render.GlowMidAlpha)
	c.Render.GrainStrength = clampChannel(c.Render.GrainStrength)
	c.Render.WashStrength = clampChannel(c.Render.WashStrength)
	if c.Render.GrainStride < 1 {
		c.Render.GrainStride = 1
	}

	// Synthesize the default palette if none specified
	if len(c.Palette) == 0 {
		c.Palette = []PaletteEntry{
			{R: 139, G: 92, B: 246, A: 153},
			{R: 99, G: 102, B: 241, A: 128},
			{R: 168, G: 85, B: 247, A: 102},
			{R: 79, G: 70, B: 229, A: 128},
			{R: 147, G: 51, B: 234, A: 77},
		}
	}

	c.Derived.SizeMin32 = float32(c.Field.SizeMin)
	c.Derived.SizeMax32 = float32(c.Field.SizeMax)
	c.Derived.AmplitudeMin32 = float32(c.Field.AmplitudeMin)
	c.Derived.AmplitudeMax32 = float32(c.Field.AmplitudeMax)
	c.Derived.DriftMax32 = float32(c.Field.DriftMax)
	c.Derived.Smoothing32 = float32(c.Pointer.SmoothingFactor)
	c.Derived.Radius32 = float32(c.Pointer.InfluenceRadius)
	c.Derived.Gain32 = float32(c.Pointer.AttractionGain)
	c.Derived.TimeStep32 = float32(c.Render.TimeStep)

	c.Derived.Colors = make([][4]uint8, len(c.Palette))
	for i, p := range c.Palette {
		c.Derived.Colors[i] = [4]uint8{p.R, p.G, p.B, p.A}
	}
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
