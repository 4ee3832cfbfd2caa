package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/alohaaki7/liquidventures/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir           string
	telemetryFile *os.File
	perfFile      *os.File

	telemetryHeaderWritten bool
	perfHeaderWritten      bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled); a nil manager is
// safe to use.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	om.telemetryFile = f

	f, err = os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		om.telemetryFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry appends a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}
	if !om.telemetryHeaderWritten {
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		om.telemetryHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.telemetryFile); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// WritePerf appends a perf record to perf.csv.
func (om *OutputManager) WritePerf(rec Record) error {
	if om == nil {
		return nil
	}

	records := []Record{rec}
	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() {
	if om == nil {
		return
	}
	if om.telemetryFile != nil {
		om.telemetryFile.Close()
	}
	if om.perfFile != nil {
		om.perfFile.Close()
	}
}
