package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultConfigPath is the path to the canonical analysis defaults file.
// The Get* methods return the same values when a field is absent.
const DefaultConfigPath = "config/analysis.defaults.json"

const maxConfigSize = 1 * 1024 * 1024 // 1MB

// AnalysisConfig controls one analysis run. Every field is optional; nil
// means "use the default".
type AnalysisConfig struct {
	// Output
	ReportFilename *string `json:"report_filename,omitempty"`
	ChartsDir      *string `json:"charts_dir,omitempty"` // "" disables chart export
	HistoryDB      *string `json:"history_db,omitempty"` // "" disables the history index

	// Optional metrics collaborators. false means the section is absent
	// from the report.
	GaitMetrics       *bool `json:"gait_metrics,omitempty"`
	FootMetrics       *bool `json:"foot_metrics,omitempty"`
	PositionMetrics2D *bool `json:"position_metrics_2d,omitempty"`
	PositionMetrics3D *bool `json:"position_metrics_3d,omitempty"`

	// Diagnostics
	MaxLoggedFaultsPerFile *int `json:"max_logged_faults_per_file,omitempty"`

	PlacementSeparator *string `json:"placement_separator,omitempty"`
}

// Helper functions to create pointers
func ptrBool(v bool) *bool       { return &v }
func ptrString(v string) *string { return &v }
func ptrInt(v int) *int          { return &v }

// EmptyAnalysisConfig returns an AnalysisConfig with all fields unset.
func EmptyAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// DefaultAnalysisConfig returns a config with every field populated with
// its default.
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		ReportFilename:         ptrString("bapresults.json"),
		ChartsDir:              ptrString(""),
		HistoryDB:              ptrString(""),
		GaitMetrics:            ptrBool(true),
		FootMetrics:            ptrBool(true),
		PositionMetrics2D:      ptrBool(true),
		PositionMetrics3D:      ptrBool(true),
		MaxLoggedFaultsPerFile: ptrInt(5),
		PlacementSeparator:     ptrString("-"),
	}
}

// LoadAnalysisConfig loads an AnalysisConfig from a JSON file.
// The file must have a .json extension and be under 1MB. Fields omitted
// from the file fall back to defaults through the Get* methods.
func LoadAnalysisConfig(path string) (*AnalysisConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyAnalysisConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads DefaultConfigPath from the current directory
// or one of its parents. Panics if the file cannot be loaded; intended for
// test setup.
func MustLoadDefaultConfig() *AnalysisConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath, // from internal/config/
		"../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadAnalysisConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are usable.
func (c *AnalysisConfig) Validate() error {
	if c.ReportFilename != nil {
		name := *c.ReportFilename
		if name == "" {
			return fmt.Errorf("report_filename must not be empty")
		}
		if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
			return fmt.Errorf("report_filename must be a bare file name, got %q", name)
		}
		if filepath.Ext(name) != ".json" {
			return fmt.Errorf("report_filename must end in .json, got %q", name)
		}
	}

	if c.MaxLoggedFaultsPerFile != nil && *c.MaxLoggedFaultsPerFile < 0 {
		return fmt.Errorf("max_logged_faults_per_file must be >= 0, got %d", *c.MaxLoggedFaultsPerFile)
	}

	if c.PlacementSeparator != nil && *c.PlacementSeparator == "" {
		return fmt.Errorf("placement_separator must not be empty")
	}

	return nil
}

// GetReportFilename returns the report file name within the session folder.
func (c *AnalysisConfig) GetReportFilename() string {
	if c.ReportFilename == nil || *c.ReportFilename == "" {
		return "bapresults.json"
	}
	return *c.ReportFilename
}

// GetChartsDir returns the chart output directory, or "" when disabled.
func (c *AnalysisConfig) GetChartsDir() string {
	if c.ChartsDir == nil {
		return ""
	}
	return *c.ChartsDir
}

// GetHistoryDB returns the history database path, or "" when disabled.
func (c *AnalysisConfig) GetHistoryDB() string {
	if c.HistoryDB == nil {
		return ""
	}
	return *c.HistoryDB
}

func (c *AnalysisConfig) GetGaitMetrics() bool {
	if c.GaitMetrics == nil {
		return true
	}
	return *c.GaitMetrics
}

func (c *AnalysisConfig) GetFootMetrics() bool {
	if c.FootMetrics == nil {
		return true
	}
	return *c.FootMetrics
}

func (c *AnalysisConfig) GetPositionMetrics2D() bool {
	if c.PositionMetrics2D == nil {
		return true
	}
	return *c.PositionMetrics2D
}

func (c *AnalysisConfig) GetPositionMetrics3D() bool {
	if c.PositionMetrics3D == nil {
		return true
	}
	return *c.PositionMetrics3D
}

// GetMaxLoggedFaultsPerFile caps per-line fault log output for one file.
func (c *AnalysisConfig) GetMaxLoggedFaultsPerFile() int {
	if c.MaxLoggedFaultsPerFile == nil {
		return 5
	}
	return *c.MaxLoggedFaultsPerFile
}

// GetPlacementSeparator returns the string joining zone names in foot
// placement labels.
func (c *AnalysisConfig) GetPlacementSeparator() string {
	if c.PlacementSeparator == nil || *c.PlacementSeparator == "" {
		return "-"
	}
	return *c.PlacementSeparator
}
