package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultAnalysisConfig(t *testing.T) {
	cfg := DefaultAnalysisConfig()

	if cfg.ReportFilename == nil || *cfg.ReportFilename != "bapresults.json" {
		t.Errorf("Expected ReportFilename bapresults.json, got %v", cfg.ReportFilename)
	}
	if cfg.MaxLoggedFaultsPerFile == nil || *cfg.MaxLoggedFaultsPerFile != 5 {
		t.Errorf("Expected MaxLoggedFaultsPerFile 5, got %v", cfg.MaxLoggedFaultsPerFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEmptyConfigGetters(t *testing.T) {
	cfg := EmptyAnalysisConfig()
	def := DefaultAnalysisConfig()

	if cfg.GetReportFilename() != def.GetReportFilename() {
		t.Errorf("GetReportFilename() = %q", cfg.GetReportFilename())
	}
	if cfg.GetChartsDir() != "" || cfg.GetHistoryDB() != "" {
		t.Error("charts and history should default to disabled")
	}
	if !cfg.GetGaitMetrics() || !cfg.GetFootMetrics() || !cfg.GetPositionMetrics2D() || !cfg.GetPositionMetrics3D() {
		t.Error("all metrics collaborators should default to enabled")
	}
	if cfg.GetMaxLoggedFaultsPerFile() != 5 {
		t.Errorf("GetMaxLoggedFaultsPerFile() = %d, want 5", cfg.GetMaxLoggedFaultsPerFile())
	}
	if cfg.GetPlacementSeparator() != "-" {
		t.Errorf("GetPlacementSeparator() = %q, want -", cfg.GetPlacementSeparator())
	}
}

func TestLoadAnalysisConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "analysis.json")

	testJSON := `{
  "report_filename": "summary.json",
  "foot_metrics": false,
  "charts_dir": "/tmp/charts",
  "max_logged_faults_per_file": 0
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadAnalysisConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if got := cfg.GetReportFilename(); got != "summary.json" {
		t.Errorf("GetReportFilename() = %q", got)
	}
	if cfg.GetFootMetrics() {
		t.Error("GetFootMetrics() = true, want false")
	}
	if !cfg.GetGaitMetrics() {
		t.Error("omitted gait_metrics should default to true")
	}
	if got := cfg.GetChartsDir(); got != "/tmp/charts" {
		t.Errorf("GetChartsDir() = %q", got)
	}
	if got := cfg.GetMaxLoggedFaultsPerFile(); got != 0 {
		t.Errorf("GetMaxLoggedFaultsPerFile() = %d, want 0", got)
	}
}

func TestLoadAnalysisConfig_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	write := func(name, body string) string {
		p := filepath.Join(tmpDir, name)
		if err := os.WriteFile(p, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"wrong extension", write("cfg.yaml", "{}"), ".json extension"},
		{"missing", filepath.Join(tmpDir, "nope.json"), "failed to stat"},
		{"bad json", write("bad.json", "{"), "failed to parse"},
		{"nested report name", write("nested.json", `{"report_filename": "../x.json"}`), "bare file name"},
		{"report not json", write("ext.json", `{"report_filename": "out.txt"}`), "end in .json"},
		{"negative cap", write("neg.json", `{"max_logged_faults_per_file": -1}`), ">= 0"},
		{"empty separator", write("sep.json", `{"placement_separator": ""}`), "placement_separator"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAnalysisConfig(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAnalysisConfig_TooLarge(t *testing.T) {
	p := filepath.Join(t.TempDir(), "big.json")
	if err := os.WriteFile(p, make([]byte, maxConfigSize+1), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAnalysisConfig(p); err == nil || !strings.Contains(err.Error(), "too large") {
		t.Errorf("expected size error, got %v", err)
	}
}

func TestMustLoadDefaultConfig_MatchesGetters(t *testing.T) {
	cfg := MustLoadDefaultConfig()
	def := EmptyAnalysisConfig()

	if cfg.GetReportFilename() != def.GetReportFilename() ||
		cfg.GetGaitMetrics() != def.GetGaitMetrics() ||
		cfg.GetFootMetrics() != def.GetFootMetrics() ||
		cfg.GetPositionMetrics2D() != def.GetPositionMetrics2D() ||
		cfg.GetPositionMetrics3D() != def.GetPositionMetrics3D() ||
		cfg.GetChartsDir() != def.GetChartsDir() ||
		cfg.GetHistoryDB() != def.GetHistoryDB() ||
		cfg.GetMaxLoggedFaultsPerFile() != def.GetMaxLoggedFaultsPerFile() ||
		cfg.GetPlacementSeparator() != def.GetPlacementSeparator() {
		t.Errorf("%s disagrees with Get* defaults", DefaultConfigPath)
	}
}
