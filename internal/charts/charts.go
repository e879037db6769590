// Package charts exports a session report as an HTML dashboard (go-echarts)
// and PNG time-series plots (gonum/plot).
package charts

import (
	"fmt"
	"path/filepath"

	"github.com/banshee-data/motion.report/internal/fsutil"
	"github.com/banshee-data/motion.report/internal/monitoring"
	"github.com/banshee-data/motion.report/internal/report"
	"github.com/banshee-data/motion.report/internal/session"
)

// Output file names inside the charts directory.
const (
	DashboardFile     = "dashboard.html"
	PressureZonesFile = "pressure_zones.png"
	GaitAnglesFile    = "gait_angles.png"
)

// Exporter writes charts for one analyzed session.
type Exporter struct {
	FS fsutil.FileSystem

	// AssetsHost overrides where the dashboard loads echarts scripts from.
	// Empty uses the go-echarts default.
	AssetsHost string
}

func (e Exporter) fs() fsutil.FileSystem {
	if e.FS == nil {
		return fsutil.OSFileSystem{}
	}
	return e.FS
}

// Export writes the dashboard and, when the session has the frames for them,
// the pressure and gait plots into dir. It returns the written paths.
func (e Exporter) Export(dir, title string, s *session.SessionData, r *report.Report) ([]string, error) {
	fsys := e.fs()
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create charts dir %s: %w", dir, err)
	}

	var written []string
	write := func(name string, data []byte) error {
		path := filepath.Join(dir, name)
		if err := fsys.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
		return nil
	}

	html, err := e.renderDashboard(title, r, s.BalanceMat)
	if err != nil {
		return written, err
	}
	if err := write(DashboardFile, html); err != nil {
		return written, err
	}

	if len(s.BalanceMat) > 0 {
		png, err := renderLinePlot(title+" - Pressure zones", "Mean pressure", pressureSeries(s.BalanceMat))
		if err != nil {
			return written, fmt.Errorf("pressure plot: %w", err)
		}
		if err := write(PressureZonesFile, png); err != nil {
			return written, err
		}
	}

	if len(s.BodyAngles) > 0 {
		png, err := renderLinePlot(title+" - Gait angles", "Angle (deg)", gaitSeries(s.BodyAngles))
		if err != nil {
			return written, fmt.Errorf("gait plot: %w", err)
		}
		if err := write(GaitAnglesFile, png); err != nil {
			return written, err
		}
	}

	monitoring.Logf("charts: wrote %d files to %s", len(written), dir)
	return written, nil
}
