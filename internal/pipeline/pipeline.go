// Package pipeline runs the load-then-analyze sequence for one session
// folder: decode every file, compute metrics, assemble and write the report,
// then optionally export charts and record the run in the history database.
//
// Phases run strictly in order and nothing runs concurrently. Metrics only
// start once every family has been decoded.
package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"

	"github.com/banshee-data/motion.report/internal/charts"
	"github.com/banshee-data/motion.report/internal/config"
	"github.com/banshee-data/motion.report/internal/db"
	"github.com/banshee-data/motion.report/internal/fsutil"
	"github.com/banshee-data/motion.report/internal/metrics"
	"github.com/banshee-data/motion.report/internal/monitoring"
	"github.com/banshee-data/motion.report/internal/report"
	"github.com/banshee-data/motion.report/internal/security"
	"github.com/banshee-data/motion.report/internal/session"
	"github.com/banshee-data/motion.report/internal/timeutil"
	"github.com/banshee-data/motion.report/internal/version"
)

// Options configures one Run.
type Options struct {
	SessionDir string

	// Config defaults to DefaultAnalysisConfig.
	Config *config.AnalysisConfig
	// FS defaults to the OS filesystem.
	FS fsutil.FileSystem
	// Clock stamps history rows and measures Elapsed. Defaults to RealClock.
	Clock timeutil.Clock

	// HipCenter enables hand and ankle to hip-center distances. Nil leaves
	// those sections omitted.
	HipCenter metrics.HipCenterSource

	// OnProgress is called once per decoded file.
	OnProgress func(session.Progress)

	// History, when set, receives the run record instead of the database
	// named by Config.HistoryDB.
	History *db.RunStore
}

// Outcome describes a completed run.
type Outcome struct {
	Session      *session.SessionData
	Report       *report.Report
	ReportPath   string
	ReportJSON   []byte
	ReportSHA256 string
	ChartFiles   []string
	RunID        string
	Elapsed      time.Duration
}

// Run executes the pipeline for opts.SessionDir. A fault in any phase stops
// the run and is returned; line-level decode faults are not faults here.
func Run(opts Options) (*Outcome, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultAnalysisConfig()
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = fsutil.OSFileSystem{}
	}
	clock := opts.Clock
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	start := clock.Now()

	reportPath, err := reportPath(fsys, opts.SessionDir, cfg.GetReportFilename())
	if err != nil {
		return nil, err
	}

	loader := session.Loader{
		FS:              fsys,
		MaxLoggedFaults: cfg.GetMaxLoggedFaultsPerFile(),
		OnProgress:      opts.OnProgress,
	}
	s, err := loader.Load(opts.SessionDir)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if s.Empty() {
		monitoring.Logf("warning: no frames decoded from %s", opts.SessionDir)
	}

	in, err := Analyze(s, cfg, opts.HipCenter)
	if err != nil {
		return nil, err
	}
	r := report.Assemble(in)

	data, err := report.Write(fsys, reportPath, r)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(data)

	out := &Outcome{
		Session:      s,
		Report:       r,
		ReportPath:   reportPath,
		ReportJSON:   data,
		ReportSHA256: hex.EncodeToString(sum[:]),
	}

	if dir := cfg.GetChartsDir(); dir != "" {
		name := sessionName(opts.SessionDir)
		files, err := charts.Exporter{FS: fsys}.Export(filepath.Join(dir, name), name, s, r)
		out.ChartFiles = files
		if err != nil {
			return out, fmt.Errorf("export charts: %w", err)
		}
	}

	if err := recordHistory(opts, cfg, clock, out); err != nil {
		return out, err
	}

	out.Elapsed = clock.Since(start)
	monitoring.Logf("analyzed %s: %d frames, %d skipped lines, %d sections omitted",
		opts.SessionDir, totalFrames(s), s.Skipped(), len(r.OmittedSections))
	return out, nil
}

// Analyze runs every enabled metrics collaborator over s. Disabled
// collaborators become absent report sections.
func Analyze(s *session.SessionData, cfg *config.AnalysisConfig, hip metrics.HipCenterSource) (report.Inputs, error) {
	in := report.Inputs{Stats: metrics.BodyAngleStats(s.BodyAngles)}

	if cfg.GetGaitMetrics() {
		in.Gait = report.Present(metrics.Gait(s.BodyAngles))
	}
	if cfg.GetFootMetrics() {
		fa := metrics.FootAnalyzer{Separator: cfg.GetPlacementSeparator()}
		in.Foot = report.Present(fa.Analyze(s.BalanceMat))
	}

	pa := metrics.PositionAnalyzer{HipCenter: hip}
	if cfg.GetPositionMetrics2D() {
		pm, err := pa.Analyze2D(s.Body2D)
		if err != nil {
			return report.Inputs{}, fmt.Errorf("2D position metrics: %w", err)
		}
		in.Position2D = report.Present(pm)
	}
	if cfg.GetPositionMetrics3D() {
		pm, err := pa.Analyze3D(s.Positions3D)
		if err != nil {
			return report.Inputs{}, fmt.Errorf("3D position metrics: %w", err)
		}
		in.Position3D = report.Present(pm)
	}
	return in, nil
}

// reportPath places the report inside the session folder. On the OS
// filesystem symlinks are resolved as well.
func reportPath(fsys fsutil.FileSystem, dir, name string) (string, error) {
	path, err := security.JoinWithin(dir, name)
	if err != nil {
		return "", fmt.Errorf("invalid report path: %w", err)
	}
	if _, ok := fsys.(fsutil.OSFileSystem); ok {
		if err := security.ValidatePathWithinDirectory(path, dir); err != nil {
			return "", fmt.Errorf("invalid report path: %w", err)
		}
	}
	return path, nil
}

// sessionName is the session folder name made safe for file paths.
func sessionName(dir string) string {
	return security.SanitizeFilename(filepath.Base(filepath.Clean(dir)))
}

func totalFrames(s *session.SessionData) int {
	n := 0
	for _, f := range session.Families() {
		n += s.Frames(f)
	}
	return n
}

func recordHistory(opts Options, cfg *config.AnalysisConfig, clock timeutil.Clock, out *Outcome) error {
	store := opts.History
	if store == nil {
		path := cfg.GetHistoryDB()
		if path == "" {
			return nil
		}
		hdb, err := db.NewDB(path)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer hdb.Close()
		store = db.NewRunStore(hdb, clock)
	}

	s := out.Session
	run := &db.Run{
		SessionName:     sessionName(opts.SessionDir),
		SessionDir:      opts.SessionDir,
		ToolVersion:     version.Version,
		ReportSHA256:    out.ReportSHA256,
		ReportJSON:      out.ReportJSON,
		TotalFrames:     totalFrames(s),
		SkippedLines:    s.Skipped(),
		OmittedSections: out.Report.OmittedSections,
	}
	for _, f := range session.Families() {
		run.Families = append(run.Families, db.FamilyCount{
			Family:  f.String(),
			Files:   s.FileCount[f],
			Frames:  s.Frames(f),
			Skipped: s.Result(f).Skipped,
		})
	}
	if err := store.Insert(run); err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	out.RunID = run.RunID
	monitoring.Logf("recorded run %s for session %s", run.RunID, run.SessionName)
	return nil
}
