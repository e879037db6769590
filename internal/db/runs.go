package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/motion.report/internal/timeutil"
)

// ErrRunNotFound is returned when a run ID has no row.
var ErrRunNotFound = errors.New("analysis run not found")

// Run is one recorded analysis of a session folder.
type Run struct {
	RunID        string
	SessionName  string
	SessionDir   string
	CreatedAt    time.Time
	ToolVersion  string
	ReportSHA256 string
	// ReportJSON is the report exactly as written to the session folder.
	ReportJSON      json.RawMessage
	TotalFrames     int
	SkippedLines    int
	OmittedSections []string
	Families        []FamilyCount
}

// FamilyCount is the per-family decode tally of a run.
type FamilyCount struct {
	Family  string
	Files   int
	Frames  int
	Skipped int
}

// RunStore persists analysis runs.
type RunStore struct {
	db    *DB
	clock timeutil.Clock
}

// NewRunStore creates a RunStore. A nil clock uses the real time.
func NewRunStore(db *DB, clock timeutil.Clock) *RunStore {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &RunStore{db: db, clock: clock}
}

// Insert records run. An empty RunID gets a new UUID and a zero CreatedAt
// gets the store clock's time; both are written back into run.
func (s *RunStore) Insert(run *Run) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.clock.Now()
	}
	omitted, err := json.Marshal(nonNil(run.OmittedSections))
	if err != nil {
		return fmt.Errorf("encode omitted sections: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin insert run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO analysis_runs (
			run_id, session_name, session_dir, created_at_ns, tool_version,
			report_sha256, report_json, total_frames, skipped_lines, omitted_sections
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.SessionName,
		run.SessionDir,
		run.CreatedAt.UnixNano(),
		run.ToolVersion,
		run.ReportSHA256,
		string(run.ReportJSON),
		run.TotalFrames,
		run.SkippedLines,
		string(omitted),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, f := range run.Families {
		_, err := tx.Exec(`
			INSERT INTO analysis_run_families (run_id, family, files, frames, skipped)
			VALUES (?, ?, ?, ?, ?)`,
			run.RunID, f.Family, f.Files, f.Frames, f.Skipped)
		if err != nil {
			return fmt.Errorf("insert run family %s: %w", f.Family, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

const runColumns = `run_id, session_name, session_dir, created_at_ns, tool_version,
	report_sha256, report_json, total_frames, skipped_lines, omitted_sections`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var run Run
	var createdAtNs int64
	var reportJSON, omitted string
	err := row.Scan(
		&run.RunID,
		&run.SessionName,
		&run.SessionDir,
		&createdAtNs,
		&run.ToolVersion,
		&run.ReportSHA256,
		&reportJSON,
		&run.TotalFrames,
		&run.SkippedLines,
		&omitted,
	)
	if err != nil {
		return Run{}, err
	}
	run.CreatedAt = time.Unix(0, createdAtNs).UTC()
	run.ReportJSON = json.RawMessage(reportJSON)
	if err := json.Unmarshal([]byte(omitted), &run.OmittedSections); err != nil {
		return Run{}, fmt.Errorf("decode omitted sections of run %s: %w", run.RunID, err)
	}
	return run, nil
}

// Get retrieves a run and its family counts by ID.
func (s *RunStore) Get(runID string) (*Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM analysis_runs WHERE run_id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	if run.Families, err = s.families(run.RunID); err != nil {
		return nil, err
	}
	return &run, nil
}

// List returns runs newest first, optionally filtered by session name. A
// limit of zero or less returns every run.
func (s *RunStore) List(sessionName string, limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM analysis_runs`
	var args []any
	if sessionName != "" {
		query += ` WHERE session_name = ?`
		args = append(args, sessionName)
	}
	query += ` ORDER BY created_at_ns DESC, run_id`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("list runs: %w", err)
	}
	rows.Close()

	// Family rows are loaded after the run cursor is closed; the pool holds a
	// single connection.
	for i := range runs {
		if runs[i].Families, err = s.families(runs[i].RunID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

// Latest returns the newest run of a session, or ErrRunNotFound.
func (s *RunStore) Latest(sessionName string) (*Run, error) {
	runs, err := s.List(sessionName, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("%w: session %s", ErrRunNotFound, sessionName)
	}
	return &runs[0], nil
}

// Delete removes a run; its family rows cascade.
func (s *RunStore) Delete(runID string) error {
	res, err := s.db.Exec(`DELETE FROM analysis_runs WHERE run_id = ?`, runID)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}

func (s *RunStore) families(runID string) ([]FamilyCount, error) {
	rows, err := s.db.Query(`
		SELECT family, files, frames, skipped
		FROM analysis_run_families
		WHERE run_id = ?
		ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("list run families: %w", err)
	}
	defer rows.Close()

	var out []FamilyCount
	for rows.Next() {
		var f FamilyCount
		if err := rows.Scan(&f.Family, &f.Files, &f.Frames, &f.Skipped); err != nil {
			return nil, fmt.Errorf("scan run family: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
