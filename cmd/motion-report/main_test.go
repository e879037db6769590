package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/motion.report/internal/monitoring"
	"github.com/banshee-data/motion.report/internal/report"
	"github.com/banshee-data/motion.report/internal/testutil"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := run(args, &buf)
	return buf.String(), err
}

// lineValue returns the text after "prefix: " on the first matching line.
func lineValue(out, prefix string) string {
	for _, line := range strings.Split(out, "\n") {
		if v, ok := strings.CutPrefix(line, prefix+": "); ok {
			return v
		}
	}
	return ""
}

func TestRun_NoArgs(t *testing.T) {
	out, err := runCLI(t)
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, out, "Usage: motion-report <command>")
}

func TestRun_Help(t *testing.T) {
	for _, arg := range []string{"help", "-h", "--help"} {
		out, err := runCLI(t, arg)
		require.NoError(t, err, arg)
		assert.Contains(t, out, "analyze", arg)
		assert.Contains(t, out, "history", arg)
	}
}

func TestRun_Version(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "motion-report "), out)
}

func TestRun_UnknownCommand(t *testing.T) {
	out, err := runCLI(t, "frobnicate")
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, out, "Unknown command: frobnicate")
}

func TestAnalyze_RequiresSession(t *testing.T) {
	out, err := runCLI(t, "analyze")
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, out, "-session is required")

	_, err = runCLI(t, "analyze", "-bogus")
	assert.ErrorIs(t, err, errUsage)
}

func TestAnalyze_BadConfig(t *testing.T) {
	dir := testutil.WriteSession(t, t.TempDir(), "walk")
	_, err := runCLI(t, "analyze", "-quiet", "-session", dir, "-config", filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errUsage)
}

func TestAnalyze_Progress(t *testing.T) {
	t.Cleanup(monitoring.Mute())
	dir := testutil.WriteSession(t, t.TempDir(), "walk")

	out, err := runCLI(t, "analyze", "-session", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "[1/7] joint_angles ")
	assert.Contains(t, out, "[7/7] balance_mat ")
	assert.Equal(t, filepath.Join(dir, report.DefaultFilename), lineValue(out, "report"))
	assert.Empty(t, lineValue(out, "run"))
}

func TestAnalyzeHistoryMigrate(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "patient-01")
	require.NoError(t, os.Mkdir(dir, 0o755))
	testutil.WriteSession(t, dir, "walk")
	chartsDir := filepath.Join(root, "charts")
	dbPath := filepath.Join(root, "history.db")

	out, err := runCLI(t, "analyze", "-quiet", "-hip-center", "-session", dir, "-charts", chartsDir, "-db", dbPath)
	require.NoError(t, err)
	assert.NotContains(t, out, "[1/7]")
	assert.Len(t, lineValue(out, "sha256"), 64)
	assert.Empty(t, lineValue(out, "omitted"))
	assert.Contains(t, out, "chart: "+filepath.Join(chartsDir, "patient-01"))
	runID := lineValue(out, "run")
	require.NotEmpty(t, runID)
	assert.FileExists(t, filepath.Join(dir, report.DefaultFilename))

	out, err = runCLI(t, "history", "-db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "RUN")
	assert.Contains(t, out, runID)
	assert.Contains(t, out, "patient-01")

	out, err = runCLI(t, "history", "-db", dbPath, "-session", "someone-else")
	require.NoError(t, err)
	assert.Equal(t, "no runs recorded\n", out)

	out, err = runCLI(t, "history", "-db", dbPath, "-show", runID)
	require.NoError(t, err)
	want := testutil.MustReadFile(t, filepath.Join(dir, report.DefaultFilename))
	assert.JSONEq(t, string(want), out)

	_, err = runCLI(t, "history", "-db", dbPath, "-show", "no-such-run")
	assert.ErrorContains(t, err, "not found")

	out, err = runCLI(t, "migrate", "-db", dbPath, "status")
	require.NoError(t, err)
	assert.Equal(t, "Current version: 2 (dirty: false)\n", out)
}

func TestHistory_RequiresDB(t *testing.T) {
	out, err := runCLI(t, "history")
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, out, "-db is required")
}

func TestMigrate_Usage(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "h.db")

	_, err := runCLI(t, "migrate", "-db", dbPath)
	assert.ErrorIs(t, err, errUsage)

	out, err := runCLI(t, "migrate", "-db", dbPath, "sideways")
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, out, "Unknown migrate action: sideways")
	assert.NoFileExists(t, dbPath)

	t.Cleanup(monitoring.Mute())
	out, err = runCLI(t, "migrate", "-db", dbPath, "up")
	require.NoError(t, err)
	assert.Equal(t, "Current version: 2 (dirty: false)\n", out)
}
