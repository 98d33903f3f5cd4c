package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyclewise/cyclewise/internal/output"
)

// writeTestConfig points the command tree at a throwaway database.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "cycles.db")
	cfgPath := filepath.Join(dir, "config.yaml")

	yaml := "version: 1\ndatabase:\n  path: " + dbPath + "\n  log_level: silent\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o600))
	return cfgPath
}

// runCommand executes the CLI with captured output.
func runCommand(t *testing.T, cfgPath string, args ...string) (string, string, error) {
	t.Helper()

	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var stdout, stderr bytes.Buffer
	output.SetStdout(&stdout)
	output.SetStderr(&stderr)
	t.Cleanup(func() {
		output.SetStdout(os.Stdout)
		output.SetStderr(os.Stderr)
	})

	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestLogAddAndList(t *testing.T) {
	cfg := writeTestConfig(t)

	stdout, _, err := runCommand(t, cfg, "log", "add", "2025-01-01")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Recorded cycle start on 2025-01-01")

	_, _, err = runCommand(t, cfg, "log", "add", "2025-01-29")
	require.NoError(t, err)

	stdout, _, err = runCommand(t, cfg, "log", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2025-01-01")
	assert.Contains(t, stdout, "2025-01-29  (28 days)")
	assert.Contains(t, stdout, "2 cycle starts recorded")
}

func TestLogAddDuplicateFails(t *testing.T) {
	cfg := writeTestConfig(t)

	_, _, err := runCommand(t, cfg, "log", "add", "2025-01-01")
	require.NoError(t, err)

	_, _, err = runCommand(t, cfg, "log", "add", "2025-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestLogAddRejectsBadDate(t *testing.T) {
	cfg := writeTestConfig(t)

	_, _, err := runCommand(t, cfg, "log", "add", "January 1st")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestLogRemove(t *testing.T) {
	cfg := writeTestConfig(t)

	_, _, err := runCommand(t, cfg, "log", "add", "2025-01-01")
	require.NoError(t, err)

	stdout, _, err := runCommand(t, cfg, "log", "remove", "2025-01-01")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed cycle start on 2025-01-01")

	_, _, err = runCommand(t, cfg, "log", "remove", "2025-01-01")
	require.Error(t, err)
}

func TestStatsCommand(t *testing.T) {
	cfg := writeTestConfig(t)

	stdout, _, err := runCommand(t, cfg, "stats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not enough data yet")

	for _, d := range []string{"2025-01-01", "2025-01-29", "2025-02-26"} {
		_, _, err = runCommand(t, cfg, "log", "add", d)
		require.NoError(t, err)
	}

	stdout, _, err = runCommand(t, cfg, "stats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Average cycle length: 28 days")
	assert.Contains(t, stdout, "very regular")
}

func TestStatsHonorsConfiguredBounds(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	yaml := "version: 1\n" +
		"database:\n  path: " + filepath.Join(dir, "cycles.db") + "\n  log_level: silent\n" +
		"cycle:\n  min_length_days: 30\n  max_length_days: 40\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o600))

	// 25 days apart: below the configured minimum, so the interval is
	// filtered and no statistics are available.
	for _, d := range []string{"2025-01-01", "2025-01-26"} {
		_, _, err := runCommand(t, cfgPath, "log", "add", d)
		require.NoError(t, err)
	}

	stdout, _, err := runCommand(t, cfgPath, "stats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not enough data yet")
}

func TestPredictCommand(t *testing.T) {
	cfg := writeTestConfig(t)

	for _, d := range []string{"2025-01-01", "2025-01-29", "2025-02-26"} {
		_, _, err := runCommand(t, cfg, "log", "add", d)
		require.NoError(t, err)
	}

	stdout, _, err := runCommand(t, cfg, "predict")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Next cycle start: 2025-03-26")
	assert.Contains(t, stdout, "Cycle length:     28 days")
	assert.Contains(t, stdout, "Confidence:       85%")
}

func TestPredictNoLogs(t *testing.T) {
	cfg := writeTestConfig(t)

	_, _, err := runCommand(t, cfg, "predict")
	require.Error(t, err)
}

func TestAIStatusDefaultsOff(t *testing.T) {
	cfg := writeTestConfig(t)

	stdout, _, err := runCommand(t, cfg, "ai", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "AI predictions: off")
}

func TestAIOptInWithoutProvider(t *testing.T) {
	cfg := writeTestConfig(t)

	_, _, err := runCommand(t, cfg, "ai", "on")
	require.NoError(t, err)

	// Opted in but no provider configured: status warns, predictions
	// keep using the local estimator.
	_, stderr, err := runCommand(t, cfg, "ai", "status")
	require.NoError(t, err)
	assert.Contains(t, stderr, "no provider is configured")

	for _, d := range []string{"2025-01-01", "2025-01-29"} {
		_, _, err = runCommand(t, cfg, "log", "add", d)
		require.NoError(t, err)
	}
	stdout, _, err := runCommand(t, cfg, "predict")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Next cycle start")
}

func TestVersionCommand(t *testing.T) {
	cfg := writeTestConfig(t)
	SetVersionInfo("1.2.3", "abc1234", "2025-08-25")

	stdout, _, err := runCommand(t, cfg, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cyclewise 1.2.3")
	assert.Contains(t, stdout, "abc1234")
}

func TestParseDate(t *testing.T) {
	day, err := parseDate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), day)

	today, err := parseDate("today")
	require.NoError(t, err)
	assert.Equal(t, 0, today.Hour())

	_, err = parseDate("15/06/2025")
	require.Error(t, err)
}
