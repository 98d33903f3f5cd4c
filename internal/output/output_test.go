package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestWriter() (*ColoredWriter, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	w := NewColoredWriter(&stdout, &stderr)
	return w, &stdout, &stderr
}

func TestColoredWriterRouting(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	w, stdout, stderr := newTestWriter()

	w.Success("saved")
	w.Info("note")
	w.Plain("raw")
	w.Warn("careful")
	w.Error("broken")

	out := stdout.String()
	assert.Contains(t, out, "saved")
	assert.Contains(t, out, "note")
	assert.Contains(t, out, "raw")
	assert.NotContains(t, out, "careful")
	assert.NotContains(t, out, "broken")

	errOut := stderr.String()
	assert.Contains(t, errOut, "careful")
	assert.Contains(t, errOut, "broken")
}

func TestColoredWriterFormatting(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	w, stdout, stderr := newTestWriter()

	w.Successf("added %d logs", 3)
	w.Plainf("avg %d days", 28)
	w.Errorf("bad date %q", "soon")

	assert.Contains(t, stdout.String(), "added 3 logs")
	assert.Contains(t, stdout.String(), "avg 28 days")
	assert.Contains(t, stderr.String(), `bad date "soon"`)
}

func TestPackageLevelWriters(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var stdout, stderr bytes.Buffer
	SetStdout(&stdout)
	SetStderr(&stderr)

	Info("hello")
	Warnf("watch %s", "out")

	assert.Contains(t, stdout.String(), "hello")
	assert.Contains(t, stderr.String(), "watch out")
	assert.Equal(t, &stdout, Stdout())
}
