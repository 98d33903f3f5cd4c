// Package output provides colored output functions for the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Writer defines the interface for output operations
type Writer interface {
	Success(msg string)
	Successf(format string, args ...interface{})
	Info(msg string)
	Infof(format string, args ...interface{})
	Warn(msg string)
	Warnf(format string, args ...interface{})
	Error(msg string)
	Errorf(format string, args ...interface{})
	Plain(msg string)
	Plainf(format string, args ...interface{})
}

// ColoredWriter implements Writer with colored output. Success, info,
// and plain messages go to stdout; warnings and errors to stderr.
type ColoredWriter struct {
	successColor *color.Color
	infoColor    *color.Color
	warnColor    *color.Color
	errorColor   *color.Color
	stdout       io.Writer
	stderr       io.Writer
	mu           sync.Mutex
}

// NewColoredWriter creates a new ColoredWriter instance
func NewColoredWriter(stdout, stderr io.Writer) *ColoredWriter {
	return &ColoredWriter{
		successColor: color.New(color.FgGreen, color.Bold),
		infoColor:    color.New(color.FgCyan),
		warnColor:    color.New(color.FgYellow),
		errorColor:   color.New(color.FgRed, color.Bold),
		stdout:       stdout,
		stderr:       stderr,
	}
}

// Success prints a success message in green
func (w *ColoredWriter) Success(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = w.successColor.Fprintln(w.stdout, msg)
}

// Successf prints a formatted success message
func (w *ColoredWriter) Successf(format string, args ...interface{}) {
	w.Success(fmt.Sprintf(format, args...))
}

// Info prints an info message in cyan
func (w *ColoredWriter) Info(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = w.infoColor.Fprintln(w.stdout, msg)
}

// Infof prints a formatted info message
func (w *ColoredWriter) Infof(format string, args ...interface{}) {
	w.Info(fmt.Sprintf(format, args...))
}

// Warn prints a warning message in yellow
func (w *ColoredWriter) Warn(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = w.warnColor.Fprintln(w.stderr, msg)
}

// Warnf prints a formatted warning message
func (w *ColoredWriter) Warnf(format string, args ...interface{}) {
	w.Warn(fmt.Sprintf(format, args...))
}

// Error prints an error message in red
func (w *ColoredWriter) Error(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = w.errorColor.Fprintln(w.stderr, msg)
}

// Errorf prints a formatted error message
func (w *ColoredWriter) Errorf(format string, args ...interface{}) {
	w.Error(fmt.Sprintf(format, args...))
}

// Plain prints a message without color
func (w *ColoredWriter) Plain(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintln(w.stdout, msg)
}

// Plainf prints a formatted message without color
func (w *ColoredWriter) Plainf(format string, args ...interface{}) {
	w.Plain(fmt.Sprintf(format, args...))
}

// SetStdout replaces the stdout writer (useful for testing)
func (w *ColoredWriter) SetStdout(stdout io.Writer) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stdout = stdout
}

// SetStderr replaces the stderr writer (useful for testing)
func (w *ColoredWriter) SetStderr(stderr io.Writer) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stderr = stderr
}

// Stdout returns the current stdout writer
func (w *ColoredWriter) Stdout() io.Writer {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stdout
}

// defaultWriter is the package-level writer used by the convenience
// functions below.
//
//nolint:gochecknoglobals // Output package requires package-level state for consistent formatting
var defaultWriter = NewColoredWriter(os.Stdout, os.Stderr)

// SetStdout sets the standard output writer (useful for testing)
func SetStdout(w io.Writer) { defaultWriter.SetStdout(w) }

// SetStderr sets the standard error writer (useful for testing)
func SetStderr(w io.Writer) { defaultWriter.SetStderr(w) }

// Stdout returns the current stdout writer
func Stdout() io.Writer { return defaultWriter.Stdout() }

// Success prints a success message in green
func Success(msg string) { defaultWriter.Success(msg) }

// Successf prints a formatted success message
func Successf(format string, args ...interface{}) { defaultWriter.Successf(format, args...) }

// Info prints an info message in cyan
func Info(msg string) { defaultWriter.Info(msg) }

// Infof prints a formatted info message
func Infof(format string, args ...interface{}) { defaultWriter.Infof(format, args...) }

// Warn prints a warning message in yellow
func Warn(msg string) { defaultWriter.Warn(msg) }

// Warnf prints a formatted warning message
func Warnf(format string, args ...interface{}) { defaultWriter.Warnf(format, args...) }

// Error prints an error message in red
func Error(msg string) { defaultWriter.Error(msg) }

// Errorf prints a formatted error message
func Errorf(format string, args ...interface{}) { defaultWriter.Errorf(format, args...) }

// Plain prints a message without color
func Plain(msg string) { defaultWriter.Plain(msg) }

// Plainf prints a formatted message without color
func Plainf(format string, args ...interface{}) { defaultWriter.Plainf(format, args...) }
