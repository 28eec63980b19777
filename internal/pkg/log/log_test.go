package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, nil, false)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	// Stdout carries info only, debug is dropped when not verbose
	assert.Equal(t, "info message\n", stdout.String())

	// Warnings and errors go to stderr
	assert.Contains(t, stderr.String(), "warn message")
	assert.Contains(t, stderr.String(), "error message")
	assert.NotContains(t, stderr.String(), "info message")
}

func TestLoggerVerbose(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, nil, true)

	logger.Debug("debug message")
	logger.Info("info message")

	// Verbose mode logs debug too, prefixed with the level
	assert.Contains(t, stdout.String(), "DEBUG")
	assert.Contains(t, stdout.String(), "debug message")
	assert.Contains(t, stdout.String(), "info message")
	assert.Empty(t, stderr.String())
}

func TestWriteCloser(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, nil, false)

	writer := ToInfoWriter(logger)
	n, err := writer.Write([]byte("line1\nline2\n"))
	assert.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Equal(t, "line1\nline2\n", stdout.String())

	warnWriter := ToWarnWriter(logger)
	warnWriter.WriteStringNoErr("warning line")
	assert.Contains(t, stderr.String(), "warning line")
}
