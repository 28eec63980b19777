// Package log wires the console and the log file together: the console
// shows the operator view, the file keeps a full timestamped record.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger logs INFO to stdout (plus DEBUG when verbose), WARN and
// ERROR to stderr, and everything to the log file when one is open.
func NewLogger(stdout io.Writer, stderr io.Writer, logFile *os.File, verbose bool) *zap.SugaredLogger {
	stdoutLevels := func(l zapcore.Level) bool {
		if verbose {
			return l == zapcore.DebugLevel || l == zapcore.InfoLevel
		}
		return l == zapcore.InfoLevel
	}
	stderrLevels := func(l zapcore.Level) bool {
		return l >= zapcore.WarnLevel
	}

	cores := []zapcore.Core{
		consoleCore(stdout, verbose, stdoutLevels),
		consoleCore(stderr, verbose, stderrLevels),
	}
	if logFile != nil {
		cores = append(cores, fileCore(logFile))
	}

	return zap.New(zapcore.NewTee(cores...)).Sugar()
}

func consoleCore(out io.Writer, verbose bool, levels func(zapcore.Level) bool) zapcore.Core {
	// The level prefix is console noise unless the operator asked for details
	levelKey := ""
	if verbose {
		levelKey = "level"
	}
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         levelKey,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})
	return zapcore.NewCore(encoder, zapcore.AddSync(out), zap.LevelEnablerFunc(levels))
}

func fileCore(logFile *os.File) zapcore.Core {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})
	all := zap.LevelEnablerFunc(func(zapcore.Level) bool { return true })
	return zapcore.NewCore(encoder, logFile, all)
}

// WriteCloser adapts the logger to io.WriteCloser, so output written by
// cobra and other writers lands in the log at a fixed level.
type WriteCloser struct {
	level  zapcore.Level
	logger *zap.SugaredLogger
}

func ToDebugWriter(l *zap.SugaredLogger) *WriteCloser {
	return &WriteCloser{zapcore.DebugLevel, l}
}

func ToInfoWriter(l *zap.SugaredLogger) *WriteCloser {
	return &WriteCloser{zapcore.InfoLevel, l}
}

func ToWarnWriter(l *zap.SugaredLogger) *WriteCloser {
	return &WriteCloser{zapcore.WarnLevel, l}
}

// Write logs each line as a separate message.
func (w *WriteCloser) Write(p []byte) (n int, err error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		switch w.level {
		case zapcore.DebugLevel:
			w.logger.Debug(line)
		case zapcore.InfoLevel:
			w.logger.Info(line)
		default:
			w.logger.Warn(line)
		}
	}
	return len(p), nil
}

func (w *WriteCloser) WriteString(s string) (n int, err error) {
	return w.Write([]byte(s))
}

func (w *WriteCloser) WriteStringNoErr(s string) {
	if _, err := w.WriteString(s); err != nil {
		panic(fmt.Errorf("cannot write: %s", err))
	}
}

func (w *WriteCloser) Close() error {
	return w.logger.Sync()
}
