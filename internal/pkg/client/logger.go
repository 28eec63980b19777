package client

import (
	"fmt"
	"regexp"

	"go.uber.org/zap"
)

const loggerPrefix = "HTTP%s\t"

var secretPattern = regexp.MustCompile(`(?i)((?:token|password|secret)"?:?\s*"?)[^\s",}]+`)

// Logger adapts the zap logger for resty and hides secrets.
type Logger struct {
	logger *zap.SugaredLogger
}

func (l *Logger) Debugf(format string, v ...any) {
	l.logWithoutSecrets("", format, v...)
}

func (l *Logger) Warnf(format string, v ...any) {
	l.logWithoutSecrets("-WARN", format, v...)
}

func (l *Logger) Errorf(format string, v ...any) {
	l.logWithoutSecrets("-ERROR", format, v...)
}

func (l *Logger) logWithoutSecrets(level string, format string, v ...any) {
	v = append([]any{level}, v...)
	msg := fmt.Sprintf(loggerPrefix+format, v...)
	msg = secretPattern.ReplaceAllString(msg, "$1*****")
	l.logger.Debug(msg)
}
