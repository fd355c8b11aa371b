package logger

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

var levelNames = map[string]LogLevel{
	"none":  LogLevelNone,
	"error": LogLevelError,
	"warn":  LogLevelWarning,
	"info":  LogLevelInfo,
	"debug": LogLevelDebug,
}

// ParseLevel accepts either a level name or its number (0=NONE .. 4=DEBUG).
func ParseLevel(s string) (LogLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if lvl, ok := levelNames[s]; ok {
		return lvl, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < int(LogLevelNone) || n > int(LogLevelDebug) {
		return LogLevelNone, fmt.Errorf("invalid log level %q", s)
	}
	return LogLevel(n), nil
}

// Logger writes leveled, optionally tagged lines. A nil *log.Logger
// silences everything except Fatalf, which is what tests rely on.
type Logger struct {
	logger *log.Logger
	level  LogLevel
	tag    string
}

func NewLogger(logger *log.Logger, level LogLevel) *Logger {
	return &Logger{
		logger: logger,
		level:  level,
	}
}

// WithTag creates a new logger with a tag prefix
func (l *Logger) WithTag(tag string) *Logger {
	return &Logger{
		logger: l.logger,
		level:  l.level,
		tag:    tag,
	}
}

func (l *Logger) output(min LogLevel, prefix, format string, v ...interface{}) {
	if l.logger == nil || l.level < min {
		return
	}
	l.logger.Printf(l.formatMessage(prefix, format), v...)
}

func (l *Logger) formatMessage(level string, format string) string {
	var b strings.Builder
	if l.tag != "" {
		b.WriteString("[" + l.tag + "] ")
	}
	if level != "" {
		b.WriteString(level + " ")
	}
	b.WriteString(format)
	return b.String()
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.output(LogLevelDebug, "DEBUG:", format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.output(LogLevelInfo, "", format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.output(LogLevelWarning, "WARN:", format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.output(LogLevelError, "ERROR:", format, v...)
}

func (l *Logger) Fatalf(format string, v ...interface{}) {
	if l.logger == nil {
		log.Fatalf(l.formatMessage("FATAL:", format), v...)
	}
	l.logger.Fatalf(l.formatMessage("FATAL:", format), v...)
}
