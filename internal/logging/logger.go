package logging

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/tanqiangyes/board-game/internal/card"
	"github.com/tanqiangyes/board-game/internal/validator"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseLevel converts a config value such as "warn" into a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG, nil
	case "info", "":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger writes levelled, timestamped lines
type Logger struct {
	*log.Logger
	level Level
	now   func() time.Time
}

// NewLogger creates a logger writing to w
func NewLogger(w io.Writer, level Level) *Logger {
	return &Logger{
		Logger: log.New(w, "", 0),
		level:  level,
		now:    time.Now,
	}
}

// SetLevel changes the minimum level that is written
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// formatMessage formats a log message with timestamp, level, and caller info
func (l *Logger) formatMessage(level Level, msg string) string {
	_, file, line, ok := runtime.Caller(3)
	caller := "unknown"
	if ok {
		caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	return fmt.Sprintf("[%s] %-5s %s: %s",
		l.now().Format("2006-01-02 15:04:05.000"),
		level,
		caller,
		msg,
	)
}

func (l *Logger) logf(level Level, format string, v ...interface{}) {
	if l.level <= level {
		l.Output(3, l.formatMessage(level, fmt.Sprintf(format, v...)))
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.logf(DEBUG, format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.logf(INFO, format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.logf(WARN, format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.logf(ERROR, format, v...)
}

// LogError logs err, spelling out the details of card and deck errors
func (l *Logger) LogError(err error) {
	var rankErr *card.InvalidRankError
	var compErr *validator.CompositionError

	switch {
	case errors.As(err, &rankErr):
		l.logf(ERROR, "Invalid rank value:\n\tValue: %d\n\tCause: %v", rankErr.Value, err)
	case errors.As(err, &compErr):
		l.logf(ERROR, "Invalid deck composition:\n\t%s", strings.Join(compErr.Problems, "\n\t"))
	default:
		l.logf(ERROR, "Unexpected error: %v", err)
	}
}

// Default logger instance
var Default = NewLogger(os.Stderr, INFO)
