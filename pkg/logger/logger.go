// Package logger provides a small leveled logging interface and implementation.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Logger defines the logging interface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})

	// WithPrefix returns a logger sharing the same outputs that tags every
	// message with "[prefix] ".
	WithPrefix(prefix string) Logger
}

// Level represents logging levels
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

type sink struct {
	level   Level
	loggers map[Level]*log.Logger
	mu      sync.RWMutex
}

// logger implements the Logger interface
type logger struct {
	sink   *sink
	prefix string
}

// New creates a logger whose level comes from the LOG_LEVEL environment variable.
func New() Logger {
	return NewWithLevel(ParseLevel(os.Getenv("LOG_LEVEL")))
}

// NewWithLevel creates a logger writing info/debug/warn to stdout and errors to stderr.
func NewWithLevel(level Level) Logger {
	return newLogger(level, os.Stdout, os.Stderr)
}

// NewWithWriter sends every level to w. Used by tests and the terminal UI,
// which cannot write to stdout while the screen is owned by the renderer.
func NewWithWriter(level Level, w io.Writer) Logger {
	return newLogger(level, w, w)
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return newLogger(LevelError+1, io.Discard, io.Discard)
}

func newLogger(level Level, out, errOut io.Writer) Logger {
	return &logger{
		sink: &sink{
			level: level,
			loggers: map[Level]*log.Logger{
				LevelDebug: log.New(out, "[DEBUG] ", log.LstdFlags|log.Lshortfile),
				LevelInfo:  log.New(out, "[INFO] ", log.LstdFlags),
				LevelWarn:  log.New(out, "[WARN] ", log.LstdFlags),
				LevelError: log.New(errOut, "[ERROR] ", log.LstdFlags|log.Lshortfile),
			},
		},
	}
}

// ParseLevel converts a string log level to a Level. Unknown values map to info.
func ParseLevel(levelStr string) Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// IsKnownLevel reports whether s names one of the supported levels.
func IsKnownLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

func (l *logger) WithPrefix(prefix string) Logger {
	return &logger{sink: l.sink, prefix: prefix}
}

func (l *logger) shouldLog(level Level) bool {
	l.sink.mu.RLock()
	defer l.sink.mu.RUnlock()
	return level >= l.sink.level
}

func (l *logger) emit(level Level, msg string) {
	if !l.shouldLog(level) {
		return
	}

	l.sink.mu.RLock()
	out := l.sink.loggers[level]
	l.sink.mu.RUnlock()

	if l.prefix != "" {
		msg = "[" + l.prefix + "] " + msg
	}
	// 3 = emit -> Debugf/Infof/... -> caller
	out.Output(3, msg)
}

func (l *logger) Debug(v ...interface{}) { l.emit(LevelDebug, fmt.Sprint(v...)) }

func (l *logger) Debugf(format string, v ...interface{}) {
	l.emit(LevelDebug, fmt.Sprintf(format, v...))
}

func (l *logger) Info(v ...interface{}) { l.emit(LevelInfo, fmt.Sprint(v...)) }

func (l *logger) Infof(format string, v ...interface{}) {
	l.emit(LevelInfo, fmt.Sprintf(format, v...))
}

func (l *logger) Warn(v ...interface{}) { l.emit(LevelWarn, fmt.Sprint(v...)) }

func (l *logger) Warnf(format string, v ...interface{}) {
	l.emit(LevelWarn, fmt.Sprintf(format, v...))
}

func (l *logger) Error(v ...interface{}) { l.emit(LevelError, fmt.Sprint(v...)) }

func (l *logger) Errorf(format string, v ...interface{}) {
	l.emit(LevelError, fmt.Sprintf(format, v...))
}

// Fatal logs an error message and exits
func (l *logger) Fatal(v ...interface{}) {
	l.emit(LevelError, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf logs a formatted error message and exits
func (l *logger) Fatalf(format string, v ...interface{}) {
	l.emit(LevelError, fmt.Sprintf(format, v...))
	os.Exit(1)
}
