// Package log is the levelled logger shared by the engine and the demo. It
// keeps a small printf-style API over charmbracelet/log.
package log

import (
	"io"
	"math"
	"strings"

	charm "github.com/charmbracelet/log"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString parses a level name case-insensitively. WARN maps to
// LevelInfo since warnings print at that level. Unknown names give LevelInfo.
func LevelFromString(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO", "WARN", "WARNING":
		return LevelInfo
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelInfo
	}
}

func (l Level) charm() charm.Level {
	switch l {
	case LevelDebug:
		return charm.DebugLevel
	case LevelInfo:
		return charm.InfoLevel
	case LevelError:
		return charm.ErrorLevel
	default:
		return charm.Level(math.MaxInt32)
	}
}

type Logger struct {
	logger *charm.Logger
	level  Level
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: charm.NewWithOptions(out, charm.Options{
			Level:           level.charm(),
			ReportTimestamp: false, // component tag is in the format string
		}),
		level: level,
	}
}

// Discard returns a logger that drops everything. Library types fall back to
// it when no logger was supplied.
func Discard() *Logger {
	return New(io.Discard, LevelNone)
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.logger.Debugf(format, v...) }
func (l *Logger) Infof(format string, v ...interface{})  { l.logger.Infof(format, v...) }
func (l *Logger) Errorf(format string, v ...interface{}) { l.logger.Errorf(format, v...) }

// Warnf prints at LevelInfo and below.
func (l *Logger) Warnf(format string, v ...interface{}) { l.logger.Warnf(format, v...) }

func (l *Logger) SetLevel(level Level) {
	l.level = level
	l.logger.SetLevel(level.charm())
}

func (l *Logger) Level() Level {
	return l.level
}
