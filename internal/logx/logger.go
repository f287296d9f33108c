package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Logger is the logging surface library code accepts.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

// Level orders log severities.
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
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel reads a case-insensitive level name. Unknown names mean info.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// Leveled writes prefixed lines through a stdlib log.Logger, dropping
// anything below its level.
type Leveled struct {
	level Level
	out   *log.Logger
}

// New returns a Leveled logger writing to stderr.
func New(level string) *Leveled {
	return NewWithOutput(level, os.Stderr)
}

// NewWithOutput returns a Leveled logger writing to w.
func NewWithOutput(level string, w io.Writer) *Leveled {
	return &Leveled{level: ParseLevel(level), out: log.New(w, "", log.LstdFlags)}
}

// Level reports the minimum level that is written.
func (l *Leveled) Level() Level { return l.level }

func (l *Leveled) logf(level Level, prefix, format string, v ...any) {
	if level < l.level {
		return
	}
	l.out.Print(prefix, fmt.Sprintf(format, v...))
}

func (l *Leveled) Debugf(format string, v ...any) { l.logf(LevelDebug, "[DEBUG] ", format, v...) }
func (l *Leveled) Infof(format string, v ...any)  { l.logf(LevelInfo, "[INFO] ", format, v...) }
func (l *Leveled) Warnf(format string, v ...any)  { l.logf(LevelWarn, "[WARN] ", format, v...) }
func (l *Leveled) Errorf(format string, v ...any) { l.logf(LevelError, "[ERROR] ", format, v...) }

// Fatalf logs regardless of level and exits.
func (l *Leveled) Fatalf(format string, v ...any) {
	l.out.Fatalf("[FATAL] "+format, v...)
}

type noOp struct{}

func (noOp) Debugf(string, ...any) {}
func (noOp) Infof(string, ...any)  {}
func (noOp) Warnf(string, ...any)  {}
func (noOp) Errorf(string, ...any) {}

// NewNoOp returns a Logger that discards everything.
func NewNoOp() Logger { return noOp{} }
