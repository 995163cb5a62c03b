package bleichenbacher

import "log"

// Logger is the observability hook the engine calls at the start/end of
// each step, on each new s_i, on the size of M_i, and on the total query
// count. No structured logging library appears anywhere in the retrieval
// pack this repository was built from, so this mirrors the pack's own
// idiom for the concern — a thin interface over the stdlib log package —
// rather than reaching for a dependency nothing else here uses.
//
// Unlike Bleichenbacher.java, which logs the full prepared ciphertext at
// info level, implementations here should keep raw prepared bytes and
// other attack-progress detail out of Infof; that detail belongs at
// Tracef.
type Logger interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NopLogger discards everything. It is the default when Config.Logger is
// left nil, so callers never have to wire up logging just to run an
// attack.
type NopLogger struct{}

func (NopLogger) Tracef(string, ...interface{}) {}
func (NopLogger) Debugf(string, ...interface{}) {}
func (NopLogger) Infof(string, ...interface{})  {}
func (NopLogger) Errorf(string, ...interface{}) {}

// Level selects the minimum severity StdLogger writes.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelError
)

// StdLogger writes to a stdlib *log.Logger, filtering out anything below
// MinLevel. This is the default non-trivial Logger: plain, synchronous,
// matching the teacher's own sparing use of the "log" package rather than
// a structured logging dependency.
type StdLogger struct {
	Out      *log.Logger
	MinLevel Level
}

// NewStdLogger returns a StdLogger writing to log.Default() at LevelInfo.
func NewStdLogger() *StdLogger {
	return &StdLogger{Out: log.Default(), MinLevel: LevelInfo}
}

func (l *StdLogger) Tracef(format string, args ...interface{}) { l.logAt(LevelTrace, format, args) }
func (l *StdLogger) Debugf(format string, args ...interface{}) { l.logAt(LevelDebug, format, args) }
func (l *StdLogger) Infof(format string, args ...interface{})  { l.logAt(LevelInfo, format, args) }
func (l *StdLogger) Errorf(format string, args ...interface{}) { l.logAt(LevelError, format, args) }

func (l *StdLogger) logAt(level Level, format string, args []interface{}) {
	if level < l.MinLevel {
		return
	}
	l.Out.Printf(prefix(level)+format, args...)
}

func prefix(level Level) string {
	switch level {
	case LevelTrace:
		return "[TRACE] "
	case LevelDebug:
		return "[DEBUG] "
	case LevelInfo:
		return "[INFO] "
	default:
		return "[ERROR] "
	}
}
