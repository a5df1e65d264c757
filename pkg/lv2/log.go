package lv2

import (
	"fmt"

	"github.com/justyntemme/lv2go/pkg/framework/debug"
)

// Log is the host's log:log feature. typ is one of the mapped log:Error,
// log:Warning, log:Note or log:Trace URIDs.
type Log interface {
	Printf(typ URID, msg string)
}

// Logger routes messages to the host log when one was negotiated and falls
// back to the process logger otherwise.
type Logger struct {
	Log Log

	Error   URID
	Note    URID
	Trace   URID
	Warning URID

	fallback *debug.Logger
}

// SetMap resolves the log type URIDs. A nil map leaves them unset, which makes
// the logger use the fallback even when a host log is present.
func (l *Logger) SetMap(m URIDMap) {
	if m == nil {
		l.Error, l.Note, l.Trace, l.Warning = 0, 0, 0, 0
		return
	}
	l.Error = m.Map(LogErrorURI)
	l.Note = m.Map(LogNoteURI)
	l.Trace = m.Map(LogTraceURI)
	l.Warning = m.Map(LogWarningURI)
}

// SetFallback overrides the process logger used without a host log.
func (l *Logger) SetFallback(fallback *debug.Logger) {
	l.fallback = fallback
}

func (l *Logger) printf(typ URID, level debug.LogLevel, format string, args ...interface{}) {
	if l.Log != nil && typ != 0 {
		l.Log.Printf(typ, fmt.Sprintf(format, args...))
		return
	}

	fallback := l.fallback
	if fallback == nil {
		fallback = debug.Default()
	}
	fallback.Logf(level, format, args...)
}

// Errorf logs at log:Error.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.printf(l.Error, debug.LogLevelError, format, args...)
}

// Warningf logs at log:Warning.
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.printf(l.Warning, debug.LogLevelWarn, format, args...)
}

// Notef logs at log:Note.
func (l *Logger) Notef(format string, args ...interface{}) {
	l.printf(l.Note, debug.LogLevelInfo, format, args...)
}

// Tracef logs at log:Trace.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.printf(l.Trace, debug.LogLevelDebug, format, args...)
}
