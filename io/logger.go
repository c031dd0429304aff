package optio

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// LogLevel is the severity of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the tag used for the level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat selects the prefix style.
type LogFormat int

const (
	LogFormatTagged  LogFormat = iota // [INFO] [WARN] ...
	LogFormatSymbols                  // ◆ ▲ ✗ ...
	LogFormatPlain                    // no prefix
)

// Logger writes levelled, optionally coloured messages through an IOManager.
type Logger struct {
	io           *IOManager
	format       LogFormat
	minLevel     LogLevel
	withTime     bool
	timeFormat   string
	errorsStderr bool
	now          func() time.Time
}

// NewLogger creates a tagged logger bound to m.
func NewLogger(m *IOManager) *Logger {
	return &Logger{
		io:           m,
		format:       LogFormatTagged,
		minLevel:     LevelInfo,
		timeFormat:   "15:04:05",
		errorsStderr: true,
		now:          time.Now,
	}
}

// WithFormat sets the prefix style.
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	return l
}

// WithLevel drops messages below level.
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// WithTimestamp enables or disables a time stamp after the prefix.
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// ErrorsToStderr controls whether warnings and errors go to stderr.
func (l *Logger) ErrorsToStderr(enabled bool) *Logger {
	l.errorsStderr = enabled
	return l
}

// Log writes one message at level.
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(l.writer(level), l.formatMessage(level, msg))
}

func (l *Logger) formatMessage(level LogLevel, msg string) string {
	if strings.TrimSpace(msg) == "" {
		return msg
	}

	parts := make([]string, 0, 3)
	if prefix := l.prefix(level); prefix != "" {
		parts = append(parts, prefix)
	}
	if l.withTime {
		parts = append(parts, "["+l.now().Format(l.timeFormat)+"]")
	}
	parts = append(parts, msg)
	return l.io.Colorize(strings.Join(parts, " "), levelColors[level])
}

func (l *Logger) prefix(level LogLevel) string {
	switch l.format {
	case LogFormatTagged:
		return "[" + level.String() + "]"
	case LogFormatSymbols:
		return levelSymbols[level]
	case LogFormatPlain:
		return ""
	default:
		return ""
	}
}

var levelSymbols = map[LogLevel]string{
	LevelDebug:   "●",
	LevelInfo:    "◆",
	LevelSuccess: "✓",
	LevelWarning: "▲",
	LevelError:   "✗",
}

// SGR foreground codes
var levelColors = map[LogLevel]string{
	LevelDebug:   "35",
	LevelInfo:    "34",
	LevelSuccess: "32",
	LevelWarning: "33",
	LevelError:   "31",
}

func (l *Logger) writer(level LogLevel) io.Writer {
	if l.errorsStderr && (level == LevelError || level == LevelWarning) {
		return l.io.Err()
	}
	return l.io.Out()
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(format string, args ...any) { l.Log(LevelDebug, format, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(format string, args ...any) { l.Log(LevelInfo, format, args...) }

// Success logs at LevelSuccess.
func (l *Logger) Success(format string, args ...any) { l.Log(LevelSuccess, format, args...) }

// Warning logs at LevelWarning.
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }

// Error logs at LevelError.
func (l *Logger) Error(format string, args ...any) { l.Log(LevelError, format, args...) }
