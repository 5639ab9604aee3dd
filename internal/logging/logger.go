package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fadedpez/warsim/internal/types"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

var zerologLevels = map[Level]zerolog.Level{
	DEBUG: zerolog.DebugLevel,
	INFO:  zerolog.InfoLevel,
	WARN:  zerolog.WarnLevel,
	ERROR: zerolog.ErrorLevel,
}

// String returns the level name
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel maps a level name such as "debug" or "WARN" to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG, nil
	case "info", "":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	}
	return INFO, types.NewGameError(types.ErrInvalidConfig, fmt.Sprintf("unknown log level %q", s))
}

// Logger represents our custom logger
type Logger struct {
	zl    zerolog.Logger
	level Level
}

// NewLogger creates a new logger writing human-readable lines to stderr
func NewLogger(level Level) *Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05.000"}, level)
}

// New creates a logger writing JSON lines to w
func New(w io.Writer, level Level) *Logger {
	zl := zerolog.New(w).
		With().
		Timestamp().
		CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + 2).
		Logger()
	return &Logger{zl: zl.Level(zerologLevels[level]), level: level}
}

// ForEnvironment returns a console logger in development and a JSON logger
// everywhere else. Both write to stderr so stdout stays free for reports.
func ForEnvironment(environment string, level Level) *Logger {
	if environment == "development" {
		return NewLogger(level)
	}
	return New(os.Stderr, level)
}

// Level returns the minimum level the logger emits
func (l *Logger) Level() Level {
	return l.level
}

// Zerolog exposes the underlying logger for structured fields
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zl
}

// send keeps every public method at the same call depth for caller info
func send(event *zerolog.Event, msg string) {
	event.Msg(msg)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	send(l.zl.Debug(), fmt.Sprintf(format, v...))
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	send(l.zl.Info(), fmt.Sprintf(format, v...))
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	send(l.zl.Warn(), fmt.Sprintf(format, v...))
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	send(l.zl.Error(), fmt.Sprintf(format, v...))
}

// LogError logs a GameError with appropriate context
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		event := l.zl.Error().
			Str("code", string(gameErr.Code)).
			Str("detail", gameErr.Message)
		if gameErr.Err != nil {
			event = event.AnErr("cause", gameErr.Err)
		}
		send(event, "game error occurred")
		return
	}

	send(l.zl.Error().Err(err), "unexpected error")
}

// Default logger instance
var Default = NewLogger(INFO)
