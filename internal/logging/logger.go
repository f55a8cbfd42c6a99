package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level represents log severity
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
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config value such as "debug" or "WARN" to a Level.
// Unknown values fall back to LevelInfo.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info", "":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

type logger struct {
	mu       sync.Mutex
	writer   io.Writer
	level    Level
	enabled  bool
	filePath string
}

var (
	stateMu       sync.RWMutex
	defaultLogger *logger
)

// Initialize opens today's log file in logDir and makes it the process logger.
func Initialize(logDir string, level Level) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, fmt.Sprintf("marquee-%s.log", time.Now().Format("2006-01-02")))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	setLogger(&logger{writer: file, level: level, enabled: true, filePath: logPath})
	return nil
}

// InitializeWriter logs to w instead of a file. Used by tests and when the
// log directory is unavailable.
func InitializeWriter(w io.Writer, level Level) {
	setLogger(&logger{writer: w, level: level, enabled: true})
}

func setLogger(l *logger) {
	stateMu.Lock()
	defaultLogger = l
	stateMu.Unlock()
}

func current() *logger {
	stateMu.RLock()
	defer stateMu.RUnlock()
	return defaultLogger
}

// SetEnabled enables or disables logging
func SetEnabled(enabled bool) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetLevel changes the minimum level written.
func SetLevel(level Level) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.level = level
		l.mu.Unlock()
	}
}

func log(level Level, format string, args ...any) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(l.writer, "[%s] %s: %s\n", timestamp, level, msg)
}

// Debug logs a debug message
func Debug(format string, args ...any) {
	log(LevelDebug, format, args...)
}

// Info logs an info message
func Info(format string, args ...any) {
	log(LevelInfo, format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...any) {
	log(LevelWarn, format, args...)
}

// Error logs an error message
func Error(format string, args ...any) {
	log(LevelError, format, args...)
}

// WithError logs err with context when it is non-nil.
func WithError(err error, context string) {
	if err != nil {
		log(LevelError, "%s: %v", context, err)
	}
}

// Close closes the log file and detaches the logger.
func Close() error {
	l := current()
	setLogger(nil)
	if l != nil && l.writer != nil {
		if closer, ok := l.writer.(io.Closer); ok {
			return closer.Close()
		}
	}
	return nil
}

// GetLogPath returns the current log file path
func GetLogPath() string {
	if l := current(); l != nil {
		return l.filePath
	}
	return ""
}
