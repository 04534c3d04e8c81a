package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global structured logger
	Log *slog.Logger
	// logWriter is the rotating log writer
	logWriter *lumberjack.Logger
	// LogPath is the path to the current log file
	LogPath string
)

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config value such as "debug" to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultPath returns ~/.config/lined/lined.log, falling back to the temp dir.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.TempDir()
	}
	return filepath.Join(homeDir, ".config", "lined", "lined.log")
}

// InitLogger initializes the global logger with the specified level and optional path.
// If logPath is empty, defaults to ~/.config/lined/lined.log
func InitLogger(level LogLevel, logPath string) {
	if logPath == "" {
		logPath = DefaultPath()
	}
	_ = os.MkdirAll(filepath.Dir(logPath), 0755)

	LogPath = logPath

	// Use lumberjack for log rotation
	logWriter = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}

	Log = New(logWriter, level)
	slog.SetDefault(Log)
}

// New builds a JSON logger writing to w. The terminal belongs to the
// editor, so callers point w at a file.
func New(w io.Writer, level LogLevel) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level.slogLevel()}))
}

// Close closes the log file
func Close() {
	if logWriter != nil {
		logWriter.Close()
	}
}

// getLogger returns the global logger, or the default slog logger if not initialized.
func getLogger() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	getLogger().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	getLogger().Info(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	getLogger().Error(msg, args...)
}

// With creates a new logger with additional attributes
func With(args ...any) *slog.Logger {
	return getLogger().With(args...)
}
