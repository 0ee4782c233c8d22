package log

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity threshold of a logger.
type LogLevel string

const (
	// LogDebug is used for debugging messages such as memo table misses.
	LogDebug LogLevel = "debug"

	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the program to continue running.
	LogError LogLevel = "error"
)

// ParseLevel converts a LogLevel into its zap counterpart.
// An empty level means LogInfo.
func ParseLevel(level LogLevel) (zapcore.Level, error) {
	switch LogLevel(strings.ToLower(string(level))) {
	case LogDebug:
		return zap.DebugLevel, nil
	case LogInfo, "":
		return zap.InfoLevel, nil
	case LogWarn:
		return zap.WarnLevel, nil
	case LogError:
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("unknown log level: %q", level)
	}
}

// NewConsoleLogger writes human-readable logs to stdout at level and above.
func NewConsoleLogger(level zapcore.Level) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		level,
	)
	return zap.New(consoleCore)
}

// NewTestLogger is a debug-level console logger for tests and demos.
func NewTestLogger() *zap.Logger {
	return NewConsoleLogger(zap.DebugLevel)
}
