package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	// Cache hits and misses are logged at this level.
	LogDebug LogLevel = "debug"

	// LogOff disables logging.
	LogOff LogLevel = "off"
)

// ErrInvalidLogLevel is returned for a level name zap does not know.
var ErrInvalidLogLevel = fmt.Errorf("invalid log level")

// New builds a production (JSON) zap.Logger at the given level.
// LogOff and the empty level return a no-op logger.
func New(level LogLevel) (*zap.Logger, error) {
	if level == "" || level == LogOff {
		return zap.NewNop(), nil
	}

	lvl, err := zapcore.ParseLevel(string(level))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
