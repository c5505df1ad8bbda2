/* pkg/logger/config.go */

package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultConsoleEncoderConfig returns the console encoder settings shared by
// the main and fallback loggers.
func DefaultConsoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(colouredLevel(level))
	}
	cfg.ConsoleSeparator = " "
	return cfg
}

// colouredLevel renders the level tag with ANSI colors so operational log
// lines stay readable when interleaved with the package manager's output.
func colouredLevel(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return "\033[90mDEBUG\033[0m" // Gray
	case zapcore.InfoLevel:
		return "\033[36mINFO\033[0m" // Cyan
	case zapcore.WarnLevel:
		return "\033[33mWARN\033[0m" // Yellow
	case zapcore.ErrorLevel:
		return "\033[31mERROR\033[0m" // Red
	default:
		// DPanic and above all read as fatal here.
		return "\033[1;31m" + level.CapitalString() + "\033[0m"
	}
}

// ParseLogLevel maps a LOG_LEVEL environment value to a zap level.
// Unknown or empty values default to Info.
func ParseLogLevel(raw string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
