// Package logging configures the process-wide diagnostic logger. Results for
// the user go to stdout via plain printing; this logger carries warnings and
// debug traces on stderr.
package logging

import (
	"github.com/charmbracelet/log"
	"os"
)

// LevelEnv overrides the log level when set (debug, info, warn, error).
const LevelEnv = "SRCLIST_LOG_LEVEL"

// Setup installs the default logger. The verbose flag wins over the
// environment.
func Setup(verbose bool) *log.Logger {
	level := log.InfoLevel
	if v := os.Getenv(LevelEnv); v != "" {
		level = ParseLogLevel(v)
	}
	if verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
	log.SetDefault(logger)
	return logger
}

// ParseLogLevel parses a string log level to a charmbracelet/log Level.
func ParseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}
