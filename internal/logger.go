package internal

import (
	"io"
	"log"
	"os"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

var (
	logLevel = LogLevelInfo
	logger   = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	logLevel = level
}

// SetVerbose enables verbose (debug) logging
func SetVerbose(verbose bool) {
	if verbose {
		SetLogLevel(LogLevelDebug)
	} else {
		SetLogLevel(LogLevelInfo)
	}
}

// SetLogOutput redirects log output, mainly for tests
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

func logf(level LogLevel, tag, format string, args ...interface{}) {
	if logLevel >= level {
		logger.Printf("["+tag+"] "+format, args...)
	}
}

// LogError logs an error message
func LogError(format string, args ...interface{}) {
	logf(LogLevelError, "ERROR", format, args...)
}

// LogWarn logs a warning message
func LogWarn(format string, args ...interface{}) {
	logf(LogLevelWarn, "WARN", format, args...)
}

// LogInfo logs an info message
func LogInfo(format string, args ...interface{}) {
	logf(LogLevelInfo, "INFO", format, args...)
}

// LogDebug logs a debug message
func LogDebug(format string, args ...interface{}) {
	logf(LogLevelDebug, "DEBUG", format, args...)
}
