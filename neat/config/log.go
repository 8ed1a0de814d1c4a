package config

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
)

// LoggerLevel specifies the logger's minimum output level.
type LoggerLevel string

const (
	LogLevelDebug   LoggerLevel = "debug"
	LogLevelInfo    LoggerLevel = "info"
	LogLevelWarning LoggerLevel = "warn"
	LogLevelError   LoggerLevel = "error"
)

var (
	// LogLevel is the current package-wide log level gate.
	LogLevel LoggerLevel

	loggerDebug = log.New(os.Stdout, "DEBUG: ", log.Ltime|log.Lshortfile)
	loggerInfo  = log.New(os.Stdout, "INFO: ", log.Ltime|log.Lshortfile)
	loggerWarn  = log.New(os.Stdout, "ALERT: ", log.Ltime|log.Lshortfile)
	loggerError = log.New(os.Stderr, "ERROR: ", log.Ltime|log.Lshortfile)

	// DebugLog emits a message at debug level: network construction,
	// mutation's topological growth, and the GA orchestrator's speciation
	// cluster counts all go through this.
	DebugLog = func(message string) {
		if acceptLogLevel(LogLevel, LogLevelDebug) {
			_ = loggerDebug.Output(2, message)
		}
	}
	// InfoLog emits a message at info level and up.
	InfoLog = func(message string) {
		if acceptLogLevel(LogLevel, LogLevelInfo) {
			_ = loggerInfo.Output(2, message)
		}
	}
	// WarnLog emits a message at warn level and up.
	WarnLog = func(message string) {
		if acceptLogLevel(LogLevel, LogLevelWarning) {
			_ = loggerWarn.Output(2, message)
		}
	}
	// ErrorLog emits a message at error level.
	ErrorLog = func(message string) {
		if acceptLogLevel(LogLevel, LogLevelError) {
			_ = loggerError.Output(2, message)
		}
	}
)

// InitLogger sets the package-wide log level from its string name.
func InitLogger(level string) error {
	switch level {
	case "debug":
		LogLevel = LogLevelDebug
	case "info":
		LogLevel = LogLevelInfo
	case "warn":
		LogLevel = LogLevelWarning
	case "error":
		LogLevel = LogLevelError
	default:
		return errors.Errorf("unsupported log level: [%s]", level)
	}
	return nil
}

func acceptLogLevel(currentLevel, targetLevel LoggerLevel) bool {
	switch currentLevel {
	case LogLevelDebug:
		return true
	case LogLevelInfo:
		return targetLevel == LogLevelInfo || targetLevel == LogLevelWarning || targetLevel == LogLevelError
	case LogLevelWarning:
		return targetLevel == LogLevelWarning || targetLevel == LogLevelError
	case LogLevelError:
		return targetLevel == LogLevelError
	default:
		_ = loggerError.Output(2, fmt.Sprintf(
			"unsupported NEAT log level was set: %q. use one of: debug, info, warn, error", currentLevel))
		return false
	}
}
