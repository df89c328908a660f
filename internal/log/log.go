// Package log provides centralized logging functionality using zap logger.
// Log output always goes to stderr so that reports written to stdout can be
// piped cleanly.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var log *zap.SugaredLogger

// wrapped skips one extra frame so the package-level helpers report their caller
var wrapped *zap.SugaredLogger

// Init initializes the package-level logger. Debug mode uses zap's
// human-readable development encoder at debug level; otherwise JSON at info.
func Init(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.DisableStacktrace = true
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	zapLogger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	log = zapLogger.Sugar()
	wrapped = zapLogger.WithOptions(zap.AddCallerSkip(1)).Sugar()
	return nil
}

// GetSugaredLogger returns the sugared logger instance
func GetSugaredLogger() *zap.SugaredLogger {
	if log == nil {
		// Fallback logger if not initialized
		log = zap.NewNop().Sugar()
		wrapped = log
	}
	return log
}

// Sync flushes any buffered log entries
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

// Package-level convenience functions
func Debugw(msg string, keysAndValues ...interface{}) {
	helper().Debugw(msg, keysAndValues...)
}

func Errorf(template string, args ...interface{}) {
	helper().Errorf(template, args...)
}

func helper() *zap.SugaredLogger {
	if wrapped == nil {
		GetSugaredLogger()
	}
	return wrapped
}
