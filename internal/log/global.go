package log

import "sync"

var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// SetDefaultLogger replaces the process-wide logger.
func SetDefaultLogger(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// DefaultLogger returns the process-wide logger, initializing one with
// default settings on first use.
func DefaultLogger() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = Default()
	}
	return defaultLogger
}
