// Package logging provides centralized logging functionality using zap logger.
//
// The terminal belongs to the UI and robot output keeps stderr clean, so logs
// only go to a file. Until Init is called with a path everything is discarded.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop().Sugar()
)

// Init initializes the package-level logger. An empty path disables logging.
func Init(debug bool, path string) error {
	if path == "" {
		set(zap.NewNop())
		return nil
	}

	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}
	set(zapLogger)
	return nil
}

func set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l.Sugar()
}

func sugared() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Sync flushes any buffered log entries
func Sync() {
	_ = sugared().Sync()
}

// Package-level convenience functions
func Debugw(msg string, keysAndValues ...interface{}) {
	sugared().Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	sugared().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	sugared().Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	sugared().Errorw(msg, keysAndValues...)
}
