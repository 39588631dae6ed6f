// Package logger provides the shared Zap logger for the persistence core.
// The store and migration runner log through it; repositories stay quiet and
// report through errors instead.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init initializes the global logger for the given environment (the ENV
// variable read by internal/config). "production" gets a JSON encoder;
// everything else gets a console encoder without stacktraces, which keeps
// migration and lifecycle logs readable during development.
func Init(env string) {
	once.Do(func() {
		var base *zap.Logger
		var err error

		if env == "production" {
			base, err = zap.NewProduction()
		} else {
			cfg := zap.NewDevelopmentConfig()
			cfg.DisableStacktrace = true
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
			base, err = cfg.Build()
		}
		if err != nil {
			// A store that cannot log must still be able to open.
			base = zap.NewNop()
		}

		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger, initializing a development logger if
// Init has not been called yet.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes any buffered log entries. Call this before the app exits.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
