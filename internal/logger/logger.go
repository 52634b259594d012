// Package logger holds the process-wide zap logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init builds the global logger. Production env gets structured JSON,
// anything else a human-readable console encoder.
func Init(env, level string) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level.SetLevel(lvl)

	built, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	log = built
}

// Get returns the global logger, falling back to a production logger when
// Init was never called (tests, one-off tools).
func Get() *zap.Logger {
	if log == nil {
		fallback, err := zap.NewProduction()
		if err != nil {
			panic("failed to create fallback logger: " + err.Error())
		}
		log = fallback
	}
	return log
}
