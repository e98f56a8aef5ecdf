// Package logging builds the zap loggers used across the console.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"alcyxob/trainer-console/internal/config"
)

// New returns a JSON production logger, or a console development logger when
// cfg.Development is set. Unknown levels fall back to info.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zapcore.InfoLevel)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = level
	return zcfg.Build()
}

// Nop is handy for tests and for callers that do not care about logs.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
