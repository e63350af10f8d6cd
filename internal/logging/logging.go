// Package logging builds the shared zap logger every component takes
// at construction, rather than reaching for a package-level global
// (spec SPEC_FULL.md AMBIENT STACK).
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a development-friendly console logger when debug is true
// (matching the teacher's verbose-flag gating, here driven by
// session.Config.Debug rather than an env var), otherwise a quieter
// production logger.
func New(debug bool) *zap.SugaredLogger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		// Logger construction failing means zap itself is misconfigured;
		// fall back to a no-op logger rather than panic the caller.
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
