// Package logging builds the process logger.
package logging

import (
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/skyroute/internal/config"
)

// NewLogger builds a zap logger based on cfg.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if strings.EqualFold(cfg.LogFormat, "json") {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zapCfg.Level = Level(cfg)

	return zapCfg.Build()
}

// Level maps cfg.LogLevel to a zap level. A positive LogVerbosity lowers it
// below debug so logr V(n) lines with n ≤ verbosity are emitted.
func Level(cfg *config.Config) zap.AtomicLevel {
	var lvl zapcore.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		lvl = zap.DebugLevel
	case "warn":
		lvl = zap.WarnLevel
	case "error":
		lvl = zap.ErrorLevel
	default:
		lvl = zap.InfoLevel
	}
	if v := zapcore.Level(-cfg.LogVerbosity); cfg.LogVerbosity > 0 && v < lvl {
		lvl = v
	}

	return zap.NewAtomicLevelAt(lvl)
}

// Logr bridges z to logr for library packages.
func Logr(z *zap.Logger) logr.Logger {
	return zapr.NewLogger(z)
}
