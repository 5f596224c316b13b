// Package logging builds the structured zap logger the scheduler CLI and its packages log
// through, grounded in noah-isme-sma-adp-api's pkg/logger setup.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Env selects between development (console, debug-friendly) and production (JSON) encoders.
type Env string

const (
	EnvDevelopment Env = "development"
	EnvProduction  Env = "production"
)

// Options configures the logger. Zero-value Options is development-console at debug level.
type Options struct {
	Env    Env
	Level  string // e.g. "debug", "info", "warn"; empty picks the Env's default (debug for development, info for production)
	Format string // "console" or "json"; empty picks the Env's default
}

// OptionsFromEnv reads APP_ENV, LOG_LEVEL and LOG_FORMAT from the process environment, the way
// the scheduler CLI is expected to be configured alongside internal/config's GA parameters.
func OptionsFromEnv() Options {
	env := EnvDevelopment
	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		env = EnvProduction
	}
	return Options{
		Env:    env,
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
	}
}

// New builds a *zap.Logger per opts.
func New(opts Options) (*zap.Logger, error) {
	var zapCfg zap.Config
	if opts.Env == EnvProduction {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch opts.Format {
	case "json":
		zapCfg.Encoding = "json"
	case "console":
		zapCfg.Encoding = "console"
	}

	if opts.Level != "" {
		if err := zapCfg.Level.UnmarshalText([]byte(opts.Level)); err != nil {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
	}

	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapCfg.Build()
}

// Generation logs one scheduler generation's metrics at info level, the fields a reporting
// pipeline or operator would want to grep for: best hard/soft, diversity, and repair fix count.
func Generation(l *zap.Logger, generation int, bestHard int, bestSoft float64, diversity float64, totalRepairFixes int) {
	l.Info("generation_complete",
		zap.Int("generation", generation),
		zap.Int("best_hard", bestHard),
		zap.Float64("best_soft", bestSoft),
		zap.Float64("diversity", diversity),
		zap.Int("repair_fixes", totalRepairFixes),
	)
}
