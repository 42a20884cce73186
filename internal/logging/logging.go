// Package logging builds the process logger. The quiz owns stdout, so
// log output goes to the configured file, or to stderr in verbose mode;
// with neither, logging is disabled entirely.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tagquiz/internal/config"
)

// New builds a zap logger from the logging configuration. Verbose
// forces the debug level and adds stderr as a sink.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	var outputs []string
	if cfg.File != "" {
		outputs = append(outputs, cfg.File)
	}
	if verbose {
		outputs = append(outputs, "stderr")
	}
	if len(outputs) == 0 {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = outputs
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}
