package logger

import "go.uber.org/zap"

// LoggerConfig controls logger construction.
type LoggerConfig struct {
	Debug bool
}

// NewLogger returns a production zap logger, or a development logger with
// human-readable output when Debug is set.
func NewLogger(cfg *LoggerConfig) (*zap.Logger, error) {
	if cfg != nil && cfg.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
