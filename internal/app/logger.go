// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/pickship/config"
	"github.com/guttosm/pickship/internal/logger"
)

// InitializeLogger initializes the global logger from configuration.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
