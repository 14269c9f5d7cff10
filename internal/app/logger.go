// Package app provides logger initialization.
package app

import (
	"github.com/stevesplace/order-service/config"
	"github.com/stevesplace/order-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from the log configuration.
// An empty level falls back to info.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
