package app

import (
	"go.uber.org/zap"

	"gpxplan/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	File   config.Config // loaded tool configuration
	Logger *zap.Logger   // optional; defaults to a nop logger
}
