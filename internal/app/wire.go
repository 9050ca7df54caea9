package app

import (
	"go.uber.org/zap"

	"gpxplan/internal/config"
	"gpxplan/internal/domain"
	"gpxplan/internal/gpx"
	convertsvc "gpxplan/internal/services/convert"
	"gpxplan/internal/store"
)

// Wire bundles the parser, stores, and services for the CLI.
type Wire struct {
	Parser  domain.TrackParser
	Plans   domain.PlanStore
	Convert domain.Converter
	Config  config.Config
	Log     *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	parser := gpx.New(log)
	plans := store.NewPlanFileStore()
	converter := convertsvc.New(parser, plans, log)

	return &Wire{
		Parser:  parser,
		Plans:   plans,
		Convert: converter,
		Config:  cfg.File,
		Log:     log,
	}, nil
}
