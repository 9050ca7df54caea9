// Package config loads tool configuration with layered precedence:
// built-in defaults, then an optional gpxplan.yaml, then GPXPLAN_*
// environment variables. Command flags override on top of the result.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"gpxplan/internal/domain"
)

// Mission defaults. Matching QGC's usual rover setup: explicit 2 m
// acceptance radius, 5 m/s cruise, waypoints at ground level.
const (
	DefaultStep             = 1
	DefaultAltitude         = 0.0
	DefaultAcceptanceRadius = 2.0
	DefaultCruiseSpeed      = 5.0
	DefaultHoldTime         = 0.0
)

const envPrefix = "GPXPLAN_"

// Config holds the tunable conversion defaults.
type Config struct {
	Step             int     `koanf:"step"`
	DefaultAlt       float64 `koanf:"default_alt"`
	AcceptanceRadius float64 `koanf:"acceptance_radius"`
	CruiseSpeed      float64 `koanf:"cruise_speed"`
	HoldTime         float64 `koanf:"hold_time"`
	Verbose          bool    `koanf:"verbose"`
}

// MissionParams converts the config into domain mission parameters.
func (c Config) MissionParams() domain.MissionParams {
	return domain.MissionParams{
		Step:             c.Step,
		DefaultAlt:       c.DefaultAlt,
		AcceptanceRadius: c.AcceptanceRadius,
		CruiseSpeed:      c.CruiseSpeed,
		HoldTime:         c.HoldTime,
	}
}

// findConfigFile finds the config file to use.
// Priority: explicit path > gpxplan.yaml > gpxplan.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"gpxplan.yaml", "gpxplan.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds the effective configuration. cfgFile may be empty, in
// which case gpxplan.yaml/.yml in the working directory is used when
// present. A missing config file is not an error.
func Load(cfgFile string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"step":              DefaultStep,
		"default_alt":       DefaultAltitude,
		"acceptance_radius": DefaultAcceptanceRadius,
		"cruise_speed":      DefaultCruiseSpeed,
		"hold_time":         DefaultHoldTime,
		"verbose":           false,
	}, "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	// An explicitly named file must exist; discovered ones already do.
	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	// GPXPLAN_CRUISE_SPEED -> cruise_speed
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
