// Package config loads print profiles from TOML files. A PrintProfile
// carries both the geometry-relevant fields the slicing core consumes
// (internal/slicepipeline.PrintProfile) and the printer/material fields
// that only internal/gcodegen cares about.
package config

import (
	"os"

	"github.com/chazu/lignin-slicer/internal/geom"
	"github.com/chazu/lignin-slicer/internal/slicepipeline"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// PrintProfile is the full set of settings a slice job is run with. Only
// LayerHeight and FirstLayerHeight feed the geometric core; everything else
// passes through opaquely to gcodegen.
type PrintProfile struct {
	LayerHeight      float64 `toml:"layer_height"`
	FirstLayerHeight float64 `toml:"first_layer_height"`

	NozzleTempC         int     `toml:"nozzle_temp"`
	BedTempC            int     `toml:"bed_temp"`
	PrintSpeedMMPerMin  float64 `toml:"print_speed"`
	TravelSpeedMMPerMin float64 `toml:"travel_speed"`
	InfillDensity       float64 `toml:"infill_density"`

	GCodeStart string `toml:"gcode_start"`
	GCodeEnd   string `toml:"gcode_end"`
}

// defaults give a config file that only sets layer_height sane motion
// speeds rather than leaving the printer stationary.
func defaults() PrintProfile {
	return PrintProfile{
		PrintSpeedMMPerMin:  1800,
		TravelSpeedMMPerMin: 3000,
	}
}

// Load reads and validates a PrintProfile from a TOML file at path. It
// fails fast on non-positive layer heights rather than letting the
// orchestrator discover the problem mid-slice.
func Load(path string) (*PrintProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading %s", path)
	}

	profile := defaults()
	if err := toml.Unmarshal(raw, &profile); err != nil {
		return nil, errors.Wrapf(err, "config: parsing %s", path)
	}

	if err := profile.validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (p PrintProfile) validate() error {
	if p.LayerHeight <= 0 {
		return errors.Wrapf(geom.ErrInvalidConfig, "layer_height must be positive, got %v", p.LayerHeight)
	}
	if p.FirstLayerHeight <= 0 {
		return errors.Wrapf(geom.ErrInvalidConfig, "first_layer_height must be positive, got %v", p.FirstLayerHeight)
	}
	return nil
}

// Core extracts the geometry-relevant subset the slicing core operates on.
func (p PrintProfile) Core() slicepipeline.PrintProfile {
	return slicepipeline.PrintProfile{
		LayerHeight:      p.LayerHeight,
		FirstLayerHeight: p.FirstLayerHeight,
	}
}
