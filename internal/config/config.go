// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all mallnav configuration.
type Config struct {
	Venue   VenueConfig   `yaml:"venue"`
	Routing RoutingConfig `yaml:"routing"`
	Logging LoggingConfig `yaml:"logging"`
}

// VenueConfig locates the venue description.
type VenueConfig struct {
	// Path to a YAML or JSON venue description.
	Path string `yaml:"path"`
}

// RoutingConfig holds the graph and search cost constants.
type RoutingConfig struct {
	// VerticalUnitCost is the edge cost per floor travelled on a connector.
	VerticalUnitCost float64 `yaml:"vertical_unit_cost"`
	// FloorHeuristicWeight is the search estimate per floor of level difference.
	// It must not exceed VerticalUnitCost.
	FloorHeuristicWeight float64 `yaml:"floor_heuristic_weight"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
	Output string `yaml:"output"` // stdout, stderr
}

// Load reads configuration from a YAML file, then applies environment
// variable overrides and validates the result. An empty path skips the file.
//
// Environment variables:
//   - MALLNAV_VENUE
//   - MALLNAV_LOG_LEVEL, MALLNAV_LOG_FORMAT
//   - MALLNAV_VERTICAL_UNIT_COST, MALLNAV_FLOOR_HEURISTIC_WEIGHT
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		Venue: VenueConfig{
			Path: "venue.yaml",
		},
		Routing: RoutingConfig{
			VerticalUnitCost:     5,
			FloorHeuristicWeight: 5,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("MALLNAV_VENUE"); v != "" {
		cfg.Venue.Path = v
	}
	if v := os.Getenv("MALLNAV_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("MALLNAV_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	if v := os.Getenv("MALLNAV_VERTICAL_UNIT_COST"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: MALLNAV_VERTICAL_UNIT_COST: %w", ErrInvalid, err)
		}
		cfg.Routing.VerticalUnitCost = f
	}
	if v := os.Getenv("MALLNAV_FLOOR_HEURISTIC_WEIGHT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: MALLNAV_FLOOR_HEURISTIC_WEIGHT: %w", ErrInvalid, err)
		}
		cfg.Routing.FloorHeuristicWeight = f
	}

	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if c.Venue.Path == "" {
		errs = append(errs, "venue.path is required")
	}

	r := c.Routing
	if !(r.VerticalUnitCost > 0) || math.IsInf(r.VerticalUnitCost, 0) {
		errs = append(errs, "routing.vertical_unit_cost must be a positive number")
	}
	if r.FloorHeuristicWeight < 0 || math.IsNaN(r.FloorHeuristicWeight) || math.IsInf(r.FloorHeuristicWeight, 0) {
		errs = append(errs, "routing.floor_heuristic_weight must be a non-negative number")
	} else if r.FloorHeuristicWeight > r.VerticalUnitCost {
		errs = append(errs, "routing.floor_heuristic_weight must not exceed routing.vertical_unit_cost")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, "logging.format must be json or text")
	}
	switch strings.ToLower(c.Logging.Output) {
	case "stdout", "stderr":
	default:
		errs = append(errs, "logging.output must be stdout or stderr")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}

	return nil
}
