// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mallnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
venue:
  path: "/srv/mall.yaml"
routing:
  vertical_unit_cost: 8
  floor_heuristic_weight: 6
logging:
  level: debug
  format: json
  output: stdout
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/mall.yaml", cfg.Venue.Path)
	assert.Equal(t, 8.0, cfg.Routing.VerticalUnitCost)
	assert.Equal(t, 6.0, cfg.Routing.FloorHeuristicWeight)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "venue:\n  path: other.json\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "other.json", cfg.Venue.Path)
	assert.Equal(t, 5.0, cfg.Routing.VerticalUnitCost)
	assert.Equal(t, 5.0, cfg.Routing.FloorHeuristicWeight)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Routing, cfg.Routing)
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "routing: [oops"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MALLNAV_VENUE", "/env/venue.yaml")
	t.Setenv("MALLNAV_LOG_LEVEL", "error")
	t.Setenv("MALLNAV_LOG_FORMAT", "json")
	t.Setenv("MALLNAV_VERTICAL_UNIT_COST", "10")
	t.Setenv("MALLNAV_FLOOR_HEURISTIC_WEIGHT", "2.5")

	cfg, err := Load(writeConfig(t, "venue:\n  path: file.yaml\n"))
	require.NoError(t, err)
	assert.Equal(t, "/env/venue.yaml", cfg.Venue.Path)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 10.0, cfg.Routing.VerticalUnitCost)
	assert.Equal(t, 2.5, cfg.Routing.FloorHeuristicWeight)
}

func TestLoad_BadEnvNumber(t *testing.T) {
	t.Setenv("MALLNAV_VERTICAL_UNIT_COST", "five")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero heuristic weight", func(c *Config) { c.Routing.FloorHeuristicWeight = 0 }, false},
		{"missing venue path", func(c *Config) { c.Venue.Path = "" }, true},
		{"zero vertical cost", func(c *Config) { c.Routing.VerticalUnitCost = 0 }, true},
		{"negative heuristic weight", func(c *Config) { c.Routing.FloorHeuristicWeight = -1 }, true},
		{"heuristic above vertical cost", func(c *Config) { c.Routing.FloorHeuristicWeight = 10 }, true},
		{"unknown format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"unknown output", func(c *Config) { c.Logging.Output = "file" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
