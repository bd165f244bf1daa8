// SPDX-License-Identifier: MIT
// Package: mallnav/builder
//
// options.go — functional options for Build.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Build itself never panics.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"io"
	"log/slog"
	"math"
)

// Option customizes Build by mutating a builderConfig before construction begins.
type Option func(*builderConfig)

// builderConfig aggregates all knobs used by Build.
type builderConfig struct {
	verticalUnitCost float64
	logger           *slog.Logger
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		verticalUnitCost: DefaultVerticalUnitCost,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithVerticalUnitCost sets the cost per floor level of a vertical connector leg.
// Panics unless cost is finite and positive.
func WithVerticalUnitCost(cost float64) Option {
	if cost <= 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		panic("builder: WithVerticalUnitCost requires a finite positive cost")
	}
	return func(c *builderConfig) {
		c.verticalUnitCost = cost
	}
}

// WithLogger routes build diagnostics (data-integrity warnings, strategy
// choices) to logger. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = logger.With("component", "builder")
	}
}
