// SPDX-License-Identifier: MIT

// Package config handles loading and validating mallnav configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of routing constants
//   - Default value handling
//
// Usage:
//
//	cfg, err := config.Load("mallnav.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Venue.Path)
package config
