// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"fmt"
	"strings"
)

// Export formats understood by Run.
const (
	ExportHCL  = "hcl"
	ExportYAML = "yaml"
	ExportJSON = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// DescriptorPath is a descriptor file or directory. Empty selects the
	// built-in resume editor descriptor.
	DescriptorPath string

	Get        string // field path to print, if any
	Export     string // hcl, yaml or json
	RenderHead bool
	ServePort  int

	// EnvPrefix selects the variables overlaid on runtimeConfig.public.
	// Empty disables the overlay.
	EnvPrefix string
	Environ   []string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	var problems []string

	switch cfg.LogFormat {
	case "text", "json":
	default:
		problems = append(problems, "invalid log-format: must be 'text' or 'json'")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, "invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	switch cfg.Export {
	case "", ExportHCL, ExportYAML, ExportJSON:
	default:
		problems = append(problems, fmt.Sprintf("invalid export format %q: must be 'hcl', 'yaml' or 'json'", cfg.Export))
	}
	if cfg.ServePort < 0 || cfg.ServePort > 65535 {
		problems = append(problems, fmt.Sprintf("invalid serve-port %d: must be between 0 and 65535", cfg.ServePort))
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return &cfg, nil
}
