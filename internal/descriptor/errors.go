// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"fmt"
	"strings"
)

// Error codes are string-based so they read well in logs and JSON bodies.
const (
	CodeInvalidConfig    = "INVALID_CONFIGURATION"
	CodeUnknownField     = "UNKNOWN_FIELD"
	CodeModuleResolution = "MODULE_RESOLUTION_FAILED"
)

// ConfigurationError reports a static definition that failed parsing or
// schema validation. It is fatal at boot.
type ConfigurationError struct {
	// Source is the file or set of files being loaded, if known.
	Source string
	// Problems lists individual validation failures.
	Problems []string
	// Err is the underlying parse or decode error, if any.
	Err error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("invalid descriptor")
	if e.Source != "" {
		fmt.Fprintf(&b, " %s", e.Source)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if len(e.Problems) > 0 {
		b.WriteString(":\n- ")
		b.WriteString(strings.Join(e.Problems, "\n- "))
	}
	return b.String()
}

// Unwrap returns the underlying parse error.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// Code returns CodeInvalidConfig.
func (e *ConfigurationError) Code() string { return CodeInvalidConfig }

// UnknownFieldError reports a field path that is not part of the schema.
type UnknownFieldError struct {
	Path   string
	Detail string
}

// Error implements the error interface.
func (e *UnknownFieldError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("unknown descriptor field %q", e.Path)
	}
	return fmt.Sprintf("unknown descriptor field %q: %s", e.Path, e.Detail)
}

// Code returns CodeUnknownField.
func (e *UnknownFieldError) Code() string { return CodeUnknownField }

// ModuleResolutionError reports declared module identifiers that no
// registered capability provides.
type ModuleResolutionError struct {
	Modules []string
	Known   []string
}

// Error implements the error interface.
func (e *ModuleResolutionError) Error() string {
	known := "none"
	if len(e.Known) > 0 {
		known = strings.Join(e.Known, ", ")
	}
	return fmt.Sprintf("cannot resolve module(s) %s (known: %s)", strings.Join(e.Modules, ", "), known)
}

// Code returns CodeModuleResolution.
func (e *ModuleResolutionError) Code() string { return CodeModuleResolution }
