// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package ui registers the "@nuxt/ui" capability, which owns the uiOptions
// section of the descriptor.
package ui

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/resumedesc/internal/ctxlog"
	"github.com/vk/resumedesc/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ID is the module identifier as written in the descriptor.
const ID = "@nuxt/ui"

// Section is the descriptor field owned by this module.
const Section = "uiOptions"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the capability with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterCapability(&registry.Capability{
		ID:       ID,
		Section:  Section,
		Validate: ValidateOptions,
	})
}

// boolOptions are the top-level switches of the component library.
var boolOptions = map[string]bool{
	"fonts":     true,
	"colorMode": true,
	"mdc":       true,
	"content":   true,
}

// ValidateOptions checks the uiOptions object. Options this module does not
// know are passed through to the component library and only logged.
func ValidateOptions(ctx context.Context, v cty.Value) []string {
	logger := ctxlog.FromContext(ctx)

	if !v.Type().IsObjectType() {
		return []string{fmt.Sprintf("must be an object, got %s", v.Type().FriendlyName())}
	}

	var problems []string
	for _, name := range sortedAttributes(v) {
		attr := v.GetAttr(name)
		switch {
		case name == "experimental":
			problems = append(problems, validateExperimental(attr)...)
		case name == "prefix":
			var prefix string
			if err := gocty.FromCtyValue(attr, &prefix); err != nil || prefix == "" {
				problems = append(problems, "prefix must be a non-empty string")
			}
		case name == "theme":
			if !attr.Type().IsObjectType() && !attr.Type().IsMapType() {
				problems = append(problems, fmt.Sprintf("theme must be an object, got %s", attr.Type().FriendlyName()))
			}
		case boolOptions[name]:
			var b bool
			if err := gocty.FromCtyValue(attr, &b); err != nil {
				problems = append(problems, fmt.Sprintf("%s must be a bool", name))
			}
		default:
			logger.Warn("Unrecognised UI option passed through.", "option", name)
		}
	}
	return problems
}

// validateExperimental requires an object of boolean feature flags.
func validateExperimental(v cty.Value) []string {
	if !v.Type().IsObjectType() {
		return []string{fmt.Sprintf("experimental must be an object, got %s", v.Type().FriendlyName())}
	}

	var problems []string
	for _, flag := range sortedAttributes(v) {
		var b bool
		if err := gocty.FromCtyValue(v.GetAttr(flag), &b); err != nil {
			problems = append(problems, fmt.Sprintf("experimental.%s must be a bool", flag))
		}
	}
	return problems
}

func sortedAttributes(obj cty.Value) []string {
	names := make([]string, 0, len(obj.Type().AttributeTypes()))
	for name := range obj.Type().AttributeTypes() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
