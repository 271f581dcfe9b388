// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package eslint registers the "@nuxt/eslint" capability, which owns the
// lintStyle section of the descriptor.
package eslint

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/vk/resumedesc/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ID is the module identifier as written in the descriptor.
const ID = "@nuxt/eslint"

// Section is the descriptor field owned by this module.
const Section = "lintStyle"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the capability with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterCapability(&registry.Capability{
		ID:       ID,
		Section:  Section,
		Validate: ValidateStylistic,
	})
}

// option checks a single stylistic option and returns a problem or "".
type option func(v cty.Value) string

// options are the stylistic customisations understood by the lint preset.
var options = map[string]option{
	"indent":       indentOption,
	"quotes":       oneOf("single", "double", "backtick"),
	"semi":         boolOption,
	"jsx":          boolOption,
	"arrowParens":  boolOption,
	"braceStyle":   oneOf("1tbs", "stroustrup", "allman"),
	"blockSpacing": boolOption,
	"quoteProps":   oneOf("always", "as-needed", "consistent", "consistent-as-needed"),
	"commaDangle":  oneOf("never", "always", "always-multiline", "only-multiline"),
}

// ValidateStylistic checks the lintStyle object. Unknown options are
// rejected since the lint preset would silently ignore them.
func ValidateStylistic(_ context.Context, v cty.Value) []string {
	if !v.Type().IsObjectType() {
		return []string{fmt.Sprintf("must be an object, got %s", v.Type().FriendlyName())}
	}

	var problems []string
	for _, name := range sortedAttributes(v) {
		check, ok := options[name]
		if !ok {
			problems = append(problems, fmt.Sprintf("unknown stylistic option %q", name))
			continue
		}
		if p := check(v.GetAttr(name)); p != "" {
			problems = append(problems, fmt.Sprintf("%s %s", name, p))
		}
	}
	return problems
}

func boolOption(v cty.Value) string {
	var b bool
	if err := gocty.FromCtyValue(v, &b); err != nil {
		return "must be a bool"
	}
	return ""
}

func oneOf(allowed ...string) option {
	return func(v cty.Value) string {
		var s string
		if err := gocty.FromCtyValue(v, &s); err == nil {
			for _, a := range allowed {
				if s == a {
					return ""
				}
			}
		}
		return fmt.Sprintf("must be one of %q", allowed)
	}
}

// indentOption accepts a positive number of spaces or "tab".
func indentOption(v cty.Value) string {
	if v.IsKnown() && !v.IsNull() {
		switch v.Type() {
		case cty.String:
			if v.AsString() == "tab" {
				return ""
			}
		case cty.Number:
			var n int
			if err := gocty.FromCtyValue(v, &n); err == nil && v.AsBigFloat().Cmp(big.NewFloat(0)) > 0 {
				return ""
			}
		}
	}
	return `must be a positive whole number or "tab"`
}

func sortedAttributes(obj cty.Value) []string {
	names := make([]string, 0, len(obj.Type().AttributeTypes()))
	for name := range obj.Type().AttributeTypes() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
