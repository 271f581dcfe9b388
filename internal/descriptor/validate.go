// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"golang.org/x/text/language"
)

// Validate checks every invariant of the descriptor and returns a
// *ConfigurationError listing all problems found, or nil.
func (d *Descriptor) Validate() error {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	problems = append(problems, uniqueEntries("modules", d.Modules)...)

	if !d.RenderingMode.Valid() {
		addf("renderingMode %q is not one of %q, %q", d.RenderingMode, RenderingUniversal, RenderingClient)
	}

	problems = append(problems, d.Head.validate()...)
	problems = append(problems, uniqueEntries("stylesheetEntryPoints", d.Stylesheets)...)
	problems = append(problems, uniqueEntries("buildOptimization.include", d.Build.Include)...)

	if d.CompatibilityDate.IsZero() {
		addf("compatibilityDate is required")
	}

	for _, section := range []struct {
		path string
		val  cty.Value
	}{
		{"uiOptions", d.UIOptions},
		{"lintStyle", d.LintStyle},
		{"runtimeConfig.public", d.RuntimeConfig.Public},
	} {
		if ty := ObjectOrEmpty(section.val).Type(); !ty.IsObjectType() && !ty.IsMapType() {
			addf("%s must be an object, got %s", section.path, ty.FriendlyName())
		}
	}
	problems = append(problems, validatePublic(ObjectOrEmpty(d.RuntimeConfig.Public))...)

	if len(problems) > 0 {
		return &ConfigurationError{Source: d.Source, Problems: problems}
	}
	return nil
}

func (h *DocumentHead) validate() []string {
	var problems []string

	for name := range h.HTMLAttributes {
		if strings.TrimSpace(name) == "" {
			problems = append(problems, "documentHead.htmlAttributes contains an empty attribute name")
		}
	}
	if lang, ok := h.HTMLAttributes["lang"]; ok {
		if _, err := language.Parse(lang); err != nil {
			problems = append(problems, fmt.Sprintf("documentHead.htmlAttributes.lang %q is not a valid language tag", lang))
		}
	}

	for i, m := range h.MetaTags {
		at := fmt.Sprintf("documentHead.metaTags[%d]", i)
		if !m.Kind.Valid() {
			problems = append(problems, fmt.Sprintf("%s kind %q must be %q or %q", at, m.Kind, MetaName, MetaProperty))
		}
		if strings.TrimSpace(m.Key) == "" {
			problems = append(problems, fmt.Sprintf("%s key is required", at))
		}
		if strings.TrimSpace(m.Value) == "" {
			problems = append(problems, fmt.Sprintf("%s (%s) value is required", at, m.Key))
		}
		if m.Kind == MetaProperty && m.Key == "og:locale" && m.Value != "" {
			if _, err := language.Parse(m.Value); err != nil {
				problems = append(problems, fmt.Sprintf("%s og:locale %q is not a valid locale", at, m.Value))
			}
		}
	}

	for i, l := range h.LinkTags {
		at := fmt.Sprintf("documentHead.linkTags[%d]", i)
		if strings.TrimSpace(l.Rel) == "" {
			problems = append(problems, fmt.Sprintf("%s relation is required", at))
		}
		if strings.TrimSpace(l.Href) == "" {
			problems = append(problems, fmt.Sprintf("%s (%s) href is required", at, l.Rel))
		}
	}

	return problems
}

// uniqueEntries reports empty and repeated entries of an ordered list.
func uniqueEntries(path string, entries []string) []string {
	var problems []string
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e) == "" {
			problems = append(problems, fmt.Sprintf("%s[%d] is empty", path, i))
			continue
		}
		if first, dup := seen[e]; dup {
			problems = append(problems, fmt.Sprintf("%s[%d] %q duplicates entry %d", path, i, e, first))
			continue
		}
		seen[e] = i
	}
	return problems
}
