// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"context"
	"fmt"

	"github.com/vk/resumedesc/internal/ctxlog"
	"github.com/vk/resumedesc/internal/descriptor"
)

// Resolve returns the capabilities for the declared modules, in declaration
// order. Every identifier that is not registered is reported in a single
// *descriptor.ModuleResolutionError.
func (r *Registry) Resolve(ctx context.Context, modules []string) ([]*Capability, error) {
	logger := ctxlog.FromContext(ctx)

	resolved := make([]*Capability, 0, len(modules))
	var missing []string
	for _, id := range modules {
		c, ok := r.capabilities[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		resolved = append(resolved, c)
	}

	if len(missing) > 0 {
		return nil, &descriptor.ModuleResolutionError{Modules: missing, Known: r.Known()}
	}

	logger.Debug("Modules resolved.", "count", len(resolved))
	return resolved, nil
}

// ValidateSections runs the validator of every declared module against the
// section it owns. A populated section whose owning module is not declared
// is ignored by the host framework, so it is only logged.
func (r *Registry) ValidateSections(ctx context.Context, d *descriptor.Descriptor) error {
	logger := ctxlog.FromContext(ctx)

	declared := make(map[string]bool, len(d.Modules))
	for _, id := range d.Modules {
		declared[id] = true
	}

	var problems []string
	for _, id := range r.Known() {
		c := r.capabilities[id]
		if c.Section == "" {
			continue
		}

		v, err := d.Value(c.Section)
		if err != nil {
			return fmt.Errorf("capability '%s' owns unknown section: %w", id, err)
		}

		if !declared[id] {
			if descriptor.Populated(v) {
				logger.Warn("Descriptor section is set but its module is not declared; it will be ignored.",
					"section", c.Section, "module", id)
			}
			continue
		}
		if c.Validate == nil {
			continue
		}
		for _, p := range c.Validate(ctx, v) {
			problems = append(problems, fmt.Sprintf("%s: %s", c.Section, p))
		}
	}

	if len(problems) > 0 {
		return &descriptor.ConfigurationError{Source: d.Source, Problems: problems}
	}
	return nil
}
