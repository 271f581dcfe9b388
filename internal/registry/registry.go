// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// SectionValidator checks the value of the descriptor section a capability
// owns and returns one message per problem.
type SectionValidator func(ctx context.Context, v cty.Value) []string

// Capability describes what a declared module contributes to the descriptor.
type Capability struct {
	// ID is the module identifier as written in the descriptor.
	ID string
	// Section is the descriptor field path the module owns, if any.
	Section string
	// Validate checks the owned section. It may be nil.
	Validate SectionValidator
}

// Registry holds the capabilities registered for a single application instance.
type Registry struct {
	capabilities map[string]*Capability
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		capabilities: make(map[string]*Capability),
	}
}

// RegisterCapability registers a module capability. Registering the same ID
// twice is a programming error and panics.
func (r *Registry) RegisterCapability(c *Capability) {
	if c == nil || c.ID == "" {
		panic("capability must have a non-empty ID")
	}
	if _, exists := r.capabilities[c.ID]; exists {
		panic(fmt.Sprintf("capability with ID '%s' already registered", c.ID))
	}
	slog.Debug("Registering module capability.", "id", c.ID, "section", c.Section)
	r.capabilities[c.ID] = c
}

// Capability returns the capability registered under id.
func (r *Registry) Capability(id string) (*Capability, bool) {
	c, ok := r.capabilities[id]
	return c, ok
}

// Known returns the sorted IDs of every registered capability.
func (r *Registry) Known() []string {
	ids := make([]string, 0, len(r.capabilities))
	for id := range r.capabilities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
