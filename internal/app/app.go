// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/resumedesc/internal/ctxlog"
	"github.com/vk/resumedesc/internal/descriptor"
	"github.com/vk/resumedesc/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	registry   *registry.Registry
	descriptor *descriptor.Descriptor
	overridden []string
}

// NewApp boots the application: it loads the descriptor, applies the
// environment overlay, resolves the declared modules and validates the
// sections they own. Any failure is returned as a typed descriptor error.
// When no modules are given, the core modules are registered.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	d, err := loadDescriptor(ctx, cfg.DescriptorPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Descriptor loaded and validated.", "source", d.Source)

	var overridden []string
	if cfg.EnvPrefix != "" {
		d, overridden, err = d.WithPublicEnv(cfg.Environ, cfg.EnvPrefix)
		if err != nil {
			return nil, err
		}
		if len(overridden) > 0 {
			logger.Info("Public runtime config overridden from environment.", "prefix", cfg.EnvPrefix, "keys", overridden)
		}
	}

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	if _, err := reg.Resolve(ctx, d.Modules); err != nil {
		return nil, err
	}
	if err := reg.ValidateSections(ctx, d); err != nil {
		return nil, err
	}
	logger.Debug("Module sections validated.")

	return &App{
		outW:       outW,
		logger:     logger,
		config:     cfg,
		registry:   reg,
		descriptor: d,
		overridden: overridden,
	}, nil
}

// Descriptor returns the loaded descriptor.
func (a *App) Descriptor() *descriptor.Descriptor {
	return a.descriptor
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// summary is the one-line description printed when no output is requested.
func (a *App) summary() string {
	d := a.descriptor
	return fmt.Sprintf("%s: %d modules, rendering %s, %d meta tags, %d link tags, compatibility date %s",
		d.Source,
		len(d.Modules),
		d.RenderingMode,
		len(d.Head.MetaTags),
		len(d.Head.LinkTags),
		d.CompatibilityDate.Format(descriptor.DateLayout),
	)
}
