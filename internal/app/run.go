// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/vk/resumedesc/internal/ctxlog"
	"github.com/vk/resumedesc/internal/descriptor"
	"github.com/vk/resumedesc/internal/hcl"
	"github.com/vk/resumedesc/internal/head"
	"github.com/vk/resumedesc/internal/metrics"
	"github.com/vk/resumedesc/internal/yamlcfg"
)

// Run performs the requested outputs in order: field lookup, export, head
// rendering, then the HTTP surface, which blocks until ctx is cancelled.
// With nothing requested it prints a one-line summary.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	acted := false

	if a.config.Get != "" {
		acted = true
		if err := a.printField(a.config.Get); err != nil {
			return err
		}
	}

	if a.config.Export != "" {
		acted = true
		out, err := a.export(a.config.Export)
		if err != nil {
			return err
		}
		if _, err := a.outW.Write(out); err != nil {
			return err
		}
	}

	if a.config.RenderHead {
		acted = true
		if err := head.RenderDocumentStart(a.outW, a.descriptor.Head); err != nil {
			return err
		}
	}

	if a.config.ServePort > 0 {
		acted = true
		ln, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(a.config.ServePort)))
		if err != nil {
			return fmt.Errorf("failed to listen on port %d: %w", a.config.ServePort, err)
		}
		if err := a.serve(ctx, ln); err != nil {
			return err
		}
	}

	if !acted {
		fmt.Fprintln(a.outW, a.summary())
	}

	a.logger.Info("Descriptor ready.",
		"source", a.descriptor.Source,
		"modules", a.descriptor.Modules,
		"rendering_mode", a.descriptor.RenderingMode,
		"env_overrides", len(a.overridden),
	)
	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) printField(path string) error {
	v, err := a.descriptor.Value(path)
	if err != nil {
		metrics.RecordFieldLookup(metrics.OutcomeUnknown)
		return err
	}
	metrics.RecordFieldLookup(metrics.OutcomeFound)

	out, err := descriptor.MarshalValue(v)
	if err != nil {
		return fmt.Errorf("encoding field %q: %w", path, err)
	}
	_, err = fmt.Fprintf(a.outW, "%s\n", out)
	return err
}

func (a *App) export(format string) ([]byte, error) {
	switch format {
	case ExportHCL:
		return hcl.Encode(a.descriptor)
	case ExportYAML:
		return yamlcfg.Encode(a.descriptor)
	case ExportJSON:
		out, err := a.descriptor.JSON()
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}
