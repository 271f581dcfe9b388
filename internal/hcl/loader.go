// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/resumedesc/internal/ctxlog"
	"github.com/vk/resumedesc/internal/descriptor"
	"github.com/vk/resumedesc/internal/fsutil"
)

// Extension is the file extension of HCL descriptor files.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the descriptor.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL descriptor loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ descriptor.Loader = (*Loader)(nil)

// Load parses every .hcl file found under paths and merges them into a single
// descriptor. An attribute or block defined in more than one file is an error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*descriptor.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, Extension)
	if err != nil {
		return nil, &descriptor.ConfigurationError{Source: strings.Join(paths, ", "), Err: err}
	}
	if len(files) == 0 {
		return nil, &descriptor.ConfigurationError{
			Source:   strings.Join(paths, ", "),
			Problems: []string{"no " + Extension + " descriptor files found"},
		}
	}
	logger.Debug("Discovered HCL files.", "files", files)

	parser := hclparse.NewParser()
	parsed := make([]*hcl.File, 0, len(files))
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, &descriptor.ConfigurationError{Source: file, Err: diags}
		}
		parsed = append(parsed, hclFile)
	}

	return l.decode(ctx, strings.Join(files, ", "), hcl.MergeFiles(parsed))
}

// LoadSource parses a descriptor held in memory. The filename is used in
// diagnostics only.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*descriptor.Descriptor, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, &descriptor.ConfigurationError{Source: filename, Err: diags}
	}
	return l.decode(ctx, filename, hclFile.Body)
}

// decode translates a parsed body into a validated descriptor.
func (l *Loader) decode(ctx context.Context, source string, body hcl.Body) (*descriptor.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)

	d, diags := translateRoot(body)
	if diags.HasErrors() {
		return nil, &descriptor.ConfigurationError{Source: source, Err: diags}
	}
	d.Source = source

	if err := d.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("HCL descriptor decoded.",
		"source", source,
		"modules", len(d.Modules),
		"meta_tags", len(d.Head.MetaTags),
		"link_tags", len(d.Head.LinkTags),
	)
	return d, nil
}
