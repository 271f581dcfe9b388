// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/resumedesc/internal/ctxlog"
	"github.com/vk/resumedesc/internal/descriptor"
	"github.com/vk/resumedesc/internal/fsutil"
	"github.com/vk/resumedesc/internal/hcl"
	"github.com/vk/resumedesc/internal/yamlcfg"
)

// loadDescriptor loads the descriptor at path, or the built-in one when path
// is empty.
func loadDescriptor(ctx context.Context, path string) (*descriptor.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)

	if path == "" {
		logger.Debug("No descriptor path given, using the built-in descriptor.")
		return hcl.LoadStatic(ctx)
	}

	loader, err := loaderFor(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Descriptor loader selected.", "path", path, "loader", fmt.Sprintf("%T", loader))
	return loader.Load(ctx, path)
}

// loaderFor picks the loader by file extension. A directory is read as HCL
// unless it only holds YAML descriptors.
func loaderFor(path string) (descriptor.Loader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &descriptor.ConfigurationError{Source: path, Err: err}
	}

	if !info.IsDir() {
		switch {
		case fsutil.HasExtension(path, hcl.Extension):
			return hcl.NewLoader(), nil
		case fsutil.HasExtension(path, yamlcfg.Extensions...):
			return yamlcfg.NewLoader(), nil
		default:
			return nil, &descriptor.ConfigurationError{
				Source:   path,
				Problems: []string{"unsupported descriptor file extension; expected .hcl, .yaml or .yml"},
			}
		}
	}

	hclFiles, err := fsutil.FindFilesByExtension([]string{path}, hcl.Extension)
	if err != nil {
		return nil, &descriptor.ConfigurationError{Source: path, Err: err}
	}
	yamlFiles, err := fsutil.FindFilesByExtension([]string{path}, yamlcfg.Extensions...)
	if err != nil {
		return nil, &descriptor.ConfigurationError{Source: path, Err: err}
	}
	if len(hclFiles) == 0 && len(yamlFiles) > 0 {
		return yamlcfg.NewLoader(), nil
	}
	return hcl.NewLoader(), nil
}
