// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import "context"

// Loader is the interface for a format-specific descriptor loader.
type Loader interface {
	// Load reads the descriptor from the given files or directories,
	// validates it, and returns it. Failures are *ConfigurationError.
	Load(ctx context.Context, paths ...string) (*Descriptor, error)
}
