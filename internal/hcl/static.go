// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"context"
	_ "embed"

	"github.com/vk/resumedesc/internal/descriptor"
)

// StaticFilename is the diagnostic name of the built-in descriptor.
const StaticFilename = "resume_editor.hcl"

//go:embed static/resume_editor.hcl
var staticSource []byte

// LoadStatic decodes the built-in resume editor descriptor.
func LoadStatic(ctx context.Context) (*descriptor.Descriptor, error) {
	return NewLoader().LoadSource(ctx, StaticFilename, staticSource)
}
