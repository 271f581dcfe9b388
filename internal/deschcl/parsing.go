// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package deschcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// FindUniqueBlock returns the single block of the given section type, or nil
// when the section is absent. Every repeated definition gets its own error
// pointing back at the first one, and the first block is still returned.
func FindUniqueBlock(blocks hcl.Blocks, section string) (*hcl.Block, hcl.Diagnostics) {
	var first *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks {
		if block.Type != section {
			continue
		}
		if first == nil {
			first = block
			continue
		}
		diags = diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  fmt.Sprintf("Duplicate %q block", section),
			Detail:   fmt.Sprintf("The %s section was already defined at %s.", section, first.DefRange),
			Subject:  block.DefRange.Ptr(),
		})
	}

	return first, diags
}
