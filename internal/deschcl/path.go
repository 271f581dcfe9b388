// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package deschcl

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// ParsePath parses a field path such as `documentHead.metaTags[0].key` or
// `runtimeConfig.public["partykitHost"]` into an absolute traversal.
func ParsePath(path string) (hcl.Traversal, hcl.Diagnostics) {
	if strings.TrimSpace(path) == "" {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Empty field path",
			Detail:   "A field path must name at least one field.",
		}}
	}
	return hclsyntax.ParseTraversalAbs([]byte(path), "<path>", hcl.InitialPos)
}

// PathKey generates a stable, canonical string representation for a
// traversal, suitable for use as a map key or in messages.
func PathKey(t hcl.Traversal) string {
	// e.g., runtimeConfig.public["partykitHost"]
	return string(hclwrite.TokensForTraversal(t).Bytes())
}
