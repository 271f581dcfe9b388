// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/resumedesc/internal/deschcl"
	"github.com/zclconf/go-cty/cty"
)

// FieldPaths lists every record field of the descriptor schema, in
// declaration order. Each entry is a valid argument to Get.
var FieldPaths = []string{
	"modules",
	"renderingMode",
	"developerTools",
	"documentHead",
	"documentHead.title",
	"documentHead.charset",
	"documentHead.htmlAttributes",
	"documentHead.metaTags",
	"documentHead.linkTags",
	"stylesheetEntryPoints",
	"uiOptions",
	"runtimeConfig",
	"runtimeConfig.public",
	"compatibilityDate",
	"buildOptimization",
	"buildOptimization.include",
	"lintStyle",
}

var (
	metaTagType = cty.Object(map[string]cty.Type{
		"kind":  cty.String,
		"key":   cty.String,
		"value": cty.String,
	})
	linkTagType = cty.Object(map[string]cty.Type{
		"relation": cty.String,
		"type":     cty.String,
		"sizes":    cty.String,
		"href":     cty.String,
	})
)

// AsValue returns the whole descriptor as a single cty object keyed by the
// schema field names.
func (d *Descriptor) AsValue() cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"modules":               stringList(d.Modules),
		"renderingMode":         cty.StringVal(string(d.RenderingMode)),
		"developerTools":        cty.BoolVal(d.DevTools),
		"documentHead":          d.Head.value(),
		"stylesheetEntryPoints": stringList(d.Stylesheets),
		"uiOptions":             ObjectOrEmpty(d.UIOptions),
		"runtimeConfig": cty.ObjectVal(map[string]cty.Value{
			"public": ObjectOrEmpty(d.RuntimeConfig.Public),
		}),
		"compatibilityDate": cty.StringVal(d.CompatibilityDate.Format(DateLayout)),
		"buildOptimization": cty.ObjectVal(map[string]cty.Value{
			"include": stringList(d.Build.Include),
		}),
		"lintStyle": ObjectOrEmpty(d.LintStyle),
	})
}

func (h *DocumentHead) value() cty.Value {
	attrs := cty.MapValEmpty(cty.String)
	if len(h.HTMLAttributes) > 0 {
		m := make(map[string]cty.Value, len(h.HTMLAttributes))
		for k, v := range h.HTMLAttributes {
			m[k] = cty.StringVal(v)
		}
		attrs = cty.MapVal(m)
	}

	metas := cty.ListValEmpty(metaTagType)
	if len(h.MetaTags) > 0 {
		vals := make([]cty.Value, len(h.MetaTags))
		for i, m := range h.MetaTags {
			vals[i] = cty.ObjectVal(map[string]cty.Value{
				"kind":  cty.StringVal(string(m.Kind)),
				"key":   cty.StringVal(m.Key),
				"value": cty.StringVal(m.Value),
			})
		}
		metas = cty.ListVal(vals)
	}

	links := cty.ListValEmpty(linkTagType)
	if len(h.LinkTags) > 0 {
		vals := make([]cty.Value, len(h.LinkTags))
		for i, l := range h.LinkTags {
			vals[i] = cty.ObjectVal(map[string]cty.Value{
				"relation": cty.StringVal(l.Rel),
				"type":     optionalString(l.Type),
				"sizes":    optionalString(l.Sizes),
				"href":     cty.StringVal(l.Href),
			})
		}
		links = cty.ListVal(vals)
	}

	return cty.ObjectVal(map[string]cty.Value{
		"title":          cty.StringVal(h.Title),
		"charset":        cty.StringVal(h.Charset),
		"htmlAttributes": attrs,
		"metaTags":       metas,
		"linkTags":       links,
	})
}

// Value returns the cty value found at path. It fails with
// *UnknownFieldError when the path does not exist.
func (d *Descriptor) Value(path string) (cty.Value, error) {
	trav, diags := deschcl.ParsePath(path)
	if diags.HasErrors() {
		return cty.NilVal, &UnknownFieldError{Path: path, Detail: diagSummary(diags)}
	}

	root := d.AsValue()
	v, diags := trav.TraverseAbs(&hcl.EvalContext{Variables: root.AsValueMap()})
	if diags.HasErrors() {
		return cty.NilVal, &UnknownFieldError{Path: deschcl.PathKey(trav), Detail: diagSummary(diags)}
	}
	return v, nil
}

// Get returns the plain Go value found at path: string, bool, float64,
// []any, map[string]any, or nil for an absent optional attribute. It fails
// with *UnknownFieldError when the path does not exist.
func (d *Descriptor) Get(path string) (any, error) {
	v, err := d.Value(path)
	if err != nil {
		return nil, err
	}
	return deschcl.ToNative(v)
}

func diagSummary(diags hcl.Diagnostics) string {
	for _, diag := range diags {
		if diag.Severity == hcl.DiagError {
			if diag.Detail != "" {
				return diag.Detail
			}
			return diag.Summary
		}
	}
	return diags.Error()
}

func stringList(items []string) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(items))
	for i, s := range items {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}

func optionalString(s string) cty.Value {
	if s == "" {
		return cty.NullVal(cty.String)
	}
	return cty.StringVal(s)
}
