// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/resumedesc/internal/descriptor"
	"github.com/vk/resumedesc/internal/deschcl"
	"github.com/zclconf/go-cty/cty"
)

// translateRoot decodes the root body into the format-agnostic model. It
// keeps going after a failing section so that one run reports as many
// problems as possible.
func translateRoot(body hcl.Body) (*descriptor.Descriptor, hcl.Diagnostics) {
	content, diags := body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	d := &descriptor.Descriptor{
		RenderingMode: descriptor.RenderingUniversal,
		UIOptions:     cty.EmptyObjectVal,
		LintStyle:     cty.EmptyObjectVal,
		RuntimeConfig: descriptor.RuntimeConfig{Public: cty.EmptyObjectVal},
	}

	if attr, ok := content.Attributes["modules"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &d.Modules)...)
	}
	if attr, ok := content.Attributes["ssr"]; ok {
		var ssr bool
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &ssr)...)
		d.RenderingMode = descriptor.RenderingModeFromSSR(ssr)
	}
	if attr, ok := content.Attributes["css"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &d.Stylesheets)...)
	}
	if attr, ok := content.Attributes["compatibility_date"]; ok {
		var raw string
		dateDiags := gohcl.DecodeExpression(attr.Expr, nil, &raw)
		diags = append(diags, dateDiags...)
		if !dateDiags.HasErrors() {
			date, err := descriptor.ParseDate(raw)
			if err != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid compatibility date",
					Detail:   err.Error(),
					Subject:  attr.Expr.Range().Ptr(),
				})
			}
			d.CompatibilityDate = date
		}
	}

	for _, section := range []struct {
		name  string
		parse func(*hcl.Block, *descriptor.Descriptor) hcl.Diagnostics
	}{
		{"devtools", parseDevtools},
		{"app", parseApp},
		{"ui", parseUI},
		{"runtime_config", parseRuntimeConfig},
		{"vite", parseVite},
		{"eslint", parseESLint},
	} {
		block, blockDiags := deschcl.FindUniqueBlock(content.Blocks, section.name)
		diags = append(diags, blockDiags...)
		if block == nil {
			continue
		}
		diags = append(diags, section.parse(block, d)...)
	}

	return d, diags
}

func parseDevtools(block *hcl.Block, d *descriptor.Descriptor) hcl.Diagnostics {
	var dev devtoolsBlock
	diags := gohcl.DecodeBody(block.Body, nil, &dev)
	d.DevTools = dev.Enabled
	return diags
}

func parseApp(block *hcl.Block, d *descriptor.Descriptor) hcl.Diagnostics {
	content, diags := block.Body.Content(appSchema)
	if diags.HasErrors() {
		return diags
	}

	headBlk, blockDiags := deschcl.FindUniqueBlock(content.Blocks, "head")
	diags = append(diags, blockDiags...)
	if headBlk == nil {
		return diags
	}

	var head headBlock
	diags = append(diags, gohcl.DecodeBody(headBlk.Body, nil, &head)...)

	d.Head = descriptor.DocumentHead{
		Title:          head.Title,
		Charset:        head.Charset,
		HTMLAttributes: head.HTMLAttrs,
	}
	for _, m := range head.Meta {
		d.Head.MetaTags = append(d.Head.MetaTags, descriptor.MetaTag{
			Kind:  descriptor.MetaKind(m.Kind),
			Key:   m.Key,
			Value: m.Content,
		})
	}
	for _, l := range head.Link {
		d.Head.LinkTags = append(d.Head.LinkTags, descriptor.LinkTag{
			Rel:   l.Rel,
			Type:  l.Type,
			Sizes: l.Sizes,
			Href:  l.Href,
		})
	}
	return diags
}

// parseUI reads the free-form `ui` block: every attribute becomes a key of
// the uiOptions object.
func parseUI(block *hcl.Block, d *descriptor.Descriptor) hcl.Diagnostics {
	val, diags := attributesObject(block.Body)
	if !diags.HasErrors() {
		d.UIOptions = val
	}
	return diags
}

func parseRuntimeConfig(block *hcl.Block, d *descriptor.Descriptor) hcl.Diagnostics {
	var rc runtimeConfigBlock
	diags := gohcl.DecodeBody(block.Body, nil, &rc)
	d.RuntimeConfig.Public = descriptor.ObjectOrEmpty(rc.Public)
	return diags
}

func parseVite(block *hcl.Block, d *descriptor.Descriptor) hcl.Diagnostics {
	content, diags := block.Body.Content(viteSchema)
	if diags.HasErrors() {
		return diags
	}
	deps, blockDiags := deschcl.FindUniqueBlock(content.Blocks, "optimize_deps")
	diags = append(diags, blockDiags...)
	if deps == nil {
		return diags
	}

	var opt optimizeDepsBlock
	diags = append(diags, gohcl.DecodeBody(deps.Body, nil, &opt)...)
	d.Build.Include = opt.Include
	return diags
}

func parseESLint(block *hcl.Block, d *descriptor.Descriptor) hcl.Diagnostics {
	content, diags := block.Body.Content(eslintSchema)
	if diags.HasErrors() {
		return diags
	}
	cfg, blockDiags := deschcl.FindUniqueBlock(content.Blocks, "config")
	diags = append(diags, blockDiags...)
	if cfg == nil {
		return diags
	}

	var ec eslintConfigBlock
	diags = append(diags, gohcl.DecodeBody(cfg.Body, nil, &ec)...)
	d.LintStyle = descriptor.ObjectOrEmpty(ec.Stylistic)
	return diags
}

// attributesObject evaluates every attribute of a block body into one object.
func attributesObject(body hcl.Body) (cty.Value, hcl.Diagnostics) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return cty.NilVal, diags
	}

	vals := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		v, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		if !v.IsWhollyKnown() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown value",
				Detail:   fmt.Sprintf("The value of %q must be a static literal.", name),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}
		vals[name] = v
	}
	return cty.ObjectVal(vals), diags
}
