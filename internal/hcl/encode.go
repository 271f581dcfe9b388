// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/resumedesc/internal/descriptor"
	"github.com/zclconf/go-cty/cty"
)

// Encode writes d back in the HCL descriptor syntax accepted by Loader.
// Sections holding no values are omitted.
func Encode(d *descriptor.Descriptor) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	if len(d.Modules) > 0 {
		root.SetAttributeValue("modules", stringsValue(d.Modules))
	}
	root.SetAttributeValue("ssr", cty.BoolVal(d.RenderingMode.SSR()))
	root.SetAttributeValue("compatibility_date", cty.StringVal(d.CompatibilityDate.Format(descriptor.DateLayout)))
	if len(d.Stylesheets) > 0 {
		root.SetAttributeValue("css", stringsValue(d.Stylesheets))
	}

	if d.DevTools {
		root.AppendNewline()
		root.AppendNewBlock("devtools", nil).Body().SetAttributeValue("enabled", cty.True)
	}

	if !headEmpty(&d.Head) {
		root.AppendNewline()
		app := root.AppendNewBlock("app", nil).Body()
		writeHead(app.AppendNewBlock("head", nil).Body(), &d.Head)
	}

	if ui := d.UIOptions; descriptor.Populated(ui) {
		if !ui.Type().IsObjectType() {
			return nil, fmt.Errorf("uiOptions must be an object, got %s", ui.Type().FriendlyName())
		}
		root.AppendNewline()
		body := root.AppendNewBlock("ui", nil).Body()
		for _, name := range sortedAttributes(ui) {
			if !hclsyntax.ValidIdentifier(name) {
				return nil, fmt.Errorf("uiOptions key %q cannot be written as an HCL attribute name", name)
			}
			body.SetAttributeValue(name, ui.GetAttr(name))
		}
	}

	if pub := d.RuntimeConfig.Public; descriptor.Populated(pub) {
		root.AppendNewline()
		root.AppendNewBlock("runtime_config", nil).Body().SetAttributeValue("public", pub)
	}

	if len(d.Build.Include) > 0 {
		root.AppendNewline()
		vite := root.AppendNewBlock("vite", nil).Body()
		vite.AppendNewBlock("optimize_deps", nil).Body().SetAttributeValue("include", stringsValue(d.Build.Include))
	}

	if lint := d.LintStyle; descriptor.Populated(lint) {
		root.AppendNewline()
		eslint := root.AppendNewBlock("eslint", nil).Body()
		eslint.AppendNewBlock("config", nil).Body().SetAttributeValue("stylistic", lint)
	}

	return hclwrite.Format(f.Bytes()), nil
}

func headEmpty(h *descriptor.DocumentHead) bool {
	return h.Title == "" && h.Charset == "" &&
		len(h.HTMLAttributes) == 0 && len(h.MetaTags) == 0 && len(h.LinkTags) == 0
}

func writeHead(body *hclwrite.Body, h *descriptor.DocumentHead) {
	if h.Title != "" {
		body.SetAttributeValue("title", cty.StringVal(h.Title))
	}
	if h.Charset != "" {
		body.SetAttributeValue("charset", cty.StringVal(h.Charset))
	}
	if len(h.HTMLAttributes) > 0 {
		attrs := make(map[string]cty.Value, len(h.HTMLAttributes))
		for k, v := range h.HTMLAttributes {
			attrs[k] = cty.StringVal(v)
		}
		body.SetAttributeValue("html_attrs", cty.MapVal(attrs))
	}

	for _, m := range h.MetaTags {
		body.AppendNewline()
		meta := body.AppendNewBlock("meta", []string{string(m.Kind), m.Key}).Body()
		meta.SetAttributeValue("content", cty.StringVal(m.Value))
	}
	for _, l := range h.LinkTags {
		body.AppendNewline()
		link := body.AppendNewBlock("link", []string{l.Rel}).Body()
		if l.Type != "" {
			link.SetAttributeValue("type", cty.StringVal(l.Type))
		}
		if l.Sizes != "" {
			link.SetAttributeValue("sizes", cty.StringVal(l.Sizes))
		}
		link.SetAttributeValue("href", cty.StringVal(l.Href))
	}
}

func stringsValue(ss []string) cty.Value {
	vals := make([]cty.Value, len(ss))
	for i, s := range ss {
		vals[i] = cty.StringVal(s)
	}
	return cty.TupleVal(vals)
}

func sortedAttributes(obj cty.Value) []string {
	names := make([]string, 0, len(obj.Type().AttributeTypes()))
	for name := range obj.Type().AttributeTypes() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
