// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package yamlcfg

import (
	"bytes"
	"fmt"

	"github.com/vk/resumedesc/internal/descriptor"
	"github.com/vk/resumedesc/internal/deschcl"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Encode writes d as a YAML document accepted by Loader. The document
// charset is written as the leading meta entry.
func Encode(d *descriptor.Descriptor) ([]byte, error) {
	ssr := d.RenderingMode.SSR()
	doc := document{
		Modules:           d.Modules,
		SSR:               &ssr,
		CSS:               d.Stylesheets,
		CompatibilityDate: d.CompatibilityDate.Format(descriptor.DateLayout),
	}
	if d.DevTools {
		doc.Devtools = &devtoolsDoc{Enabled: true}
	}
	if head := encodeHead(&d.Head); head != nil {
		doc.App = &appDoc{Head: head}
	}

	var err error
	if doc.UI, err = plainMap("uiOptions", d.UIOptions); err != nil {
		return nil, err
	}
	public, err := plainMap("runtimeConfig.public", d.RuntimeConfig.Public)
	if err != nil {
		return nil, err
	}
	if public != nil {
		doc.RuntimeConfig = &runtimeConfigDoc{Public: public}
	}
	if len(d.Build.Include) > 0 {
		doc.Vite = &viteDoc{OptimizeDeps: &optimizeDepsDoc{Include: d.Build.Include}}
	}
	stylistic, err := plainMap("lintStyle", d.LintStyle)
	if err != nil {
		return nil, err
	}
	if stylistic != nil {
		doc.ESLint = &eslintDoc{Config: &eslintConfigDoc{Stylistic: stylistic}}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encoding YAML descriptor: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding YAML descriptor: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeHead(h *descriptor.DocumentHead) *headDoc {
	if h.Title == "" && h.Charset == "" && len(h.HTMLAttributes) == 0 &&
		len(h.MetaTags) == 0 && len(h.LinkTags) == 0 {
		return nil
	}

	doc := &headDoc{Title: h.Title, HTMLAttrs: h.HTMLAttributes}
	if h.Charset != "" {
		doc.Meta = append(doc.Meta, metaDoc{Charset: h.Charset})
	}
	for _, m := range h.MetaTags {
		entry := metaDoc{Content: m.Value}
		if m.Kind == descriptor.MetaProperty {
			entry.Property = m.Key
		} else {
			entry.Name = m.Key
		}
		doc.Meta = append(doc.Meta, entry)
	}
	for _, l := range h.LinkTags {
		doc.Link = append(doc.Link, linkDoc{Rel: l.Rel, Type: l.Type, Sizes: l.Sizes, Href: l.Href})
	}
	return doc
}

// plainMap converts a free-form section to a YAML mapping. An unpopulated
// section yields nil so that it is omitted.
func plainMap(path string, v cty.Value) (section, error) {
	if !descriptor.Populated(v) {
		return nil, nil
	}
	native, err := deschcl.ToNative(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an object, got %T", path, native)
	}
	return m, nil
}
