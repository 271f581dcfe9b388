// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// rootSchema is the top level of a descriptor file. Blocks are all
// optional and may appear at most once across every merged file.
var rootSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "modules"},
		{Name: "ssr"},
		{Name: "css"},
		{Name: "compatibility_date", Required: true},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "devtools"},
		{Type: "app"},
		{Type: "ui"},
		{Type: "runtime_config"},
		{Type: "vite"},
		{Type: "eslint"},
	},
}

var appSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "head"}},
}

var viteSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "optimize_deps"}},
}

var eslintSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "config"}},
}

type devtoolsBlock struct {
	Enabled bool `hcl:"enabled,optional"`
}

type headBlock struct {
	Title     string            `hcl:"title,optional"`
	Charset   string            `hcl:"charset,optional"`
	HTMLAttrs map[string]string `hcl:"html_attrs,optional"`
	Meta      []*metaBlock      `hcl:"meta,block"`
	Link      []*linkBlock      `hcl:"link,block"`
}

// metaBlock is `meta "<name|property>" "<key>" { content = "..." }`.
type metaBlock struct {
	Kind    string `hcl:"kind,label"`
	Key     string `hcl:"key,label"`
	Content string `hcl:"content"`
}

// linkBlock is `link "<rel>" { type = "...", sizes = "...", href = "..." }`.
type linkBlock struct {
	Rel   string `hcl:"rel,label"`
	Type  string `hcl:"type,optional"`
	Sizes string `hcl:"sizes,optional"`
	Href  string `hcl:"href"`
}

type runtimeConfigBlock struct {
	Public cty.Value `hcl:"public,optional"`
}

type optimizeDepsBlock struct {
	Include []string `hcl:"include,optional"`
}

type eslintConfigBlock struct {
	Stylistic cty.Value `hcl:"stylistic,optional"`
}
