// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package yamlcfg

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// document mirrors the YAML layout. Free-form sections decode into plain
// maps and are converted to cty values afterwards.
type document struct {
	Modules           []string          `yaml:"modules,omitempty"`
	SSR               *bool             `yaml:"ssr,omitempty"`
	Devtools          *devtoolsDoc      `yaml:"devtools,omitempty"`
	App               *appDoc           `yaml:"app,omitempty"`
	CSS               []string          `yaml:"css,omitempty"`
	UI                section           `yaml:"ui,omitempty"`
	RuntimeConfig     *runtimeConfigDoc `yaml:"runtimeConfig,omitempty"`
	CompatibilityDate string            `yaml:"compatibilityDate"`
	Vite              *viteDoc          `yaml:"vite,omitempty"`
	ESLint            *eslintDoc        `yaml:"eslint,omitempty"`
}

type devtoolsDoc struct {
	Enabled bool `yaml:"enabled"`
}

type appDoc struct {
	Head *headDoc `yaml:"head,omitempty"`
}

type headDoc struct {
	Title     string            `yaml:"title,omitempty"`
	Charset   string            `yaml:"charset,omitempty"`
	HTMLAttrs map[string]string `yaml:"htmlAttrs,omitempty"`
	Meta      []metaDoc         `yaml:"meta,omitempty"`
	Link      []linkDoc         `yaml:"link,omitempty"`
}

// metaDoc is one entry of the meta list. Exactly one of Charset, Name or
// Property is set.
type metaDoc struct {
	Charset  string `yaml:"charset,omitempty"`
	Name     string `yaml:"name,omitempty"`
	Property string `yaml:"property,omitempty"`
	Content  string `yaml:"content,omitempty"`
}

type linkDoc struct {
	Rel   string `yaml:"rel"`
	Type  string `yaml:"type,omitempty"`
	Sizes string `yaml:"sizes,omitempty"`
	Href  string `yaml:"href"`
}

type runtimeConfigDoc struct {
	Public section `yaml:"public,omitempty"`
}

type viteDoc struct {
	OptimizeDeps *optimizeDepsDoc `yaml:"optimizeDeps,omitempty"`
}

type optimizeDepsDoc struct {
	Include []string `yaml:"include,omitempty"`
}

type eslintDoc struct {
	Config *eslintConfigDoc `yaml:"config,omitempty"`
}

type eslintConfigDoc struct {
	Stylistic section `yaml:"stylistic,omitempty"`
}

// section is a free-form mapping. Timestamps keep the text they were
// written with, so an unquoted date stays a date string.
type section map[string]any

func (s *section) UnmarshalYAML(n *yaml.Node) error {
	v, err := plainValue(n)
	if err != nil {
		return err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("line %d: expected a mapping, got %s", n.Line, n.ShortTag())
	}
	*s = m
	return nil
}

func plainValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return plainValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			if _, dup := m[key.Value]; dup {
				return nil, fmt.Errorf("line %d: mapping key %q already defined", key.Line, key.Value)
			}
			v, err := plainValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[key.Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		list := make([]any, len(n.Content))
		for i, item := range n.Content {
			v, err := plainValue(item)
			if err != nil {
				return nil, err
			}
			list[i] = v
		}
		return list, nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!timestamp" {
			return n.Value, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
	}
}
