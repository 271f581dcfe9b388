// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package yamlcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/resumedesc/internal/ctxlog"
	"github.com/vk/resumedesc/internal/descriptor"
	"github.com/vk/resumedesc/internal/deschcl"
	"github.com/vk/resumedesc/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Extensions are the file extensions recognised as YAML descriptors.
var Extensions = []string{".yaml", ".yml"}

// Loader is the YAML implementation of the descriptor.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML descriptor loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ descriptor.Loader = (*Loader)(nil)

// Load reads exactly one YAML descriptor found under paths.
func (l *Loader) Load(ctx context.Context, paths ...string) (*descriptor.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, Extensions...)
	if err != nil {
		return nil, &descriptor.ConfigurationError{Source: strings.Join(paths, ", "), Err: err}
	}
	if len(files) != 1 {
		return nil, &descriptor.ConfigurationError{
			Source:   strings.Join(paths, ", "),
			Problems: []string{fmt.Sprintf("expected exactly one YAML descriptor file, found %d", len(files))},
		}
	}

	src, err := os.ReadFile(files[0])
	if err != nil {
		return nil, &descriptor.ConfigurationError{Source: files[0], Err: err}
	}
	return l.LoadSource(ctx, files[0], src)
}

// LoadSource decodes a YAML descriptor held in memory.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*descriptor.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)

	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &descriptor.ConfigurationError{Source: filename, Problems: []string{"document is empty"}}
		}
		return nil, &descriptor.ConfigurationError{Source: filename, Err: err}
	}
	if err := dec.Decode(new(yaml.Node)); !errors.Is(err, io.EOF) {
		return nil, &descriptor.ConfigurationError{Source: filename, Problems: []string{"expected a single YAML document"}}
	}

	d, problems := translate(&doc)
	if len(problems) > 0 {
		return nil, &descriptor.ConfigurationError{Source: filename, Problems: problems}
	}
	d.Source = filename

	if err := d.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("YAML descriptor decoded.",
		"source", filename,
		"modules", len(d.Modules),
		"meta_tags", len(d.Head.MetaTags),
		"link_tags", len(d.Head.LinkTags),
	)
	return d, nil
}

// translate maps the decoded document onto the descriptor model and
// collects every structural problem it meets.
func translate(doc *document) (*descriptor.Descriptor, []string) {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	d := &descriptor.Descriptor{
		Modules:       doc.Modules,
		RenderingMode: descriptor.RenderingUniversal,
		Stylesheets:   doc.CSS,
	}
	if doc.SSR != nil {
		d.RenderingMode = descriptor.RenderingModeFromSSR(*doc.SSR)
	}
	if doc.Devtools != nil {
		d.DevTools = doc.Devtools.Enabled
	}

	if doc.CompatibilityDate == "" {
		addf("compatibilityDate is required")
	} else if date, err := descriptor.ParseDate(doc.CompatibilityDate); err != nil {
		addf("%v", err)
	} else {
		d.CompatibilityDate = date
	}

	if doc.App != nil && doc.App.Head != nil {
		problems = append(problems, translateHead(doc.App.Head, &d.Head)...)
	}

	var err error
	if d.UIOptions, err = object(doc.UI); err != nil {
		addf("ui: %v", err)
	}
	if doc.RuntimeConfig != nil {
		if d.RuntimeConfig.Public, err = object(doc.RuntimeConfig.Public); err != nil {
			addf("runtimeConfig.public: %v", err)
		}
	} else {
		d.RuntimeConfig.Public = cty.EmptyObjectVal
	}
	if doc.Vite != nil && doc.Vite.OptimizeDeps != nil {
		d.Build.Include = doc.Vite.OptimizeDeps.Include
	}
	d.LintStyle = cty.EmptyObjectVal
	if doc.ESLint != nil && doc.ESLint.Config != nil {
		if d.LintStyle, err = object(doc.ESLint.Config.Stylistic); err != nil {
			addf("eslint.config.stylistic: %v", err)
		}
	}

	return d, problems
}

func translateHead(doc *headDoc, head *descriptor.DocumentHead) []string {
	var problems []string

	head.Title = doc.Title
	head.Charset = doc.Charset
	head.HTMLAttributes = doc.HTMLAttrs

	for i, m := range doc.Meta {
		at := fmt.Sprintf("app.head.meta[%d]", i)
		set := 0
		for _, s := range []string{m.Charset, m.Name, m.Property} {
			if s != "" {
				set++
			}
		}
		if set != 1 {
			problems = append(problems, fmt.Sprintf("%s must set exactly one of charset, name or property", at))
			continue
		}

		switch {
		case m.Charset != "":
			if m.Content != "" {
				problems = append(problems, fmt.Sprintf("%s charset entry takes no content", at))
			}
			if head.Charset != "" && head.Charset != m.Charset {
				problems = append(problems, fmt.Sprintf("%s charset %q conflicts with %q", at, m.Charset, head.Charset))
				continue
			}
			head.Charset = m.Charset
		case m.Name != "":
			head.MetaTags = append(head.MetaTags, descriptor.MetaTag{Kind: descriptor.MetaName, Key: m.Name, Value: m.Content})
		default:
			head.MetaTags = append(head.MetaTags, descriptor.MetaTag{Kind: descriptor.MetaProperty, Key: m.Property, Value: m.Content})
		}
	}

	for _, l := range doc.Link {
		head.LinkTags = append(head.LinkTags, descriptor.LinkTag{
			Rel:   l.Rel,
			Type:  l.Type,
			Sizes: l.Sizes,
			Href:  l.Href,
		})
	}
	return problems
}

// object converts a decoded YAML mapping into a cty object. A missing
// mapping becomes the empty object.
func object(m section) (cty.Value, error) {
	if len(m) == 0 {
		return cty.EmptyObjectVal, nil
	}
	return deschcl.FromNative(map[string]any(m))
}
