// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package head renders the document head section of a descriptor as HTML
// markup, in the order the host framework injects it.
package head

import (
	"fmt"
	"html/template"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/vk/resumedesc/internal/descriptor"
)

var headTemplate = template.Must(template.New("head").Parse(`<head>
{{- with .Charset}}
  <meta charset="{{.}}">
{{- end}}
{{- with .Title}}
  <title>{{.}}</title>
{{- end}}
{{- range .MetaTags}}
  {{- if eq .Kind "property"}}
  <meta property="{{.Key}}" content="{{.Value}}">
  {{- else}}
  <meta name="{{.Key}}" content="{{.Value}}">
  {{- end}}
{{- end}}
{{- range .LinkTags}}
  <link rel="{{.Rel}}"{{with .Type}} type="{{.}}"{{end}}{{with .Sizes}} sizes="{{.}}"{{end}} href="{{.Href}}">
{{- end}}
</head>
`))

var htmlTemplate = template.Must(template.New("html").Parse(
	`<html{{range .}} {{.Name}}="{{.Value}}"{{end}}>`,
))

var attrName = regexp.MustCompile(`^[A-Za-z_:][-A-Za-z0-9_:.]*$`)

type attribute struct {
	Name  template.HTMLAttr
	Value string
}

// Render writes the <head> element for h to w.
func Render(w io.Writer, h descriptor.DocumentHead) error {
	if err := headTemplate.Execute(w, h); err != nil {
		return fmt.Errorf("rendering document head: %w", err)
	}
	return nil
}

// RenderDocumentStart writes the opening <html> tag with the document
// attributes, followed by the <head> element.
func RenderDocumentStart(w io.Writer, h descriptor.DocumentHead) error {
	tag, err := HTMLOpenTag(h)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, tag+"\n"); err != nil {
		return fmt.Errorf("rendering document start: %w", err)
	}
	return Render(w, h)
}

// HTMLOpenTag returns the opening <html> tag carrying the document
// attributes, sorted by name.
func HTMLOpenTag(h descriptor.DocumentHead) (string, error) {
	names := make([]string, 0, len(h.HTMLAttributes))
	for name := range h.HTMLAttributes {
		if !attrName.MatchString(name) || strings.HasPrefix(strings.ToLower(name), "on") {
			return "", fmt.Errorf("html attribute name %q is not allowed", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]attribute, len(names))
	for i, name := range names {
		attrs[i] = attribute{Name: template.HTMLAttr(name), Value: h.HTMLAttributes[name]}
	}

	var b strings.Builder
	if err := htmlTemplate.Execute(&b, attrs); err != nil {
		return "", fmt.Errorf("rendering html tag: %w", err)
	}
	return b.String(), nil
}
