// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package head

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/resumedesc/internal/descriptor"
	"github.com/vk/resumedesc/internal/hcl"
)

func TestRender(t *testing.T) {
	h := descriptor.DocumentHead{
		Title:   "Resume <Editor>",
		Charset: "utf-8",
		MetaTags: []descriptor.MetaTag{
			{Kind: descriptor.MetaName, Key: "viewport", Value: "width=device-width, initial-scale=1"},
			{Kind: descriptor.MetaProperty, Key: "og:title", Value: `Say "hi"`},
		},
		LinkTags: []descriptor.LinkTag{
			{Rel: "icon", Type: "image/svg+xml", Href: "/favicon.svg"},
			{Rel: "apple-touch-icon", Sizes: "180x180", Href: "/favicon.svg"},
		},
	}

	var b strings.Builder
	require.NoError(t, Render(&b, h))

	want := `<head>
  <meta charset="utf-8">
  <title>Resume &lt;Editor&gt;</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <meta property="og:title" content="Say &#34;hi&#34;">
  <link rel="icon" type="image/svg&#43;xml" href="/favicon.svg">
  <link rel="apple-touch-icon" sizes="180x180" href="/favicon.svg">
</head>
`
	require.Equal(t, want, b.String())
}

func TestRender_Empty(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Render(&b, descriptor.DocumentHead{}))
	require.Equal(t, "<head>\n</head>\n", b.String())
}

func TestRender_Static(t *testing.T) {
	d, err := hcl.LoadStatic(context.Background())
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, Render(&b, d.Head))
	require.Contains(t, b.String(), `<meta property="og:locale" content="en_US">`)
	require.Contains(t, b.String(), `<link rel="canonical" href="https://resume.shubham.gupta">`)
	require.Equal(t, len(d.Head.MetaTags)+1, strings.Count(b.String(), "<meta "))
}

func TestHTMLOpenTag(t *testing.T) {
	tag, err := HTMLOpenTag(descriptor.DocumentHead{HTMLAttributes: map[string]string{"lang": "en", "data-theme": "light"}})
	require.NoError(t, err)
	require.Equal(t, `<html data-theme="light" lang="en">`, tag)

	tag, err = HTMLOpenTag(descriptor.DocumentHead{})
	require.NoError(t, err)
	require.Equal(t, `<html>`, tag)

	_, err = HTMLOpenTag(descriptor.DocumentHead{HTMLAttributes: map[string]string{"onload": "x()"}})
	require.Error(t, err)
	_, err = HTMLOpenTag(descriptor.DocumentHead{HTMLAttributes: map[string]string{`a"b`: "x"}})
	require.Error(t, err)
}

func TestRenderDocumentStart(t *testing.T) {
	d, err := hcl.LoadStatic(context.Background())
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, RenderDocumentStart(&b, d.Head))
	require.True(t, strings.HasPrefix(b.String(), "<html lang=\"en\">\n<head>\n"), b.String())
	require.True(t, strings.HasSuffix(b.String(), "</head>\n"))

	b.Reset()
	err = RenderDocumentStart(&b, descriptor.DocumentHead{HTMLAttributes: map[string]string{"onclick": "x()"}})
	require.Error(t, err)
	require.Empty(t, b.String())
}
