// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestGet_EveryFieldHasItsSemanticType(t *testing.T) {
	d := newTestDescriptor(t)

	for _, path := range FieldPaths {
		t.Run(path, func(t *testing.T) {
			got, err := d.Get(path)
			require.NoError(t, err)

			switch path {
			case "modules", "stylesheetEntryPoints", "buildOptimization.include",
				"documentHead.metaTags", "documentHead.linkTags":
				require.IsType(t, []any{}, got)
			case "renderingMode", "documentHead.title", "documentHead.charset", "compatibilityDate":
				require.IsType(t, "", got)
			case "developerTools":
				require.IsType(t, true, got)
			default:
				require.IsType(t, map[string]any{}, got)
			}
		})
	}
}

func TestGet_Values(t *testing.T) {
	d := newTestDescriptor(t)

	tests := []struct {
		path string
		want any
	}{
		{"modules", []any{"@nuxt/eslint", "@nuxt/ui"}},
		{"modules[1]", "@nuxt/ui"},
		{"renderingMode", "universal"},
		{"developerTools", true},
		{"compatibilityDate", "2025-01-15"},
		{"documentHead.htmlAttributes.lang", "en"},
		{`documentHead.htmlAttributes["lang"]`, "en"},
		{"documentHead.linkTags[0].relation", "icon"},
		{"documentHead.linkTags[1].type", nil},
		{"uiOptions.experimental.componentDetection", true},
		{"lintStyle.commaDangle", "never"},
		{"buildOptimization.include", []any{"prosemirror-state", "yjs"}},
		{"runtimeConfig.public.partykitHost", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := d.Get(tt.path)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGet_MetaTagTriple(t *testing.T) {
	d := newTestDescriptor(t)

	got, err := d.Get("documentHead.metaTags")
	require.NoError(t, err)
	require.Contains(t, got, map[string]any{
		"kind":  "property",
		"key":   "og:title",
		"value": "Resume Editor - Create Professional Resumes Online",
	})
}

func TestGet_UnknownField(t *testing.T) {
	d := newTestDescriptor(t)

	for _, path := range []string{
		"",
		"nope",
		"documentHead.favicon",
		"documentHead.metaTags[99]",
		"documentHead.metaTags.kind",
		"runtimeConfig.public.missingKey",
		"documentHead.htmlAttributes.dir",
		"modules..x",
		"documentHead.linkTags[1].type.value",
	} {
		t.Run(path, func(t *testing.T) {
			got, err := d.Get(path)
			require.Nil(t, got)

			var unknown *UnknownFieldError
			require.ErrorAs(t, err, &unknown)
			require.Equal(t, CodeUnknownField, unknown.Code())
		})
	}
}

func TestValue_ReturnsTypedValue(t *testing.T) {
	d := newTestDescriptor(t)

	v, err := d.Value("documentHead.metaTags")
	require.NoError(t, err)
	require.True(t, v.Type().IsListType())
	require.Equal(t, 3, v.LengthInt())

	v, err = d.Value("developerTools")
	require.NoError(t, err)
	require.True(t, v.RawEquals(cty.True))
}

func TestAsValue_EmptySections(t *testing.T) {
	d := &Descriptor{RenderingMode: RenderingClient}

	v := d.AsValue()
	require.True(t, v.GetAttr("uiOptions").RawEquals(cty.EmptyObjectVal))
	require.Equal(t, 0, v.GetAttr("modules").LengthInt())
	require.Equal(t, 0, v.GetAttr("documentHead").GetAttr("metaTags").LengthInt())

	got, err := d.Get("runtimeConfig.public")
	require.NoError(t, err)
	require.Equal(t, map[string]any{}, got)
}
