// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package ui

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/resumedesc/internal/ctxlog"
	"github.com/vk/resumedesc/internal/registry"
	"github.com/vk/resumedesc/internal/testutil"
	"github.com/zclconf/go-cty/cty"
)

func TestRegister(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)

	c, ok := r.Capability(ID)
	require.True(t, ok)
	require.Equal(t, Section, c.Section)
}

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name     string
		value    cty.Value
		problems []string
	}{
		{
			name: "component detection",
			value: cty.ObjectVal(map[string]cty.Value{
				"experimental": cty.ObjectVal(map[string]cty.Value{"componentDetection": cty.True}),
			}),
		},
		{
			name: "prefix and switches",
			value: cty.ObjectVal(map[string]cty.Value{
				"prefix":    cty.StringVal("U"),
				"fonts":     cty.False,
				"colorMode": cty.True,
				"theme":     cty.ObjectVal(map[string]cty.Value{"colors": cty.TupleVal([]cty.Value{cty.StringVal("primary")})}),
			}),
		},
		{
			name: "bad values",
			value: cty.ObjectVal(map[string]cty.Value{
				"experimental": cty.ObjectVal(map[string]cty.Value{"componentDetection": cty.StringVal("on")}),
				"prefix":       cty.NumberIntVal(1),
				"fonts":        cty.StringVal("inter"),
			}),
			problems: []string{
				"experimental.componentDetection must be a bool",
				"fonts must be a bool",
				"prefix must be a non-empty string",
			},
		},
		{
			name:     "experimental not an object",
			value:    cty.ObjectVal(map[string]cty.Value{"experimental": cty.True}),
			problems: []string{"experimental must be an object, got bool"},
		},
		{
			name:     "not an object",
			value:    cty.TupleVal([]cty.Value{cty.True}),
			problems: []string{"must be an object, got tuple"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.problems, ValidateOptions(context.Background(), tc.value))
		})
	}
}

func TestValidateOptions_UnknownOptionWarns(t *testing.T) {
	logs := &testutil.SafeBuffer{}
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(logs, nil)))

	problems := ValidateOptions(ctx, cty.ObjectVal(map[string]cty.Value{"icons": cty.StringVal("lucide")}))
	require.Empty(t, problems)
	require.Contains(t, logs.String(), "level=WARN")
	require.Contains(t, logs.String(), "option=icons")
}
