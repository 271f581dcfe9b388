// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/resumedesc/internal/app"
)

func TestParse_Defaults(t *testing.T) {
	cfg, exit, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	require.Equal(t, &app.Config{
		EnvPrefix: "NUXT_PUBLIC_",
		LogFormat: "text",
		LogLevel:  "info",
	}, cfg)
}

func TestParse_Flags(t *testing.T) {
	cfg, exit, err := Parse([]string{
		"-d", "conf/",
		"-get", "documentHead.title",
		"-export", "YAML",
		"-render-head",
		"-serve-port", "8080",
		"-env-prefix", "",
		"-log-format", "json",
		"-log-level", "DEBUG",
	}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	require.Equal(t, &app.Config{
		DescriptorPath: "conf/",
		Get:            "documentHead.title",
		Export:         "yaml",
		RenderHead:     true,
		ServePort:      8080,
		LogFormat:      "json",
		LogLevel:       "debug",
	}, cfg)
}

func TestParse_PathPrecedence(t *testing.T) {
	cfg, _, err := Parse([]string{"-descriptor", "long.hcl", "-d", "short.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "long.hcl", cfg.DescriptorPath)

	cfg, _, err = Parse([]string{"positional.yaml"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "positional.yaml", cfg.DescriptorPath)
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "DESCRIPTOR_PATH")
}

func TestParse_UsageErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
		{"bad log format", []string{"-log-format", "xml"}, "log-format"},
		{"bad log level", []string{"-log-level", "loud"}, "log-level"},
		{"bad export", []string{"-export", "toml"}, "export format"},
		{"bad port", []string{"-serve-port", "-1"}, "serve-port"},
		{"two paths", []string{"a.hcl", "b.hcl"}, "at most one"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, exit, err := Parse(tc.args, &bytes.Buffer{})
			require.False(t, exit)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			require.Equal(t, ExitUsage, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.errContains)
		})
	}
}
