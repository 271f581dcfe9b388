// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/resumedesc/internal/descriptor"
	"github.com/vk/resumedesc/internal/hcl"
	"github.com/vk/resumedesc/internal/testutil"
	"github.com/vk/resumedesc/internal/yamlcfg"
)

// setupApp boots an App with debug logging captured in a buffer.
func setupApp(t *testing.T, cfg Config) (*App, *bytes.Buffer, *testutil.SafeBuffer, error) {
	t.Helper()

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	cfg.LogLevel = "debug"
	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	a, err := NewApp(context.Background(), out, logs, appConfig)

	t.Cleanup(func() {
		if os.Getenv("RESUMEDESC_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, out, logs, err
}

func TestNewConfig(t *testing.T) {
	valid := Config{LogFormat: "text", LogLevel: "info"}

	cfg, err := NewConfig(valid)
	require.NoError(t, err)
	require.Equal(t, valid, *cfg)

	tests := []struct {
		name        string
		mutate      func(c *Config)
		errContains string
	}{
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "log-format"},
		{"log level", func(c *Config) { c.LogLevel = "trace" }, "log-level"},
		{"export", func(c *Config) { c.Export = "toml" }, `export format "toml"`},
		{"port", func(c *Config) { c.ServePort = 70000 }, "serve-port 70000"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			_, err := NewConfig(c)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestNewApp_BuiltInDescriptor(t *testing.T) {
	a, _, logs, err := setupApp(t, Config{})
	require.NoError(t, err)

	require.Equal(t, hcl.StaticFilename, a.Descriptor().Source)
	require.Equal(t, []string{"@nuxt/eslint", "@nuxt/ui"}, a.Registry().Known())
	require.Contains(t, logs.String(), "Module sections validated.")
}

func TestNewApp_EnvOverlay(t *testing.T) {
	a, _, logs, err := setupApp(t, Config{
		EnvPrefix: descriptor.DefaultEnvPrefix,
		Environ:   []string{"NUXT_PUBLIC_PARTYKIT_HOST=party.example.com", "HOME=/root"},
	})
	require.NoError(t, err)

	host, ok := a.Descriptor().PublicString("partykitHost")
	require.True(t, ok)
	require.Equal(t, "party.example.com", host)
	require.Contains(t, logs.String(), "overridden from environment")
}

func TestNewApp_EnvOverlayDisabled(t *testing.T) {
	a, _, _, err := setupApp(t, Config{
		Environ: []string{"NUXT_PUBLIC_PARTYKIT_HOST=party.example.com"},
	})
	require.NoError(t, err)

	host, _ := a.Descriptor().PublicString("partykitHost")
	require.Equal(t, "", host)
}

func TestNewApp_Failures(t *testing.T) {
	tests := []struct {
		name   string
		files  map[string]string
		target any
	}{
		{
			name: "unknown module",
			files: map[string]string{"main.hcl": `
				modules            = ["@nuxt/ui", "@nuxt/content"]
				compatibility_date = "2025-01-15"
			`},
			target: new(*descriptor.ModuleResolutionError),
		},
		{
			name: "invalid lint style",
			files: map[string]string{"main.hcl": `
				modules            = ["@nuxt/eslint"]
				compatibility_date = "2025-01-15"
				eslint {
				  config {
				    stylistic = { braceStyle = "k&r" }
				  }
				}
			`},
			target: new(*descriptor.ConfigurationError),
		},
		{
			name:   "bad date",
			files:  map[string]string{"main.hcl": `compatibility_date = "tomorrow"`},
			target: new(*descriptor.ConfigurationError),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := testutil.WriteFiles(t, tc.files)
			_, _, _, err := setupApp(t, Config{DescriptorPath: root})
			require.Error(t, err)
			require.True(t, errors.As(err, tc.target), "unexpected error type %T: %v", err, err)
		})
	}
}

func TestNewApp_UndeclaredSectionWarns(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"main.hcl": `
		compatibility_date = "2025-01-15"
		ui {
		  experimental = { componentDetection = true }
		}
	`})

	_, _, logs, err := setupApp(t, Config{DescriptorPath: root})
	require.NoError(t, err)
	require.Contains(t, logs.String(), "level=WARN")
	require.Contains(t, logs.String(), "module=@nuxt/ui")
}

func TestLoaderFor(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"hcl/main.hcl":     `compatibility_date = "2025-01-15"`,
		"yaml/main.yaml":   `compatibilityDate: "2025-01-15"`,
		"mixed/a.hcl":      `compatibility_date = "2025-01-15"`,
		"mixed/b.yml":      `compatibilityDate: "2025-01-15"`,
		"other/notes.toml": `x = 1`,
	})

	for _, tc := range []struct {
		path string
		want descriptor.Loader
	}{
		{"hcl", &hcl.Loader{}},
		{"hcl/main.hcl", &hcl.Loader{}},
		{"yaml", &yamlcfg.Loader{}},
		{"yaml/main.yaml", &yamlcfg.Loader{}},
		{"mixed", &hcl.Loader{}},
	} {
		got, err := loaderFor(filepath.Join(root, tc.path))
		require.NoError(t, err, tc.path)
		require.IsType(t, tc.want, got, tc.path)
	}

	_, err := loaderFor(filepath.Join(root, "other", "notes.toml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported descriptor file extension")

	_, err = loaderFor(filepath.Join(root, "absent"))
	var cfgErr *descriptor.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
}

func TestNewApp_YAMLDescriptor(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"resume.yaml": `
		modules: ["@nuxt/ui"]
		ssr: false
		compatibilityDate: "2025-01-15"
	`})

	a, _, _, err := setupApp(t, Config{DescriptorPath: root})
	require.NoError(t, err)
	require.Equal(t, descriptor.RenderingClient, a.Descriptor().RenderingMode)
}
