// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.hcl"))
	writeFile(t, filepath.Join(root, "nested", "a.hcl"))
	writeFile(t, filepath.Join(root, "notes.txt"))
	writeFile(t, filepath.Join(root, "c.yaml"))

	files, err := FindFilesByExtension([]string{root, filepath.Join(root, "b.hcl")}, ".hcl")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "a.hcl"),
	}, files)

	files, err = FindFilesByExtension([]string{root}, ".yaml", ".yml")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "c.yaml")}, files)
}

func TestFindFilesByExtension_MissingPath(t *testing.T) {
	_, err := FindFilesByExtension([]string{filepath.Join(t.TempDir(), "nope")}, ".hcl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "error accessing path")
}

func TestFindFilesByExtension_PanicsWithoutExtension(t *testing.T) {
	require.Panics(t, func() {
		_, _ = FindFilesByExtension([]string{t.TempDir()})
	})
}

func TestHasExtension(t *testing.T) {
	require.True(t, HasExtension("app.yml", ".yaml", ".yml"))
	require.False(t, HasExtension("app.hcl", ".yaml", ".yml"))
}
