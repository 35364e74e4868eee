package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.File)
	assert.Empty(t, cfg.DefaultSpace)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := &Config{File: "/tmp/todos.md", DefaultSpace: "Work"}
	require.NoError(t, Save(dir, want))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	require.NoError(t, Save(dir, &Config{DefaultSpace: "Home"}))
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{{nope"), 0644))
	_, err := Load(dir)
	assert.Error(t, err)
}
