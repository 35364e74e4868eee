package spacefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, "Work"))

	got, err := Read(dir)
	require.NoError(t, err)
	assert.Equal(t, "Work", got)
}

func TestRead_Missing(t *testing.T) {
	got, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead_TrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, FileName), []byte("  Work \n\n"), 0644)

	got, err := Read(dir)
	require.NoError(t, err)
	assert.Equal(t, "Work", got)
}

func TestFind_ParentDir(t *testing.T) {
	parent := t.TempDir()
	child := filepath.Join(parent, "sub", "deep")
	require.NoError(t, os.MkdirAll(child, 0755))
	require.NoError(t, Write(parent, "Work"))

	space, foundDir, err := Find(child)
	require.NoError(t, err)
	assert.Equal(t, "Work", space)
	assert.Equal(t, parent, foundDir)
}

func TestFind_NotFound(t *testing.T) {
	space, foundDir, err := Find(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, space)
	assert.Empty(t, foundDir)
}

func TestRemove_Missing(t *testing.T) {
	assert.NoError(t, Remove(t.TempDir()))
}

func TestRemove_Existing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, "Work"))
	require.NoError(t, Remove(dir))

	got, err := Read(dir)
	require.NoError(t, err)
	assert.Empty(t, got)
}
