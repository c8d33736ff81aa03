package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFilenameKeepsExtension(t *testing.T) {
	name := GenerateFilename("Photo.JPG")
	assert.True(t, strings.HasSuffix(name, ".jpg"), "got %q", name)
}

func TestGenerateFilenameUnique(t *testing.T) {
	a := GenerateFilename("a.png")
	b := GenerateFilename("a.png")
	assert.NotEqual(t, a, b)
}

func TestLocalStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads/")
	require.NoError(t, err)

	url, err := store.Save("img.png", strings.NewReader("pixels"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/img.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "img.png"))
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))
}

func TestLocalStoreStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads")
	require.NoError(t, err)

	url, err := store.Save("../../escape.png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/escape.png", url)

	_, err = os.Stat(filepath.Join(dir, "escape.png"))
	assert.NoError(t, err)
}
