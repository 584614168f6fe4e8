package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension_DirectoryIsSortedAndFiltered(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	for _, name := range []string{"b.hcl", "a.hcl", "sub/c.hcl", "ignore.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}

	files, err := FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "sub", "c.hcl"),
	}, files)
}

func TestFindFilesByExtension_SingleFilePath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path := filepath.Join(dir, "overlay.hcl")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	files, err := FindFilesByExtension(path, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)

	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0644))
	files, err = FindFilesByExtension(other, ".hcl")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindFilesByExtension_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "nope"), ".hcl")
	require.Error(t, err)
}
