package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_CreateAndLookup(t *testing.T) {
	d := NewDir(t.TempDir())

	assert.False(t, d.GetFileByPath("notes/a.md"))

	require.NoError(t, d.CreateFolder("notes"))
	assert.True(t, d.GetFolderByPath("notes"))

	require.NoError(t, d.Create("notes/a.md", "hello"))
	assert.True(t, d.GetFileByPath("notes/a.md"))

	data, err := os.ReadFile(filepath.Join(d.Root(), "notes", "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestDir_CreateRefusesExisting(t *testing.T) {
	d := NewDir(t.TempDir())
	require.NoError(t, d.Create("a.md", "one"))

	assert.Error(t, d.Create("a.md", "two"))
}

func TestDir_ModifyOverwrites(t *testing.T) {
	d := NewDir(t.TempDir())
	require.NoError(t, d.Create("a.md", "one"))
	require.NoError(t, d.Modify("a.md", "two"))

	data, err := os.ReadFile(filepath.Join(d.Root(), "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestDir_FileIsNotAFolder(t *testing.T) {
	d := NewDir(t.TempDir())
	require.NoError(t, d.Create("a.md", "x"))

	assert.False(t, d.GetFolderByPath("a.md"))
	assert.True(t, d.GetFileByPath("a.md"))
}

func TestDir_CreateFolderNested(t *testing.T) {
	d := NewDir(t.TempDir())
	require.NoError(t, d.CreateFolder("a/b/c"))
	assert.True(t, d.GetFolderByPath("a/b/c"))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		path   string
		folder string
		name   string
	}{
		{"Browser History/2025-01-01.md", "Browser History", "2025-01-01.md"},
		{"a/b/c.md", "a/b", "c.md"},
		{"c.md", "", "c.md"},
	}

	for _, tc := range tests {
		folder, name := Split(tc.path)
		assert.Equal(t, tc.folder, folder, tc.path)
		assert.Equal(t, tc.name, name, tc.path)
	}
}
