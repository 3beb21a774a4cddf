// Package vault models the note store the synchronizer writes into. The
// interface mirrors a note vault's minimal file API; Dir backs it with a
// plain directory tree.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Vault is the file surface the note synchronizer depends on. Paths are
// vault-relative and slash-separated regardless of platform.
type Vault interface {
	GetFileByPath(path string) bool
	Create(path, content string) error
	Modify(path, content string) error
	GetFolderByPath(path string) bool
	CreateFolder(path string) error
}

// Dir is a Vault rooted at a local directory.
type Dir struct {
	root string
}

// NewDir returns a Vault backed by the given directory. The directory is
// created on first write, not here.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Root returns the vault's base directory.
func (d *Dir) Root() string { return d.root }

func (d *Dir) resolve(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(path))
}

// GetFileByPath reports whether a regular file exists at the vault path.
func (d *Dir) GetFileByPath(path string) bool {
	info, err := os.Stat(d.resolve(path))
	return err == nil && !info.IsDir()
}

// GetFolderByPath reports whether a folder exists at the vault path.
func (d *Dir) GetFolderByPath(path string) bool {
	info, err := os.Stat(d.resolve(path))
	return err == nil && info.IsDir()
}

// Create writes a new file. It is an error if the file already exists;
// use Modify to overwrite.
func (d *Dir) Create(path, content string) error {
	full := d.resolve(path)
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Modify overwrites an existing file's content unconditionally.
func (d *Dir) Modify(path, content string) error {
	if err := os.WriteFile(d.resolve(path), []byte(content), 0644); err != nil {
		return fmt.Errorf("modify %s: %w", path, err)
	}
	return nil
}

// CreateFolder creates a folder, parents included.
func (d *Dir) CreateFolder(path string) error {
	if err := os.MkdirAll(d.resolve(path), 0755); err != nil {
		return fmt.Errorf("create folder %s: %w", path, err)
	}
	return nil
}

// Split separates a vault path into its folder part and file name, the
// way the synchronizer derives the folder to create before upserting.
func Split(path string) (folder, name string) {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return "", path
	}
	return path[:idx], path[idx+1:]
}
