package blob

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var ErrUnsafeName = errors.New("unsafe storage name")

const publicPathPrefix = "/uploads/"

// DiskStore keeps blobs as plain files under a single root directory.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}

	return &DiskStore{
		root: root,
	}, nil
}

// Put writes the blob to a temporary file and renames it into place, so a
// reader never observes a partially written file under the final name.
func (s *DiskStore) Put(name string, content io.Reader) error {
	if !safeName(name) {
		return ErrUnsafeName
	}

	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write blob: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.root, name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Delete removes the blob. Deleting a name that does not exist is not an error.
func (s *DiskStore) Delete(name string) error {
	if !safeName(name) {
		return ErrUnsafeName
	}

	err := os.Remove(filepath.Join(s.root, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove blob: %w", err)
	}

	return nil
}

// URLFor maps a storage name to its public serving path.
func (s *DiskStore) URLFor(name string) string {
	return publicPathPrefix + name
}

// FilePath resolves a storage name to an on-disk path inside the root,
// refusing anything that could escape it.
func (s *DiskStore) FilePath(name string) (string, error) {
	if !safeName(name) {
		return "", ErrUnsafeName
	}

	return filepath.Join(s.root, name), nil
}

func safeName(name string) bool {
	if name == "" || name[0] == '.' {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return filepath.Base(name) == name
}
