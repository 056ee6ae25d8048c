// Package staticfiles provides the finder adapters that discover
// static-asset root directories across application modules.
package staticfiles

import (
	"os"
	"path/filepath"

	"go.trai.ch/precomp/internal/core/ports"
)

var _ ports.Storage = (*DirStorage)(nil)

// DirStorage is a storage backend rooted at a single directory.
type DirStorage struct {
	location string
}

// NewDirStorage creates a storage for the given directory. Relative paths
// are resolved against the current working directory so every reported
// location is absolute.
func NewDirStorage(dir string) *DirStorage {
	abs, err := filepath.Abs(dir)
	if err != nil {
		// filepath.Abs only fails when the cwd is gone; fall back to the
		// cleaned input rather than dropping the storage.
		abs = filepath.Clean(dir)
	}
	return &DirStorage{location: abs}
}

// Location returns the absolute root directory of the storage.
func (s *DirStorage) Location() string {
	return s.location
}

// Exists reports whether the named file exists under the storage root.
func (s *DirStorage) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.location, name))
	return err == nil
}
