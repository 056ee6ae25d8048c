// Package cache implements the compile cache used by the CLI layer to skip
// sources whose content has not changed since the last successful compile.
// The core engine never consults it.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CompileCache = (*Store)(nil)

// Store implements ports.CompileCache using a flat JSON file mapping source
// paths to content digests.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]string
}

// NewStore creates a compile cache backed by the file at the given path.
// A missing file is an empty cache, not an error.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read compile cache")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal compile cache")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal compile cache")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for compile cache")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write compile cache")
	}

	return nil
}

// Get returns the recorded digest for a source path, or "" when the path
// has never been compiled.
func (s *Store) Get(path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[path], nil
}

// Put records the digest of a successfully compiled source.
func (s *Store) Put(path, digest string) error {
	s.mu.Lock()
	s.cache[path] = digest
	s.mu.Unlock()

	return s.save()
}
