package staticfiles

import (
	"os"
	"path/filepath"

	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.MultiStorageFinder  = (*DirsFinder)(nil)
	_ ports.MultiStorageFinder  = (*AppDirsFinder)(nil)
	_ ports.SingleStorageFinder = (*BuildDirFinder)(nil)
)

// DirsFinder exposes one storage per explicitly configured directory.
type DirsFinder struct {
	id       string
	storages map[string]ports.Storage
}

// NewDirsFinder creates a finder over an explicit directory list.
func NewDirsFinder(id string, dirs []string) *DirsFinder {
	storages := make(map[string]ports.Storage, len(dirs))
	for _, dir := range dirs {
		storage := NewDirStorage(dir)
		storages[storage.Location()] = storage
	}
	return &DirsFinder{id: id, storages: storages}
}

// ID returns the configured finder identifier.
func (f *DirsFinder) ID() string { return f.id }

// Storages returns one storage per configured directory, keyed by location.
func (f *DirsFinder) Storages() map[string]ports.Storage { return f.storages }

// AppDirsFinder discovers application modules under a root directory and
// exposes one storage per module's static subdirectory:
//
//	apps/
//	  checkout/static/   -> storage "checkout"
//	  catalog/static/    -> storage "catalog"
//	  legal/             -> no static dir, not a storage
//
// Discovery happens at construction; the finder is read-only afterwards.
type AppDirsFinder struct {
	id       string
	storages map[string]ports.Storage
}

// NewAppDirsFinder walks the immediate children of root and collects every
// app that carries the named static subdirectory.
func NewAppDirsFinder(id, root, staticDir string) (*AppDirsFinder, error) {
	if staticDir == "" {
		staticDir = "static"
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read apps root"), "root", root)
	}

	storages := make(map[string]ports.Storage)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate := filepath.Join(root, entry.Name(), staticDir)
		info, err := os.Stat(candidate)
		if err != nil || !info.IsDir() {
			continue
		}
		storages[entry.Name()] = NewDirStorage(candidate)
	}

	return &AppDirsFinder{id: id, storages: storages}, nil
}

// ID returns the configured finder identifier.
func (f *AppDirsFinder) ID() string { return f.id }

// Storages returns one storage per discovered app, keyed by app name.
func (f *AppDirsFinder) Storages() map[string]ports.Storage { return f.storages }

// BuildDirFinder exposes a single precollected directory, the analogue of a
// default-storage finder.
type BuildDirFinder struct {
	id      string
	storage ports.Storage
}

// NewBuildDirFinder creates a finder over a single directory.
func NewBuildDirFinder(id, dir string) *BuildDirFinder {
	return &BuildDirFinder{id: id, storage: NewDirStorage(dir)}
}

// ID returns the configured finder identifier.
func (f *BuildDirFinder) ID() string { return f.id }

// Storage returns the finder's single storage backend.
func (f *BuildDirFinder) Storage() ports.Storage { return f.storage }

// New constructs a finder from its configuration spec.
func New(spec domain.FinderSpec) (ports.Finder, error) {
	switch spec.Kind {
	case domain.FinderKindDirs:
		return NewDirsFinder(spec.ID, spec.Dirs), nil
	case domain.FinderKindAppDirs:
		return NewAppDirsFinder(spec.ID, spec.Root, spec.StaticDir)
	case domain.FinderKindBuildDir:
		return NewBuildDirFinder(spec.ID, spec.Root), nil
	default:
		return nil, zerr.With(zerr.New("unknown finder kind"), "kind", spec.Kind)
	}
}
