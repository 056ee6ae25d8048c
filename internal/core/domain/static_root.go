package domain

import (
	"path/filepath"
	"sort"
	"unique"
)

// StaticRoot is a value object identifying one static-asset root directory.
// The path is cleaned and interned via unique.Handle so that set membership
// and equality are cheap handle comparisons, even when many finders report
// the same directory.
type StaticRoot struct {
	h unique.Handle[string]
}

// NewStaticRoot creates a StaticRoot from a directory path.
// The path is cleaned before interning so that "/a/static/" and "/a/static"
// collapse to the same root.
func NewStaticRoot(path string) StaticRoot {
	return StaticRoot{
		h: unique.Make(filepath.Clean(path)),
	}
}

// String returns the underlying directory path.
func (r StaticRoot) String() string {
	var zero unique.Handle[string]
	if r.h == zero {
		return ""
	}
	return r.h.Value()
}

// MarshalText implements encoding.TextMarshaler.
func (r StaticRoot) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *StaticRoot) UnmarshalText(text []byte) error {
	r.h = unique.Make(filepath.Clean(string(text)))
	return nil
}

// RootSet is a deduplicated collection of static roots.
// The zero value is not usable; construct with NewRootSet.
type RootSet struct {
	roots map[StaticRoot]struct{}
}

// NewRootSet creates an empty RootSet.
func NewRootSet() *RootSet {
	return &RootSet{roots: make(map[StaticRoot]struct{})}
}

// Add inserts a root into the set. Duplicate paths are collapsed.
func (s *RootSet) Add(r StaticRoot) {
	if r.String() == "" {
		return
	}
	s.roots[r] = struct{}{}
}

// Contains reports whether the set holds the given root.
func (s *RootSet) Contains(r StaticRoot) bool {
	_, ok := s.roots[r]
	return ok
}

// Len returns the number of distinct roots.
func (s *RootSet) Len() int {
	return len(s.roots)
}

// Sorted returns the root paths in lexicographic order.
// Toolchains where include-path order affects override resolution get a
// deterministic ordering this way, so compiled output is reproducible
// across runs.
func (s *RootSet) Sorted() []string {
	paths := make([]string, 0, len(s.roots))
	for r := range s.roots {
		paths = append(paths, r.String())
	}
	sort.Strings(paths)
	return paths
}
