// Package ports defines the core interfaces for the application.
package ports

//go:generate go run go.uber.org/mock/mockgen -source=finder.go -destination=mocks/mock_finder.go -package=mocks

// Storage abstracts file access for one category of static assets.
// Its defining attribute for aggregation is the root directory it serves.
type Storage interface {
	// Location returns the absolute root directory of the storage.
	Location() string

	// Exists reports whether the named file exists under the storage root.
	Exists(name string) bool
}

// Finder reports root directories containing static assets for an
// application module. Concrete finders additionally implement one or both
// of the capability interfaces below; a finder implementing neither
// contributes nothing and is skipped by the aggregator.
type Finder interface {
	// ID returns the identifier the finder is configured under.
	ID() string
}

// MultiStorageFinder exposes multiple named storage backends.
type MultiStorageFinder interface {
	Finder
	// Storages returns the finder's storage backends keyed by name.
	Storages() map[string]Storage
}

// SingleStorageFinder exposes exactly one storage backend.
type SingleStorageFinder interface {
	Finder
	// Storage returns the finder's storage backend.
	Storage() Storage
}

// FinderRegistry resolves configured finder identifiers to instances.
type FinderRegistry interface {
	// Lookup resolves a finder by identifier. It returns
	// domain.ErrUnknownFinder when the identifier is not registered.
	Lookup(id string) (Finder, error)

	// IDs returns the configured finder identifiers in configuration order.
	IDs() []string
}
