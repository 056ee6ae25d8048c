package staticfiles

import (
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FinderRegistry = (*Registry)(nil)

// Registry resolves configured finder identifiers to finder instances.
// It is built once from settings and read-only afterwards.
type Registry struct {
	ids     []string
	finders map[string]ports.Finder
}

// NewRegistry constructs every configured finder. Construction fails on the
// first finder that cannot be built (bad kind, unreadable apps root), since
// a half-populated registry would silently drop static roots later.
func NewRegistry(settings *domain.Settings) (*Registry, error) {
	r := &Registry{
		ids:     make([]string, 0, len(settings.Finders)),
		finders: make(map[string]ports.Finder, len(settings.Finders)),
	}

	for _, spec := range settings.Finders {
		if _, exists := r.finders[spec.ID]; exists {
			return nil, zerr.With(zerr.New("duplicate finder id"), "finder", spec.ID)
		}
		finder, err := New(spec)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to construct finder"), "finder", spec.ID)
		}
		r.ids = append(r.ids, spec.ID)
		r.finders[spec.ID] = finder
	}

	return r, nil
}

// Lookup resolves a finder by identifier.
func (r *Registry) Lookup(id string) (ports.Finder, error) {
	finder, ok := r.finders[id]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownFinder, "finder not registered"), "finder", id)
	}
	return finder, nil
}

// IDs returns the configured finder identifiers in configuration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.ids))
	copy(ids, r.ids)
	return ids
}
