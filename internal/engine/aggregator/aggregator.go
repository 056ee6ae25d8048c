// Package aggregator implements static-root aggregation across finders.
package aggregator

import (
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Aggregator queries the configured finders and collects the set of
// top-level storage directories they expose.
//
// Aggregation is a read-only query against static configuration; the result
// is recomputed per compile job rather than cached, so no state is shared
// across jobs.
type Aggregator struct {
	registry ports.FinderRegistry
	logger   ports.Logger

	// strict controls the policy for unresolvable finder identifiers.
	// The legacy behavior silently skipped them, which can mask a
	// misconfigured app whose imports then break at compile time. Strict
	// mode fails fast instead and is the default.
	strict bool
}

// New creates an Aggregator over the given registry.
func New(registry ports.FinderRegistry, logger ports.Logger, strict bool) *Aggregator {
	return &Aggregator{
		registry: registry,
		logger:   logger,
		strict:   strict,
	}
}

// CollectRoots returns the deduplicated set of static-asset root
// directories exposed by every configured finder.
//
// A finder contributes the location of each of its named storage backends,
// its single storage backend, or both when it exposes both capabilities.
// Finders exposing neither are skipped without error.
func (a *Aggregator) CollectRoots() (*domain.RootSet, error) {
	roots := domain.NewRootSet()

	for _, id := range a.registry.IDs() {
		finder, err := a.registry.Lookup(id)
		if err != nil {
			if a.strict {
				return nil, zerr.Wrap(err, "failed to resolve configured finder")
			}
			a.logger.Warn("skipping unresolvable finder: " + id)
			continue
		}

		contributed := false

		if multi, ok := finder.(ports.MultiStorageFinder); ok {
			for _, storage := range multi.Storages() {
				roots.Add(domain.NewStaticRoot(storage.Location()))
			}
			contributed = true
		}

		if single, ok := finder.(ports.SingleStorageFinder); ok {
			roots.Add(domain.NewStaticRoot(single.Storage().Location()))
			contributed = true
		}

		if !contributed {
			a.logger.Warn("finder exposes no storage: " + id)
		}
	}

	return roots, nil
}
