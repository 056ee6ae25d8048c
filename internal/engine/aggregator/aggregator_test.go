package aggregator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/precomp/internal/core/ports/mocks"
	"go.trai.ch/precomp/internal/engine/aggregator"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func multiFinder(ctrl *gomock.Controller, locations ...string) *mocks.MockMultiStorageFinder {
	finder := mocks.NewMockMultiStorageFinder(ctrl)
	storages := make(map[string]ports.Storage, len(locations))
	for _, location := range locations {
		storage := mocks.NewMockStorage(ctrl)
		storage.EXPECT().Location().Return(location).AnyTimes()
		storages[location] = storage
	}
	finder.EXPECT().Storages().Return(storages).AnyTimes()
	return finder
}

func singleFinder(ctrl *gomock.Controller, location string) *mocks.MockSingleStorageFinder {
	finder := mocks.NewMockSingleStorageFinder(ctrl)
	storage := mocks.NewMockStorage(ctrl)
	storage.EXPECT().Location().Return(location).AnyTimes()
	finder.EXPECT().Storage().Return(storage).AnyTimes()
	return finder
}

func TestCollectRoots_MultiStorageFinder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockFinderRegistry(ctrl)
	registry.EXPECT().IDs().Return([]string{"apps"})
	registry.EXPECT().Lookup("apps").Return(multiFinder(ctrl, "/srv/checkout/static", "/srv/catalog/static"), nil)

	agg := aggregator.New(registry, mocks.NewMockLogger(ctrl), true)

	roots, err := agg.CollectRoots()
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/catalog/static", "/srv/checkout/static"}, roots.Sorted())
}

func TestCollectRoots_SingleStorageFinder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockFinderRegistry(ctrl)
	registry.EXPECT().IDs().Return([]string{"collected"})
	registry.EXPECT().Lookup("collected").Return(singleFinder(ctrl, "/srv/build/static"), nil)

	agg := aggregator.New(registry, mocks.NewMockLogger(ctrl), true)

	roots, err := agg.CollectRoots()
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/build/static"}, roots.Sorted())
}

// dualFinder exposes both storage capabilities, like a finder with named
// storages plus a default one.
type dualFinder struct {
	multi  ports.MultiStorageFinder
	single ports.SingleStorageFinder
}

func (f *dualFinder) ID() string                         { return "dual" }
func (f *dualFinder) Storages() map[string]ports.Storage { return f.multi.Storages() }
func (f *dualFinder) Storage() ports.Storage             { return f.single.Storage() }

func TestCollectRoots_BothCapabilitiesContribute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := &dualFinder{
		multi:  multiFinder(ctrl, "/srv/apps/static"),
		single: singleFinder(ctrl, "/srv/default/static"),
	}

	registry := mocks.NewMockFinderRegistry(ctrl)
	registry.EXPECT().IDs().Return([]string{"dual"})
	registry.EXPECT().Lookup("dual").Return(finder, nil)

	agg := aggregator.New(registry, mocks.NewMockLogger(ctrl), true)

	roots, err := agg.CollectRoots()
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/apps/static", "/srv/default/static"}, roots.Sorted())
}

func TestCollectRoots_DeduplicatesAcrossFinders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockFinderRegistry(ctrl)
	registry.EXPECT().IDs().Return([]string{"a", "b"})
	registry.EXPECT().Lookup("a").Return(multiFinder(ctrl, "/srv/shared/static"), nil)
	registry.EXPECT().Lookup("b").Return(singleFinder(ctrl, "/srv/shared/static"), nil)

	agg := aggregator.New(registry, mocks.NewMockLogger(ctrl), true)

	roots, err := agg.CollectRoots()
	require.NoError(t, err)

	assert.Equal(t, 1, roots.Len())
}

func TestCollectRoots_StoragelessFinderIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bare := mocks.NewMockFinder(ctrl)

	registry := mocks.NewMockFinderRegistry(ctrl)
	registry.EXPECT().IDs().Return([]string{"bare", "collected"})
	registry.EXPECT().Lookup("bare").Return(bare, nil)
	registry.EXPECT().Lookup("collected").Return(singleFinder(ctrl, "/srv/build/static"), nil)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn("finder exposes no storage: bare").Times(1)

	agg := aggregator.New(registry, logger, true)

	roots, err := agg.CollectRoots()
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/build/static"}, roots.Sorted())
}

func TestCollectRoots_UnknownFinderStrict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookupErr := zerr.Wrap(domain.ErrUnknownFinder, "finder not registered")

	registry := mocks.NewMockFinderRegistry(ctrl)
	registry.EXPECT().IDs().Return([]string{"ghost"})
	registry.EXPECT().Lookup("ghost").Return(nil, lookupErr)

	agg := aggregator.New(registry, mocks.NewMockLogger(ctrl), true)

	_, err := agg.CollectRoots()
	require.ErrorIs(t, err, domain.ErrUnknownFinder)
}

func TestCollectRoots_UnknownFinderLenient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookupErr := zerr.Wrap(domain.ErrUnknownFinder, "finder not registered")

	registry := mocks.NewMockFinderRegistry(ctrl)
	registry.EXPECT().IDs().Return([]string{"ghost", "collected"})
	registry.EXPECT().Lookup("ghost").Return(nil, lookupErr)
	registry.EXPECT().Lookup("collected").Return(singleFinder(ctrl, "/srv/build/static"), nil)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn("skipping unresolvable finder: ghost").Times(1)

	agg := aggregator.New(registry, logger, false)

	roots, err := agg.CollectRoots()
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/build/static"}, roots.Sorted())
}

func TestCollectRoots_NoFinders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockFinderRegistry(ctrl)
	registry.EXPECT().IDs().Return(nil)

	agg := aggregator.New(registry, mocks.NewMockLogger(ctrl), true)

	roots, err := agg.CollectRoots()
	require.NoError(t, err)
	assert.Equal(t, 0, roots.Len())
}
