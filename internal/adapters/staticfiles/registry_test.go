package staticfiles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/precomp/internal/adapters/staticfiles"
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestNewRegistry(t *testing.T) {
	settings := &domain.Settings{
		Finders: []domain.FinderSpec{
			{ID: "vendor", Kind: domain.FinderKindDirs, Dirs: []string{t.TempDir()}},
			{ID: "collected", Kind: domain.FinderKindBuildDir, Root: t.TempDir()},
		},
	}

	registry, err := staticfiles.NewRegistry(settings)
	require.NoError(t, err)

	assert.Equal(t, []string{"vendor", "collected"}, registry.IDs())

	finder, err := registry.Lookup("vendor")
	require.NoError(t, err)
	assert.Equal(t, "vendor", finder.ID())
}

func TestNewRegistry_DuplicateID(t *testing.T) {
	settings := &domain.Settings{
		Finders: []domain.FinderSpec{
			{ID: "vendor", Kind: domain.FinderKindDirs},
			{ID: "vendor", Kind: domain.FinderKindBuildDir, Root: t.TempDir()},
		},
	}

	_, err := staticfiles.NewRegistry(settings)
	require.Error(t, err)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "vendor", zErr.Metadata()["finder"])
}

func TestNewRegistry_BadKind(t *testing.T) {
	settings := &domain.Settings{
		Finders: []domain.FinderSpec{
			{ID: "broken", Kind: "ftp"},
		},
	}

	_, err := staticfiles.NewRegistry(settings)
	require.Error(t, err)
}

func TestRegistry_LookupUnknown(t *testing.T) {
	registry, err := staticfiles.NewRegistry(&domain.Settings{})
	require.NoError(t, err)

	_, err = registry.Lookup("ghost")
	require.ErrorIs(t, err, domain.ErrUnknownFinder)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "ghost", zErr.Metadata()["finder"])
}

func TestRegistry_IDsReturnsCopy(t *testing.T) {
	settings := &domain.Settings{
		Finders: []domain.FinderSpec{
			{ID: "vendor", Kind: domain.FinderKindDirs},
		},
	}

	registry, err := staticfiles.NewRegistry(settings)
	require.NoError(t, err)

	ids := registry.IDs()
	ids[0] = "mutated"
	assert.Equal(t, []string{"vendor"}, registry.IDs())
}
