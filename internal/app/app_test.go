package app_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/precomp/internal/adapters/logger"
	"go.trai.ch/precomp/internal/adapters/shell"
	"go.trai.ch/precomp/internal/adapters/telemetry"
	"go.trai.ch/precomp/internal/app"
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// testSettings returns settings wired for tests: one dirs finder over a temp
// directory and cat standing in for both toolchains.
func testSettings(t *testing.T) *domain.Settings {
	t.Helper()
	settings := domain.DefaultSettings()
	settings.Finders = []domain.FinderSpec{
		{ID: "static", Kind: domain.FinderKindDirs, Dirs: []string{t.TempDir()}},
	}
	settings.OutputDir = t.TempDir()
	settings.Toolchains = map[string]domain.ToolchainSpec{
		"stylesheet": {Command: "cat {infile} > {outfile}"},
		"module":     {Command: "cat {infile} > {outfile}"},
	}
	return &settings
}

// newApp assembles an App over a stubbed config loader, a quiet logger and
// the real shell invoker.
func newApp(t *testing.T, ctrl *gomock.Controller, settings *domain.Settings) *app.App {
	t.Helper()

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("precomp.yaml").Return(settings, nil).AnyTimes()

	lg := logger.New()
	lg.SetOutput(io.Discard)

	return app.New(loader, shell.NewInvoker(lg), telemetry.NewNoOp(), lg)
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_CompilesFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := testSettings(t)
	a := newApp(t, ctrl, settings)

	scss := writeSource(t, "theme.scss", "body { color: red; }")
	js := writeSource(t, "widget.js", "export default 1;")

	require.NoError(t, a.Run(context.Background(), []string{scss, js}, false))

	css, err := os.ReadFile(filepath.Join(settings.OutputDir, "theme.css"))
	require.NoError(t, err)
	assert.Equal(t, "body { color: red; }", string(css))

	bundle, err := os.ReadFile(filepath.Join(settings.OutputDir, "widget.js"))
	require.NoError(t, err)
	assert.Equal(t, "export default 1;", string(bundle))
}

func TestRun_UnsupportedExtension(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newApp(t, ctrl, testSettings(t))

	notes := writeSource(t, "notes.txt", "not a source file")

	err := a.Run(context.Background(), []string{notes}, false)
	require.ErrorIs(t, err, domain.ErrUnknownToolchain)
}

func TestRun_FailedToolchainPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := testSettings(t)
	settings.Toolchains["stylesheet"] = domain.ToolchainSpec{Command: "exit 3"}
	a := newApp(t, ctrl, settings)

	scss := writeSource(t, "broken.scss", "body {")

	err := a.Run(context.Background(), []string{scss}, false)
	require.ErrorIs(t, err, domain.ErrCompilationFailed)

	assert.NoFileExists(t, filepath.Join(settings.OutputDir, "broken.css"))
}

func TestRun_CacheSkipsUnchangedSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := testSettings(t)
	settings.CacheFile = filepath.Join(t.TempDir(), "cache.json")
	a := newApp(t, ctrl, settings)

	scss := writeSource(t, "theme.scss", "body { color: red; }")
	artifact := filepath.Join(settings.OutputDir, "theme.css")

	require.NoError(t, a.Run(context.Background(), []string{scss}, false))
	require.FileExists(t, artifact)

	// An unchanged source is skipped entirely on the next run.
	require.NoError(t, os.Remove(artifact))
	require.NoError(t, a.Run(context.Background(), []string{scss}, false))
	assert.NoFileExists(t, artifact)

	// force recompiles regardless of the cache.
	require.NoError(t, a.Run(context.Background(), []string{scss}, true))
	assert.FileExists(t, artifact)
}

func TestRun_ChangedSourceIsRecompiled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := testSettings(t)
	settings.CacheFile = filepath.Join(t.TempDir(), "cache.json")
	a := newApp(t, ctrl, settings)

	scss := writeSource(t, "theme.scss", "body { color: red; }")
	artifact := filepath.Join(settings.OutputDir, "theme.css")

	require.NoError(t, a.Run(context.Background(), []string{scss}, false))

	require.NoError(t, os.WriteFile(scss, []byte("body { color: blue; }"), 0o600))
	require.NoError(t, a.Run(context.Background(), []string{scss}, false))

	css, err := os.ReadFile(artifact)
	require.NoError(t, err)
	assert.Equal(t, "body { color: blue; }", string(css))
}

func TestRun_OutputDirOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := testSettings(t)
	a := newApp(t, ctrl, settings)
	a.OutputDir = filepath.Join(t.TempDir(), "override")

	scss := writeSource(t, "theme.scss", "body {}")

	require.NoError(t, a.Run(context.Background(), []string{scss}, false))

	assert.FileExists(t, filepath.Join(a.OutputDir, "theme.css"))
	assert.NoFileExists(t, filepath.Join(settings.OutputDir, "theme.css"))
}

func TestRun_ConfigPathIsPassedToLoader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := testSettings(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("custom/precomp.yaml").Return(settings, nil)

	lg := logger.New()
	lg.SetOutput(io.Discard)

	a := app.New(loader, shell.NewInvoker(lg), telemetry.NewNoOp(), lg)
	a.ConfigPath = "custom/precomp.yaml"

	require.NoError(t, a.Run(context.Background(), nil, false))
}

func TestRoots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dirA := t.TempDir()
	dirB := t.TempDir()

	settings := domain.DefaultSettings()
	settings.Finders = []domain.FinderSpec{
		{ID: "static", Kind: domain.FinderKindDirs, Dirs: []string{dirB, dirA}},
	}

	a := newApp(t, ctrl, &settings)

	roots, err := a.Roots()
	require.NoError(t, err)

	require.Len(t, roots, 2)
	assert.Contains(t, roots, dirA)
	assert.Contains(t, roots, dirB)
	// Deterministic order regardless of configuration order.
	assert.Less(t, roots[0], roots[1])
}
