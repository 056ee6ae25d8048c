// Package app implements the application layer for precomp.
package app

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/precomp/internal/adapters/cache"
	"go.trai.ch/precomp/internal/adapters/staticfiles"
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/precomp/internal/engine/aggregator"
	"go.trai.ch/precomp/internal/engine/compiler"
	"go.trai.ch/precomp/internal/engine/template"
	"go.trai.ch/zerr"
)

// App represents the main application logic: load settings, assemble the
// compile pipeline and batch-compile source files.
type App struct {
	loader    ports.ConfigLoader
	invoker   ports.Invoker
	telemetry ports.Telemetry
	logger    ports.Logger

	// ConfigPath is the configuration file to load. The CLI overrides it
	// from the --config flag.
	ConfigPath string

	// OutputDir overrides the configured output directory when non-empty.
	OutputDir string
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, invoker ports.Invoker, telemetry ports.Telemetry, logger ports.Logger) *App {
	return &App{
		loader:     loader,
		invoker:    invoker,
		telemetry:  telemetry,
		logger:     logger,
		ConfigPath: "precomp.yaml",
	}
}

// pipeline is the per-run assembly of the compile components. Everything
// hangs off one Settings value loaded at the start of the run; no ambient
// global state is consulted.
type pipeline struct {
	settings *domain.Settings
	agg      *aggregator.Aggregator
	compiler *compiler.Compiler
	store    ports.CompileCache
}

func (a *App) assemble() (*pipeline, error) {
	settings, err := a.loader.Load(a.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	registry, err := staticfiles.NewRegistry(settings)
	if err != nil {
		return nil, err
	}

	agg := aggregator.New(registry, a.logger, settings.StrictFinders)

	builder, err := template.NewBuilder(agg, settings)
	if err != nil {
		return nil, err
	}

	p := &pipeline{
		settings: settings,
		agg:      agg,
		compiler: compiler.New(builder, a.invoker, settings),
	}

	if settings.CacheFile != "" {
		store, err := cache.NewStore(settings.CacheFile)
		if err != nil {
			return nil, err
		}
		p.store = store
	}

	return p, nil
}

// Run compiles the given source files and writes the artifacts to the
// output directory. Files are processed concurrently up to the configured
// job limit; the first failure cancels the rest of the batch.
func (a *App) Run(ctx context.Context, files []string, force bool) error {
	p, err := a.assemble()
	if err != nil {
		return err
	}
	defer a.telemetry.Close() //nolint:errcheck // display teardown

	outDir := p.settings.OutputDir
	if a.OutputDir != "" {
		outDir = a.OutputDir
	}
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create output directory")
	}

	jobs := p.settings.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, file := range files {
		g.Go(func() error {
			return a.compileFile(ctx, p, file, outDir, force)
		})
	}

	return g.Wait()
}

// Roots returns the aggregated static roots in deterministic order.
func (a *App) Roots() ([]string, error) {
	p, err := a.assemble()
	if err != nil {
		return nil, err
	}
	roots, err := p.agg.CollectRoots()
	if err != nil {
		return nil, err
	}
	return roots.Sorted(), nil
}

func (a *App) compileFile(ctx context.Context, p *pipeline, file, outDir string, force bool) error {
	tc, err := domain.ToolchainForPath(file)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(file) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.Wrap(err, "failed to read source file")
	}

	_, vertex := a.telemetry.Record(ctx, file)

	digest := cache.Digest(tc.String(), content)
	if !force && p.store != nil {
		cached, err := p.store.Get(file)
		if err != nil {
			vertex.Complete(err)
			return err
		}
		if cached == digest {
			vertex.Cached()
			vertex.Complete(nil)
			a.logger.Info("unchanged, skipping: " + file)
			return nil
		}
	}

	result, err := p.compiler.Compile(ctx, string(content), tc)
	if err != nil {
		if result != nil && result.Stderr != "" {
			_, _ = vertex.Stderr().Write([]byte(result.Stderr))
		}
		vertex.Complete(err)
		return err
	}

	target := filepath.Join(outDir, artifactName(file, tc))
	if err := os.WriteFile(target, []byte(result.Content), 0o644); err != nil { //nolint:gosec // build artifact
		vertex.Complete(err)
		return zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", target)
	}

	if p.store != nil {
		if err := p.store.Put(file, digest); err != nil {
			vertex.Complete(err)
			return err
		}
	}

	vertex.Complete(nil)
	a.logger.Info("compiled " + file + " -> " + target)
	return nil
}

// artifactName maps a source filename to its compiled artifact name.
func artifactName(file string, tc domain.Toolchain) string {
	base := filepath.Base(file)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + tc.OutfileExt()
}
