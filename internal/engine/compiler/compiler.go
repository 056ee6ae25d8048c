// Package compiler orchestrates single compile jobs: build the command,
// execute it, collect the output.
package compiler

import (
	"context"
	"os"

	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/precomp/internal/engine/template"
	"go.trai.ch/zerr"
)

// Compiler runs one linear build-then-execute operation per call.
// There is no retry, no incremental recompilation and no caching here.
type Compiler struct {
	builder  *template.Builder
	invoker  ports.Invoker
	settings *domain.Settings
}

// New creates a Compiler.
func New(builder *template.Builder, invoker ports.Invoker, settings *domain.Settings) *Compiler {
	return &Compiler{
		builder:  builder,
		invoker:  invoker,
		settings: settings,
	}
}

// Compile transforms raw source content with the given toolchain and
// returns the compiled output plus captured diagnostics.
//
// The job's temp files are released on every exit path, including
// substitution errors and toolchain failures.
func (c *Compiler) Compile(ctx context.Context, content string, tc domain.Toolchain) (*domain.CompileResult, error) {
	job, err := c.builder.Build(content, tc, "", c.extraOptions(tc))
	if err != nil {
		return nil, err
	}
	defer job.Close() //nolint:errcheck // best effort temp cleanup

	result, err := c.invoker.Invoke(ctx, job.Command, nil)
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(domain.ErrCompilationFailed, "toolchain exited with an error"), "command", job.Command)
		if result != nil {
			wrapped = zerr.With(zerr.With(wrapped, "exit_code", result.ExitCode), "stderr", result.Stderr)
		}
		return result, wrapped
	}

	if job.Outfile != "" {
		out, err := os.ReadFile(job.Outfile) //nolint:gosec // job-owned temp path
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read compiled output"), "path", job.Outfile)
		}
		result.Content = string(out)
	} else {
		// Templates without an {outfile} write the artifact to stdout.
		result.Content = result.Stdout
	}

	return result, nil
}

// extraOptions returns the toolchain-specific template values that do not
// come out of the build itself.
func (c *Compiler) extraOptions(tc domain.Toolchain) map[string]string {
	switch tc {
	case domain.ToolchainModule:
		return map[string]string{"node_modules": c.settings.NodeModules}
	default:
		return nil
	}
}
