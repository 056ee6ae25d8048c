package ports

import (
	"context"

	"go.trai.ch/precomp/internal/core/domain"
)

// Invoker executes a fully substituted toolchain command as a subprocess.
//
//go:generate go run go.uber.org/mock/mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks
type Invoker interface {
	// Invoke runs the command and returns its captured output streams and
	// exit status.
	//
	// The env parameter contains extra environment variables in "KEY=VALUE"
	// format, merged over the process environment.
	//
	// A non-nil result is returned alongside the error when the process ran
	// but exited non-zero, so callers can surface the captured diagnostics.
	// No timeout policy is imposed here; cancellation comes from ctx.
	Invoke(ctx context.Context, command string, env []string) (*domain.CompileResult, error)
}
