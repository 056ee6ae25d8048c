// Package shell provides the subprocess invoker adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Invoker = (*Invoker)(nil)

// Invoker implements ports.Invoker using os/exec.
//
// Toolchain command templates are shell pipelines (node-sass piped into
// postcss, an exported NODE_PATH followed by browserify), so the rendered
// command runs under "sh -c" rather than being split into argv.
type Invoker struct {
	logger ports.Logger
}

// NewInvoker creates a new shell Invoker.
func NewInvoker(logger ports.Logger) *Invoker {
	return &Invoker{logger: logger}
}

// Invoke runs the command and captures its output streams.
//
// The extra env entries are merged over os.Environ(), with PATH entries
// prepended to the system PATH rather than replacing it.
//
// On a non-zero exit the captured result is returned together with the
// error so callers can surface stderr verbatim. This layer imposes no
// timeout; cancellation arrives through ctx.
func (i *Invoker) Invoke(ctx context.Context, command string, env []string) (*domain.CompileResult, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command) //nolint:gosec // command is rendered from vetted templates

	cmd.Env = resolveEnvironment(os.Environ(), env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = io.MultiWriter(&stdout, &logWriter{logger: i.logger, level: "info"})
	cmd.Stderr = io.MultiWriter(&stderr, &logWriter{logger: i.logger, level: "error"})

	err := cmd.Run()

	result := &domain.CompileResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: 0,
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		wrapped := zerr.With(zerr.Wrap(err, "toolchain process failed"), "exit_code", result.ExitCode)
		return result, wrapped
	}

	return result, nil
}

// logWriter tees subprocess output to the logger one line at a time.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if msg == "" {
		return len(p), nil
	}
	for _, line := range strings.Split(msg, "\n") {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}

// resolveEnvironment merges extra entries over the system environment.
// PATH is special-cased: extra paths are prepended so toolchain lookups
// prefer them without hiding system binaries.
func resolveEnvironment(sysEnv, extra []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(extra))
	order := make([]string, 0, len(sysEnv)+len(extra))

	set := func(k, v string) {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}

	for _, entry := range extra {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath, exists := envMap["PATH"]; exists && sysPath != "" {
				set(k, v+string(os.PathListSeparator)+sysPath)
				continue
			}
		}
		set(k, v)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
