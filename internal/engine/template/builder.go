// Package template renders toolchain command templates into runnable
// compile jobs.
package template

import (
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/engine/aggregator"
	"go.trai.ch/zerr"
)

// placeholderPattern matches named placeholders like {infile} or {paths}.
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// Builder turns raw source content plus a command template into a
// CompileJob: it resolves include paths, materializes the temp input and
// output files, and substitutes every placeholder.
type Builder struct {
	aggregator *aggregator.Aggregator
	settings   *domain.Settings

	// enc is the resolved default text encoding. Encoders are created per
	// build; encoding.Encoder carries state and is not safe to share across
	// concurrent jobs.
	enc encoding.Encoding
}

// NewBuilder creates a Builder. The configured default text encoding is
// resolved once here; an unrecognized IANA name is a configuration error.
func NewBuilder(agg *aggregator.Aggregator, settings *domain.Settings) (*Builder, error) {
	b := &Builder{
		aggregator: agg,
		settings:   settings,
	}

	name := settings.Encoding
	if name == "" {
		name = "utf-8"
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownEncoding, "cannot resolve configured encoding"), "encoding", name)
	}
	b.enc = enc

	return b, nil
}

// Build produces a CompileJob for the given content and toolchain.
//
// The include-path set is fully resolved before any substitution happens; a
// partially resolved command never reaches the invoker. Temp files created
// for the job are owned by it and removed by job.Close on every exit path,
// including build failures inside this method.
//
// infile may carry a caller-provided input filename; when empty and the
// template references {infile}, a temp file with the toolchain's required
// extension is written and flushed before the job is returned. Browserify
// and friends branch on the extension, so it must be correct.
//
// extra supplies toolchain-specific values (e.g. node_modules). Computed
// values win over extras; an extra never silently overwrites a computed
// placeholder.
func (b *Builder) Build(content string, tc domain.Toolchain, infile string, extra map[string]string) (_ *domain.CompileJob, err error) {
	command := b.settings.CommandTemplate(tc)

	roots, err := b.aggregator.CollectRoots()
	if err != nil {
		return nil, err
	}
	includePaths := roots.Sorted()

	job := &domain.CompileJob{
		Toolchain:    tc,
		Infile:       infile,
		IncludePaths: includePaths,
		Options:      make(map[string]string, len(extra)+3),
	}

	// Release anything the job already owns if the build fails below.
	defer func() {
		if err != nil {
			_ = job.Close()
		}
	}()

	for k, v := range extra {
		job.Options[k] = v
	}
	job.Options["paths"] = tc.FormatIncludePaths(includePaths)

	if strings.Contains(command, "{outfile}") {
		outfile, err := tempFile("precomp-out-*"+tc.OutfileExt(), nil)
		if err != nil {
			return nil, err
		}
		job.Outfile = outfile
		job.Own(outfile)
		job.Options["outfile"] = outfile
	}

	if strings.Contains(command, "{infile}") && job.Infile == "" {
		encoded, err := b.enc.NewEncoder().Bytes([]byte(content))
		if err != nil {
			return nil, zerr.Wrap(err, "failed to encode source content")
		}
		in, err := tempFile("precomp-in-*"+tc.InfileExt(), encoded)
		if err != nil {
			return nil, err
		}
		job.Infile = in
		job.Own(in)
	}
	if job.Infile != "" {
		job.Options["infile"] = job.Infile
	}

	substituted, err := substitute(command, job.Options)
	if err != nil {
		return nil, err
	}
	job.Command = substituted

	return job, nil
}

// substitute replaces every {name} placeholder with its option value.
// A placeholder without a value fails the build before anything is spawned:
// a literal "{paths}" reaching a shell is not a meaningful include path and
// could execute a malformed command.
func substitute(command string, options map[string]string) (string, error) {
	var missing string
	out := placeholderPattern.ReplaceAllStringFunc(command, func(match string) string {
		name := match[1 : len(match)-1]
		value, ok := options[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return match
		}
		return value
	})
	if missing != "" {
		return "", zerr.With(zerr.Wrap(domain.ErrMissingPlaceholder, "cannot render command template"), "placeholder", missing)
	}
	return out, nil
}

// tempFile creates a temp file matching the pattern, writes data when
// non-nil and flushes it to disk. The downstream subprocess reads from
// disk, not from memory.
func tempFile(pattern string, data []byte) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", zerr.Wrap(err, "failed to create temp file")
	}
	if data != nil {
		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
			return "", zerr.With(zerr.Wrap(err, "failed to write temp file"), "path", f.Name())
		}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", zerr.With(zerr.Wrap(err, "failed to flush temp file"), "path", f.Name())
	}
	return f.Name(), nil
}
