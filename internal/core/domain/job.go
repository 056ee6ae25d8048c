package domain

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
)

// CompileJob carries everything needed to run one compilation: the fully
// substituted command string, the resolved include paths and the temp files
// backing the {infile} and {outfile} placeholders.
//
// A job lives for the duration of one command build + execution and is
// discarded afterwards. Close must be called on every exit path so temp
// storage does not fill up under repeated failures.
type CompileJob struct {
	// Toolchain that will consume this job.
	Toolchain Toolchain

	// Command is the final shell command with all placeholders substituted.
	Command string

	// Infile is the path of the input file handed to the toolchain. Empty
	// when the template does not reference {infile}.
	Infile string

	// Outfile is the temp path the toolchain writes its output to. Empty
	// when the template does not reference {outfile}.
	Outfile string

	// IncludePaths are the resolved static roots, in deterministic order.
	IncludePaths []string

	// Options holds the substituted placeholder values by name.
	Options map[string]string

	// ownedFiles are temp files created for this job, removed on Close.
	// A caller-provided Infile is never owned.
	ownedFiles []string
}

// Own registers a temp file for removal when the job closes.
func (j *CompileJob) Own(path string) {
	j.ownedFiles = append(j.ownedFiles, path)
}

// Close removes every temp file the job owns. It is idempotent and ignores
// files already gone.
func (j *CompileJob) Close() error {
	var errs []error
	for _, path := range j.ownedFiles {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, zerr.With(zerr.Wrap(err, "failed to remove temp file"), "path", path))
		}
	}
	j.ownedFiles = nil
	return errors.Join(errs...)
}

// CompileResult is the outcome of executing one CompileJob.
type CompileResult struct {
	// Content is the compiled output read from the job's outfile.
	Content string

	// Stdout and Stderr are the captured toolchain streams. Stderr is
	// surfaced verbatim on failure; this layer never parses it.
	Stdout string
	Stderr string

	// ExitCode is the toolchain process exit status. -1 when the process
	// could not be started or was killed by a signal.
	ExitCode int
}
