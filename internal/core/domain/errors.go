package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownFinder is returned when a configured finder identifier cannot
	// be resolved. A missing app's static assets would silently break imports,
	// so this is a configuration error rather than something to skip.
	ErrUnknownFinder = zerr.New("unknown finder")

	// ErrMissingPlaceholder is returned when a command template references a
	// placeholder that has no resolved value. A literal "{paths}" must never
	// reach a shell.
	ErrMissingPlaceholder = zerr.New("template placeholder has no value")

	// ErrCompilationFailed is returned when the external toolchain process
	// exits non-zero. Its captured stderr is surfaced verbatim.
	ErrCompilationFailed = zerr.New("compilation failed")

	// ErrUnknownToolchain is returned when a source file's extension maps to
	// no configured toolchain.
	ErrUnknownToolchain = zerr.New("no toolchain for file extension")

	// ErrUnknownEncoding is returned when the configured default text
	// encoding is not a recognized IANA charset name.
	ErrUnknownEncoding = zerr.New("unknown text encoding")
)
