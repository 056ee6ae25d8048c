package domain

// Finder kinds accepted in configuration.
const (
	// FinderKindDirs exposes one storage per explicitly listed directory.
	FinderKindDirs = "dirs"
	// FinderKindAppDirs discovers one storage per application module found
	// under a root directory, rooted at the module's static subdirectory.
	FinderKindAppDirs = "appdirs"
	// FinderKindBuildDir exposes a single storage for a precollected
	// build/output directory.
	FinderKindBuildDir = "builddir"
)

// FinderSpec configures one static-file finder.
type FinderSpec struct {
	// ID is the identifier the aggregator resolves the finder by.
	ID string
	// Kind selects the finder implementation (FinderKind* constants).
	Kind string
	// Dirs lists the storage directories for a dirs finder.
	Dirs []string
	// Root is the apps root for an appdirs finder, or the single directory
	// for a builddir finder.
	Root string
	// StaticDir is the per-app static subdirectory name for an appdirs
	// finder. Defaults to "static".
	StaticDir string
}

// ToolchainSpec overrides parts of a built-in toolchain definition.
type ToolchainSpec struct {
	// Command replaces the default command template when non-empty.
	Command string
}

// Settings is the full, explicit configuration surface of the orchestrator.
// It is loaded once and passed to the components that need it; nothing in
// this package reads ambient global state.
type Settings struct {
	// Finders is the ordered list of configured static-file finders.
	Finders []FinderSpec

	// StrictFinders controls the policy for unresolvable finder identifiers.
	// When true (the default) aggregation fails fast; when false the finder
	// is skipped with a warning, matching legacy best-effort behavior.
	StrictFinders bool

	// Encoding is the IANA name of the text encoding source content is
	// written with before being handed to a toolchain. Defaults to utf-8.
	Encoding string

	// NodeModules locates the transpilation plugins for the module
	// toolchain. Defaults to /usr/lib/node_modules.
	NodeModules string

	// OutputDir is where the CLI writes compiled artifacts.
	OutputDir string

	// Jobs bounds how many files the CLI compiles concurrently.
	// Zero means one per CPU.
	Jobs int

	// CacheFile is the path of the compile cache store. Empty disables the
	// cache entirely.
	CacheFile string

	// Toolchains overrides built-in toolchain command templates, keyed by
	// toolchain name ("stylesheet", "module").
	Toolchains map[string]ToolchainSpec
}

// DefaultSettings returns the settings applied when the configuration file
// omits a value.
func DefaultSettings() Settings {
	return Settings{
		StrictFinders: true,
		Encoding:      "utf-8",
		NodeModules:   "/usr/lib/node_modules",
		OutputDir:     "build/assets",
	}
}

// CommandTemplate returns the command template for the given toolchain,
// honoring any configured override.
func (s Settings) CommandTemplate(t Toolchain) string {
	if spec, ok := s.Toolchains[t.String()]; ok && spec.Command != "" {
		return spec.Command
	}
	return t.CommandTemplate()
}
