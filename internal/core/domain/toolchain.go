package domain

import (
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/zerr"
)

// Toolchain identifies one of the supported external compiler pipelines.
// Each variant carries its own command template, input/output file
// extensions and include-path rendering strategy.
type Toolchain int

const (
	// ToolchainStyleSheet compiles SCSS to CSS via node-sass piped into the
	// autoprefixer postprocessor. Include paths are passed as repeated
	// --include-path flags.
	ToolchainStyleSheet Toolchain = iota

	// ToolchainModule bundles ES6 modules into ES5 via browserify with the
	// babelify transform. Include paths are exported as a single
	// NODE_PATH value joined with the platform path-list separator.
	ToolchainModule
)

const (
	styleSheetCommand = `node-sass --output-style expanded {paths} {infile} {outfile} && ` +
		`postcss --use autoprefixer --autoprefixer.browsers "ie >= 9, > 5%" -r {outfile}`

	moduleCommand = `export NODE_PATH={paths} && ` +
		`browserify {infile} -o {outfile} --no-bundle-external --node ` +
		`-t [ {node_modules}/babelify --presets={node_modules}/babel-preset-es2015 ]`
)

// String returns the toolchain name.
func (t Toolchain) String() string {
	switch t {
	case ToolchainStyleSheet:
		return "stylesheet"
	case ToolchainModule:
		return "module"
	default:
		return "unknown"
	}
}

// CommandTemplate returns the default shell command template for the
// toolchain. Placeholders ({infile}, {outfile}, {paths}, {node_modules})
// are substituted by the template builder before execution.
func (t Toolchain) CommandTemplate() string {
	switch t {
	case ToolchainStyleSheet:
		return styleSheetCommand
	case ToolchainModule:
		return moduleCommand
	default:
		return ""
	}
}

// InfileExt returns the file extension the toolchain requires on its input
// file. Browserify branches on the extension of the file it is handed, so
// a temp file without it silently misbehaves.
func (t Toolchain) InfileExt() string {
	switch t {
	case ToolchainStyleSheet:
		return ".scss"
	case ToolchainModule:
		return ".js"
	default:
		return ""
	}
}

// OutfileExt returns the extension of the compiled artifact.
func (t Toolchain) OutfileExt() string {
	switch t {
	case ToolchainStyleSheet:
		return ".css"
	case ToolchainModule:
		return ".js"
	default:
		return ""
	}
}

// FormatIncludePaths renders the resolved static roots into the value
// substituted for the {paths} placeholder.
//
// The stylesheet toolchain takes repeated flags:
//
//	--include-path path/to/app-1/static --include-path path/to/app-2/static
//
// The module toolchain takes a single list-separated value for NODE_PATH:
//
//	path/to/app-1/static:path/to/app-2/static
//
// An empty root list renders as an empty string, i.e. zero flags.
func (t Toolchain) FormatIncludePaths(roots []string) string {
	switch t {
	case ToolchainStyleSheet:
		flags := make([]string, 0, len(roots))
		for _, root := range roots {
			flags = append(flags, "--include-path "+shellquote.Join(root))
		}
		return strings.Join(flags, " ")
	case ToolchainModule:
		return strings.Join(roots, string(os.PathListSeparator))
	default:
		return ""
	}
}

// ToolchainForPath maps a source filename to its toolchain by extension.
func ToolchainForPath(path string) (Toolchain, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".scss"), strings.HasSuffix(lower, ".sass"):
		return ToolchainStyleSheet, nil
	case strings.HasSuffix(lower, ".js"), strings.HasSuffix(lower, ".es6"), strings.HasSuffix(lower, ".mjs"):
		return ToolchainModule, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrUnknownToolchain, "unsupported source file"), "path", path)
	}
}
