package domain_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/precomp/internal/core/domain"
)

func TestToolchain_Extensions(t *testing.T) {
	assert.Equal(t, ".scss", domain.ToolchainStyleSheet.InfileExt())
	assert.Equal(t, ".css", domain.ToolchainStyleSheet.OutfileExt())
	assert.Equal(t, ".js", domain.ToolchainModule.InfileExt())
	assert.Equal(t, ".js", domain.ToolchainModule.OutfileExt())
}

func TestToolchain_CommandTemplates(t *testing.T) {
	scss := domain.ToolchainStyleSheet.CommandTemplate()
	assert.Contains(t, scss, "node-sass")
	assert.Contains(t, scss, "postcss --use autoprefixer")
	assert.Contains(t, scss, "{paths}")
	assert.Contains(t, scss, "{infile}")
	assert.Contains(t, scss, "{outfile}")

	es6 := domain.ToolchainModule.CommandTemplate()
	assert.Contains(t, es6, "browserify")
	assert.Contains(t, es6, "NODE_PATH={paths}")
	assert.Contains(t, es6, "{node_modules}/babelify")
}

func TestFormatIncludePaths_StyleSheet(t *testing.T) {
	got := domain.ToolchainStyleSheet.FormatIncludePaths([]string{"/a/static", "/b/static"})

	assert.Contains(t, got, "--include-path /a/static")
	assert.Contains(t, got, "--include-path /b/static")
}

func TestFormatIncludePaths_StyleSheetQuotesSpaces(t *testing.T) {
	got := domain.ToolchainStyleSheet.FormatIncludePaths([]string{"/srv/my app/static"})

	assert.Contains(t, got, "'/srv/my app/static'")
}

func TestFormatIncludePaths_Module(t *testing.T) {
	got := domain.ToolchainModule.FormatIncludePaths([]string{"/a/static", "/b/static"})

	want := "/a/static" + string(os.PathListSeparator) + "/b/static"
	assert.Equal(t, want, got)
}

func TestFormatIncludePaths_Empty(t *testing.T) {
	assert.Equal(t, "", domain.ToolchainStyleSheet.FormatIncludePaths(nil))
	assert.Equal(t, "", domain.ToolchainModule.FormatIncludePaths(nil))
}

func TestToolchainForPath(t *testing.T) {
	cases := map[string]domain.Toolchain{
		"styles/main.scss":   domain.ToolchainStyleSheet,
		"styles/LEGACY.SCSS": domain.ToolchainStyleSheet,
		"styles/old.sass":    domain.ToolchainStyleSheet,
		"js/app.js":          domain.ToolchainModule,
		"js/app.es6":         domain.ToolchainModule,
		"js/app.mjs":         domain.ToolchainModule,
	}
	for path, want := range cases {
		got, err := domain.ToolchainForPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
}

func TestToolchainForPath_Unknown(t *testing.T) {
	_, err := domain.ToolchainForPath("image.png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownToolchain))
	assert.True(t, strings.Contains(err.Error(), "no toolchain"))
}
