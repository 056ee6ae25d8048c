// Package config provides the configuration loader for precomp.
package config

import (
	"os"

	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// Load reads the configuration file at the given path.
func (l *FileConfigLoader) Load(path string) (*domain.Settings, error) {
	return Load(path)
}

// Load reads a configuration file from the given path and returns the
// resolved settings with defaults applied.
func Load(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Precompfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	settings := domain.DefaultSettings()

	seen := make(map[string]bool, len(file.Finders))
	for _, dto := range file.Finders {
		if dto.ID == "" {
			return nil, zerr.New("finder is missing an id")
		}
		if seen[dto.ID] {
			return nil, zerr.With(zerr.New("duplicate finder id"), "finder", dto.ID)
		}
		seen[dto.ID] = true

		settings.Finders = append(settings.Finders, domain.FinderSpec{
			ID:        dto.ID,
			Kind:      dto.Kind,
			Dirs:      dto.Dirs,
			Root:      dto.Root,
			StaticDir: dto.StaticDir,
		})
	}

	if file.StrictFinders != nil {
		settings.StrictFinders = *file.StrictFinders
	}
	if file.Encoding != "" {
		settings.Encoding = file.Encoding
	}
	if file.NodeModules != "" {
		settings.NodeModules = file.NodeModules
	}
	if file.OutputDir != "" {
		settings.OutputDir = file.OutputDir
	}
	if file.Jobs > 0 {
		settings.Jobs = file.Jobs
	}
	settings.CacheFile = file.CacheFile

	if len(file.Toolchains) > 0 {
		settings.Toolchains = make(map[string]domain.ToolchainSpec, len(file.Toolchains))
		for name, dto := range file.Toolchains {
			if name != domain.ToolchainStyleSheet.String() && name != domain.ToolchainModule.String() {
				return nil, zerr.With(zerr.New("unknown toolchain override"), "toolchain", name)
			}
			settings.Toolchains[name] = domain.ToolchainSpec{Command: dto.Command}
		}
	}

	return &settings, nil
}
