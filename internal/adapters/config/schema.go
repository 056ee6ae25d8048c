package config

// Precompfile represents the structure of the precomp.yaml configuration
// file.
type Precompfile struct {
	Version       string                  `yaml:"version"`
	Finders       []FinderDTO             `yaml:"finders"`
	StrictFinders *bool                   `yaml:"strictFinders"`
	Encoding      string                  `yaml:"encoding"`
	NodeModules   string                  `yaml:"nodeModules"`
	OutputDir     string                  `yaml:"outputDir"`
	Jobs          int                     `yaml:"jobs"`
	CacheFile     string                  `yaml:"cacheFile"`
	Toolchains    map[string]ToolchainDTO `yaml:"toolchains"`
}

// FinderDTO represents a finder definition in the configuration.
type FinderDTO struct {
	ID        string   `yaml:"id"`
	Kind      string   `yaml:"kind"`
	Dirs      []string `yaml:"dirs"`
	Root      string   `yaml:"root"`
	StaticDir string   `yaml:"staticDir"`
}

// ToolchainDTO represents a toolchain override in the configuration.
type ToolchainDTO struct {
	Command string `yaml:"command"`
}
