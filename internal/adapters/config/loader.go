// Package config provides the configuration loader for gauntlet.
package config

import (
	"os"
	"path/filepath"

	"go.gauntlet.dev/gauntlet/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file gauntlet looks for.
const DefaultFilename = "gauntlet.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a FileConfigLoader for the default filename.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename}
}

// Load reads the configuration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	path := filepath.Join(cwd, l.Filename)
	return Load(path)
}

// Load reads a configuration file from the given path and returns the
// validated domain configuration.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file gauntletFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	cfg := &domain.Config{
		Source: domain.SourceConfig{
			Remote:     file.Source.Remote,
			Ref:        file.Source.Ref,
			Submodules: file.Source.Submodules,
		},
		EnvManifest: file.Environment.Manifest,
		Matrix:      domain.Matrix{Toolchains: internToolchains(file.Toolchain.Matrix)},
		ProjectDir:  file.Project.Dir,
		Manifest:    file.Project.Manifest,
		Lockfile:    file.Project.Lockfile,
	}
	applyDefaults(cfg)

	if err := cfg.Matrix.Validate(); err != nil {
		return nil, zerr.Wrap(err, "invalid toolchain matrix")
	}

	return cfg, nil
}

func applyDefaults(cfg *domain.Config) {
	if cfg.ProjectDir == "" {
		cfg.ProjectDir = "."
	}
	if cfg.Manifest == "" {
		cfg.Manifest = "Cargo.toml"
	}
	if cfg.Lockfile == "" {
		cfg.Lockfile = "Cargo.lock"
	}
}

func internToolchains(strs []string) []domain.Toolchain {
	res := make([]domain.Toolchain, len(strs))
	for i, s := range strs {
		res[i] = domain.Toolchain(s)
	}
	return res
}
