package domain

// Config is the validated pipeline configuration loaded from gauntlet.yaml.
type Config struct {
	// Source describes where and how to acquire the tree. An empty Remote
	// means the pipeline runs against the existing working tree and the
	// fetch step is skipped.
	Source SourceConfig

	// EnvManifest is the path to the declarative conda environment manifest,
	// relative to the project dir. Empty skips provisioning.
	EnvManifest string

	// Matrix enumerates the toolchain variants to fan out over.
	Matrix Matrix

	// ProjectDir is the directory holding the Cargo project. Defaults to ".".
	ProjectDir string

	// Manifest is the dependency manifest path relative to ProjectDir.
	// Defaults to "Cargo.toml".
	Manifest string

	// Lockfile is the dependency snapshot path relative to ProjectDir.
	// Defaults to "Cargo.lock".
	Lockfile string
}

// SourceConfig describes source acquisition for the fetch step.
type SourceConfig struct {
	Remote     string
	Ref        string
	Submodules bool
}

// ManifestPath returns the manifest path joined onto the project dir.
func (c *Config) ManifestPath() string {
	return joinProject(c.ProjectDir, c.Manifest)
}

// LockfilePath returns the lockfile path joined onto the project dir.
func (c *Config) LockfilePath() string {
	return joinProject(c.ProjectDir, c.Lockfile)
}

func joinProject(dir, rel string) string {
	if dir == "" || dir == "." {
		return rel
	}
	return dir + "/" + rel
}
