package config

// gauntletFile represents the structure of the gauntlet.yaml configuration file.
type gauntletFile struct {
	Version     string         `yaml:"version"`
	Source      sourceDTO      `yaml:"source"`
	Environment environmentDTO `yaml:"environment"`
	Toolchain   toolchainDTO   `yaml:"toolchain"`
	Project     projectDTO     `yaml:"project"`
}

type sourceDTO struct {
	Remote     string `yaml:"remote"`
	Ref        string `yaml:"ref"`
	Submodules bool   `yaml:"submodules"`
}

type environmentDTO struct {
	Manifest string `yaml:"manifest"`
}

type toolchainDTO struct {
	Matrix []string `yaml:"matrix"`
}

type projectDTO struct {
	Dir      string `yaml:"dir"`
	Manifest string `yaml:"manifest"`
	Lockfile string `yaml:"lockfile"`
}
