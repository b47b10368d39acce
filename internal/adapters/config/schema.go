package config

// Multiapifile represents the structure of the multiapi.yaml configuration file.
type Multiapifile struct {
	Version  string     `yaml:"version"`
	Project  ProjectDTO `yaml:"project"`
	Targets  []string   `yaml:"targets"`
	Cache    string     `yaml:"cache"`
	BuildDir string     `yaml:"build_dir"`
	Host     HostDTO    `yaml:"host"`
}

// ProjectDTO describes the plugin project being configured.
type ProjectDTO struct {
	Group   string   `yaml:"group"`
	Name    string   `yaml:"name"`
	Version string   `yaml:"version"`
	Plugins []string `yaml:"plugins"`
}

// HostDTO describes how to run the host build tool.
type HostDTO struct {
	Version  string   `yaml:"version"`
	Command  []string `yaml:"command"`
	UserHome string   `yaml:"user_home"`
}
