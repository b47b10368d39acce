package domain

import "slices"

// Well-known host plugin identifiers that change how variants are wired.
const (
	PluginKotlin       = "kotlin"
	PluginTestFixtures = "java-test-fixtures"
	PluginMavenPublish = "maven-publish"
)

// Coordinates identify the published project.
type Coordinates struct {
	Group   string `yaml:"group"`
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// DefaultCapability is the capability a consumer gets when it does not ask for a specific one.
func (c Coordinates) DefaultCapability() Capability {
	return Capability{Group: c.Group, Name: c.Name, Version: c.Version}
}

// CommonCapability identifies the shared code published alongside the variants.
func (c Coordinates) CommonCapability() Capability {
	return Capability{Group: c.Group, Name: c.Name + "-common", Version: c.Version}
}

// Capability is a published identity. Two artifacts with the same capability
// cannot be installed together.
type Capability struct {
	Group   string `yaml:"group"`
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
}

// String returns the capability in group:name[:version] notation.
func (c Capability) String() string {
	s := c.Group + ":" + c.Name
	if c.Version != "" {
		s += ":" + c.Version
	}
	return s
}

// MarshalYAML renders the capability notation.
func (c Capability) MarshalYAML() (any, error) {
	return c.String(), nil
}

// ProjectSpec describes the host project a configuration pass runs against.
type ProjectSpec struct {
	Coordinates Coordinates
	Plugins     []string
	BuildDir    string
}

// HasPlugin reports whether id is applied to the project.
func (p ProjectSpec) HasPlugin(id string) bool {
	return slices.Contains(p.Plugins, id)
}
