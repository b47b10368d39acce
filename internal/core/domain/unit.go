package domain

import "slices"

// Names of the units the host's java plugin creates.
const (
	MainUnit         = "main"
	TestUnit         = "test"
	TestFixturesUnit = "testFixtures"
)

// Owner tags units, features and tasks created by this engine.
const Owner = "multiapi"

// UnitKind distinguishes production sources from test suites.
type UnitKind string

const (
	// UnitCompilation is a production source set.
	UnitCompilation UnitKind = "compilation"
	// UnitTest is a test suite source set.
	UnitTest UnitKind = "test"
)

// Unit is a compilation or test unit (a host source set).
type Unit struct {
	Name  string
	Kind  UnitKind
	Owner string
}

// ConfigurationName returns the host configuration backing scope for this unit.
func (u *Unit) ConfigurationName(scope Scope) string {
	return ConfigurationName(u.Name, scope)
}

// Feature is an independently publishable part of the project.
// Its capabilities are fixed at construction.
type Feature struct {
	Name         string
	Unit         string
	Owner        string
	Attributes   map[string]string
	capabilities []Capability
}

// NewFeature creates a feature publishing unit under the given capabilities.
func NewFeature(name, unit, owner string, attributes map[string]string, capabilities ...Capability) *Feature {
	if attributes == nil {
		attributes = make(map[string]string)
	}
	return &Feature{
		Name:         name,
		Unit:         unit,
		Owner:        owner,
		Attributes:   attributes,
		capabilities: slices.Clone(capabilities),
	}
}

// Capabilities returns a copy of the published capabilities.
func (f *Feature) Capabilities() []Capability {
	return slices.Clone(f.capabilities)
}

// HarnessArtifact is the per-variant test harness classpath: the shared harness
// layer plus the variant's compiled output.
type HarnessArtifact struct {
	Name      string
	Feature   string
	OutputDir string
	Layers    []Dependency
}
