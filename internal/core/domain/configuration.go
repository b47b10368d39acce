package domain

import (
	"maps"
	"slices"
	"strings"
)

// Scope is the role a configuration plays for a unit.
type Scope string

// Scopes every unit gets from the host's java plugin, plus the baseline scope.
const (
	ScopeAPI                 Scope = "api"
	ScopeImplementation      Scope = "implementation"
	ScopeCompileOnly         Scope = "compileOnly"
	ScopeRuntimeOnly         Scope = "runtimeOnly"
	ScopeAnnotationProcessor Scope = "annotationProcessor"
	ScopeCompileClasspath    Scope = "compileClasspath"
	ScopeRuntimeClasspath    Scope = "runtimeClasspath"
	ScopeAPIElements         Scope = "apiElements"
	ScopeRuntimeElements     Scope = "runtimeElements"
	ScopeSourcesElements     Scope = "sourcesElements"
	ScopeJavadocElements     Scope = "javadocElements"

	// ScopeHostAPI holds the baseline host API used to compile shared code.
	ScopeHostAPI Scope = "compileOnlyGradleApi"
)

// DeclarableScopes are the scopes dependencies are declared on.
var DeclarableScopes = []Scope{
	ScopeAPI, ScopeImplementation, ScopeCompileOnly, ScopeRuntimeOnly, ScopeAnnotationProcessor,
}

// ResolvableScopes are the scopes resolved into classpaths.
var ResolvableScopes = []Scope{ScopeCompileClasspath, ScopeRuntimeClasspath}

// ElementScopes are the outgoing scopes a published feature is made of.
var ElementScopes = []Scope{
	ScopeAPIElements, ScopeRuntimeElements, ScopeSourcesElements, ScopeJavadocElements,
}

// Attribute keys understood by the host's variant matching.
const (
	AttributePluginAPIVersion = "org.gradle.plugin.api-version"
	AttributeUsage            = "org.gradle.usage"
	AttributeJvmEnvironment   = "org.gradle.jvm.environment"

	UsageJavaAPI     = "java-api"
	UsageJavaRuntime = "java-runtime"
	JvmStandard      = "standard-jvm"
)

// DependencyKind classifies a declared dependency.
type DependencyKind string

const (
	// DependencyFiles is a file collection such as an extracted classpath.
	DependencyFiles DependencyKind = "files"
	// DependencyProject points at the project itself, optionally through a capability.
	DependencyProject DependencyKind = "project"
	// DependencyUnitOutput is the compiled output of another unit.
	DependencyUnitOutput DependencyKind = "output"
	// DependencyAmbient is injected by the host for its own running version.
	DependencyAmbient DependencyKind = "ambient"
	// DependencyTaskOutput is a file property produced by a task.
	DependencyTaskOutput DependencyKind = "task"
)

// Ambient dependency notations the host injects.
const (
	AmbientHostAPI     = "gradleApi()"
	AmbientTestSupport = "gradleTestKit()"
)

// Dependency is one entry declared on a configuration.
type Dependency struct {
	Kind       DependencyKind
	Notation   string
	Files      *FileCollection
	Capability *Capability
}

// Key identifies the dependency inside one configuration.
func (d Dependency) Key() string {
	return string(d.Kind) + ":" + d.Notation
}

// FilesDependency wraps a file collection.
func FilesDependency(c *FileCollection) Dependency {
	return Dependency{Kind: DependencyFiles, Notation: c.DisplayName(), Files: c}
}

// ProjectDependency targets the current project, optionally requiring a capability.
func ProjectDependency(path string, required *Capability) Dependency {
	notation := "project(" + path + ")"
	if required != nil {
		notation += " requiring " + required.Group + ":" + required.Name
	}
	return Dependency{Kind: DependencyProject, Notation: notation, Capability: required}
}

// OutputDependency refers to the compiled output of unit.
func OutputDependency(unit string) Dependency {
	return Dependency{Kind: DependencyUnitOutput, Notation: unit + ".output"}
}

// TaskOutputDependency refers to the files a task produces under property.
func TaskOutputDependency(task, property string) Dependency {
	return Dependency{Kind: DependencyTaskOutput, Notation: task + "." + property}
}

// AmbientDependency is the dependency the host injects for its running version.
func AmbientDependency(notation string) Dependency {
	return Dependency{Kind: DependencyAmbient, Notation: notation}
}

// Configuration is a named bucket of dependencies, the host's unit of classpath wiring.
type Configuration struct {
	Name         string
	Dependencies []Dependency
	Extends      []string
	Attributes   map[string]string
	Capabilities []Capability
}

// NewConfiguration creates an empty configuration.
func NewConfiguration(name string) *Configuration {
	return &Configuration{Name: name, Attributes: make(map[string]string)}
}

// AddDependency declares dep unless an equal one is already present.
func (c *Configuration) AddDependency(dep Dependency) {
	key := dep.Key()
	if slices.ContainsFunc(c.Dependencies, func(d Dependency) bool { return d.Key() == key }) {
		return
	}
	c.Dependencies = append(c.Dependencies, dep)
}

// RemoveDependency drops dep and reports whether it was present.
func (c *Configuration) RemoveDependency(dep Dependency) bool {
	key := dep.Key()
	before := len(c.Dependencies)
	c.Dependencies = slices.DeleteFunc(c.Dependencies, func(d Dependency) bool { return d.Key() == key })
	return len(c.Dependencies) != before
}

// HasDependency reports whether dep is declared directly on c.
func (c *Configuration) HasDependency(dep Dependency) bool {
	key := dep.Key()
	return slices.ContainsFunc(c.Dependencies, func(d Dependency) bool { return d.Key() == key })
}

// ExtendsFrom makes c inherit the dependencies of parents.
func (c *Configuration) ExtendsFrom(parents ...string) {
	for _, p := range parents {
		if p == c.Name || slices.Contains(c.Extends, p) {
			continue
		}
		c.Extends = append(c.Extends, p)
	}
}

// SetAttribute sets an attribute used for variant matching.
func (c *Configuration) SetAttribute(key, value string) {
	c.Attributes[key] = value
}

// AttributeKeys returns the attribute keys in sorted order.
func (c *Configuration) AttributeKeys() []string {
	return slices.Sorted(maps.Keys(c.Attributes))
}

// ConfigurationName derives the host's configuration name for unit and scope.
// The main unit uses the bare scope name, every other unit prefixes its own name.
func ConfigurationName(unit string, scope Scope) string {
	if unit == MainUnit {
		return string(scope)
	}
	return unit + upperFirst(string(scope))
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
