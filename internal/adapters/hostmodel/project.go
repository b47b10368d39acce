// Package hostmodel is an in-memory model of the host build's project configuration:
// units, configurations, features, artifacts and the task graph.
package hostmodel

import (
	"slices"
	"sync"

	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/multiapi/internal/core/ports"
	"go.trai.ch/zerr"
)

// Owners of the elements the seeded project starts with.
const (
	ownerJava         = "java"
	ownerPluginDevel  = "java-gradle-plugin"
	ownerTestFixtures = domain.PluginTestFixtures
)

var _ ports.HostProject = (*Project)(nil)

// Project implements ports.HostProject in memory.
type Project struct {
	mu sync.RWMutex

	spec           domain.ProjectSpec
	units          map[string]*domain.Unit
	unitOrder      []string
	configurations map[string]*domain.Configuration
	configOrder    []string
	features       map[string]*domain.Feature
	featureOrder   []string
	artifacts      map[string]*domain.HarnessArtifact
	artifactOrder  []string
	tasks          *domain.Graph
	pomWarnings    bool
}

// NewProject creates a project seeded the way the host's plugin-development
// plugin configures it: main and test units, the ambient host API dependencies
// and the shared test harness task.
func NewProject(spec domain.ProjectSpec) *Project {
	p := &Project{
		spec:           spec,
		units:          make(map[string]*domain.Unit),
		configurations: make(map[string]*domain.Configuration),
		features:       make(map[string]*domain.Feature),
		artifacts:      make(map[string]*domain.HarnessArtifact),
		tasks:          domain.NewGraph(),
		pomWarnings:    spec.HasPlugin(domain.PluginMavenPublish),
	}
	p.seed()
	return p
}

func (p *Project) seed() {
	_ = p.tasks.AddTask(&domain.Task{Name: domain.HarnessTask, Type: domain.HarnessTaskType, Owner: ownerPluginDevel})

	main := p.createUnit(domain.MainUnit, domain.UnitCompilation, ownerJava)
	test := p.createUnit(domain.TestUnit, domain.UnitTest, ownerJava)

	p.configurations[test.ConfigurationName(domain.ScopeImplementation)].ExtendsFrom(main.ConfigurationName(domain.ScopeImplementation))
	p.configurations[test.ConfigurationName(domain.ScopeRuntimeOnly)].ExtendsFrom(main.ConfigurationName(domain.ScopeRuntimeOnly))
	p.configurations[test.ConfigurationName(domain.ScopeImplementation)].AddDependency(domain.OutputDependency(domain.MainUnit))

	p.configurations[main.ConfigurationName(domain.ScopeAPI)].AddDependency(domain.AmbientDependency(domain.AmbientHostAPI))
	p.configurations[test.ConfigurationName(domain.ScopeImplementation)].AddDependency(domain.AmbientDependency(domain.AmbientTestSupport))
	_ = p.tasks.DependOn(domain.TestTask, domain.HarnessTask)

	if p.spec.HasPlugin(domain.PluginTestFixtures) {
		fixtures := p.createUnit(domain.TestFixturesUnit, domain.UnitCompilation, ownerTestFixtures)
		p.configurations[fixtures.ConfigurationName(domain.ScopeAPI)].AddDependency(domain.OutputDependency(domain.MainUnit))
	}
}

// Spec returns the project coordinates and applied plugins.
func (p *Project) Spec() domain.ProjectSpec {
	return p.spec
}

// Unit returns the named unit.
func (p *Project) Unit(name string) (*domain.Unit, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	u, ok := p.units[name]
	return u, ok
}

// CreateUnit creates a unit with its standard configurations. Test units also
// get a test task named after the unit.
func (p *Project) CreateUnit(name string, kind domain.UnitKind, owner string) (*domain.Unit, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if existing, ok := p.units[name]; ok {
		err := zerr.Wrap(domain.ErrFeatureNameCollision, "unit already exists")
		return nil, zerr.With(zerr.With(err, "unit", name), "owner", existing.Owner)
	}
	return p.createUnit(name, kind, owner), nil
}

// createUnit must be called with mu held or during seeding.
func (p *Project) createUnit(name string, kind domain.UnitKind, owner string) *domain.Unit {
	u := &domain.Unit{Name: name, Kind: kind, Owner: owner}
	p.units[name] = u
	p.unitOrder = append(p.unitOrder, name)

	for _, scope := range domain.DeclarableScopes {
		p.ensureConfiguration(u.ConfigurationName(scope))
	}
	p.ensureConfiguration(u.ConfigurationName(domain.ScopeImplementation)).ExtendsFrom(u.ConfigurationName(domain.ScopeAPI))
	p.ensureConfiguration(u.ConfigurationName(domain.ScopeCompileClasspath)).ExtendsFrom(
		u.ConfigurationName(domain.ScopeCompileOnly),
		u.ConfigurationName(domain.ScopeImplementation),
	)
	p.ensureConfiguration(u.ConfigurationName(domain.ScopeRuntimeClasspath)).ExtendsFrom(
		u.ConfigurationName(domain.ScopeRuntimeOnly),
		u.ConfigurationName(domain.ScopeImplementation),
	)

	if kind == domain.UnitTest {
		_ = p.tasks.AddTask(&domain.Task{
			Name:        name,
			Type:        domain.TestTaskType,
			Owner:       owner,
			TestClasses: []string{domain.ClassesDirs(name)},
		})
	}
	return u
}

// Configuration returns the named configuration.
func (p *Project) Configuration(name string) (*domain.Configuration, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok := p.configurations[name]
	return c, ok
}

// EnsureConfiguration returns the named configuration, creating it when absent.
func (p *Project) EnsureConfiguration(name string) *domain.Configuration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ensureConfiguration(name)
}

func (p *Project) ensureConfiguration(name string) *domain.Configuration {
	if c, ok := p.configurations[name]; ok {
		return c
	}
	c := domain.NewConfiguration(name)
	p.configurations[name] = c
	p.configOrder = append(p.configOrder, name)
	return c
}

// Feature returns the named feature.
func (p *Project) Feature(name string) (*domain.Feature, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	f, ok := p.features[name]
	return f, ok
}

// RegisterFeature publishes the feature's unit. The outgoing element
// configurations carry the feature's capabilities and attributes.
// Registering the same feature again is a no-op.
func (p *Project) RegisterFeature(f *domain.Feature) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if existing, ok := p.features[f.Name]; ok {
		if existing.Owner == f.Owner && existing.Unit == f.Unit {
			return nil
		}
		err := zerr.Wrap(domain.ErrFeatureNameCollision, "feature already registered")
		return zerr.With(zerr.With(err, "feature", f.Name), "owner", existing.Owner)
	}

	u, ok := p.units[f.Unit]
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrUnitNotFound, "cannot register feature"), "unit", f.Unit)
	}

	for _, scope := range domain.ElementScopes {
		c := p.ensureConfiguration(u.ConfigurationName(scope))
		c.Capabilities = f.Capabilities()
		for k, v := range f.Attributes {
			c.SetAttribute(k, v)
		}
	}
	p.ensureConfiguration(u.ConfigurationName(domain.ScopeAPIElements)).ExtendsFrom(u.ConfigurationName(domain.ScopeAPI))
	p.ensureConfiguration(u.ConfigurationName(domain.ScopeRuntimeElements)).ExtendsFrom(
		u.ConfigurationName(domain.ScopeImplementation),
		u.ConfigurationName(domain.ScopeRuntimeOnly),
	)

	p.features[f.Name] = f
	p.featureOrder = append(p.featureOrder, f.Name)
	return nil
}

// Task returns the named task.
func (p *Project) Task(name string) (*domain.Task, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tasks.Task(name)
}

// AddTask declares a task.
func (p *Project) AddTask(t *domain.Task) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.AddTask(t)
}

// DependOn orders task after dep.
func (p *Project) DependOn(task, dep string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.DependOn(task, dep)
}

// RegisterArtifact records a harness artifact. Re-registering for the same
// feature replaces the previous declaration.
func (p *Project) RegisterArtifact(a *domain.HarnessArtifact) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if existing, ok := p.artifacts[a.Name]; ok {
		if existing.Feature != a.Feature {
			err := zerr.Wrap(domain.ErrFeatureNameCollision, "artifact already registered")
			return zerr.With(zerr.With(err, "artifact", a.Name), "feature", existing.Feature)
		}
		p.artifacts[a.Name] = a
		return nil
	}
	p.artifacts[a.Name] = a
	p.artifactOrder = append(p.artifactOrder, a.Name)
	return nil
}

// Artifact returns the named harness artifact.
func (p *Project) Artifact(name string) (*domain.HarnessArtifact, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	a, ok := p.artifacts[name]
	return a, ok
}

// SuppressPublicationWarnings silences POM compatibility warnings.
func (p *Project) SuppressPublicationWarnings() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pomWarnings = false
}

// PublicationWarnings reports whether POM compatibility warnings are still emitted.
func (p *Project) PublicationWarnings() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pomWarnings
}

// Dependencies returns every dependency reachable from the configuration through
// its extends-from edges, direct ones first. Duplicates are dropped.
func (p *Project) Dependencies(configuration string) ([]domain.Dependency, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if _, ok := p.configurations[configuration]; !ok {
		return nil, zerr.With(zerr.New("configuration not found"), "configuration", configuration)
	}

	var out []domain.Dependency
	seenDeps := make(map[string]bool)
	visited := make(map[string]bool)
	queue := []string{configuration}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if visited[name] {
			continue
		}
		visited[name] = true

		c, ok := p.configurations[name]
		if !ok {
			continue
		}
		for _, dep := range c.Dependencies {
			if key := dep.Key(); !seenDeps[key] {
				seenDeps[key] = true
				out = append(out, dep)
			}
		}
		queue = append(queue, c.Extends...)
	}
	return out, nil
}

// Validate checks the task graph.
func (p *Project) Validate() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.Validate()
}

// Units returns the unit names in creation order.
func (p *Project) Units() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.unitOrder)
}

// Features returns the feature names in registration order.
func (p *Project) Features() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.featureOrder)
}

// Factory implements ports.HostProjectFactory.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// New creates a seeded in-memory project.
func (f *Factory) New(spec domain.ProjectSpec) ports.HostProject {
	return NewProject(spec)
}
