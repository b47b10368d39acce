package variant

import (
	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/multiapi/internal/core/ports"
	"go.trai.ch/zerr"
)

// Baseline compiles the common and shared test units against the oldest
// targeted host API instead of the running one.
type Baseline struct {
	project ports.HostProject
}

// NewBaseline creates a Baseline for project.
func NewBaseline(project ports.HostProject) *Baseline {
	return &Baseline{project: project}
}

// Inject adds the minimum target's classpaths to the baseline scopes and
// removes the ambient host dependencies. Removal is best effort.
func (b *Baseline) Inject(minimum *domain.Target) error {
	if minimum == nil {
		return zerr.Wrap(domain.ErrNoTargets, "cannot inject baseline")
	}
	spec := b.project.Spec()
	main := &domain.Unit{Name: domain.MainUnit}
	test := &domain.Unit{Name: domain.TestUnit}

	hostAPI := b.project.EnsureConfiguration(main.ConfigurationName(domain.ScopeHostAPI))
	testHostAPI := b.project.EnsureConfiguration(test.ConfigurationName(domain.ScopeHostAPI))
	testHostAPI.ExtendsFrom(hostAPI.Name)

	b.project.EnsureConfiguration(main.ConfigurationName(domain.ScopeCompileClasspath)).ExtendsFrom(hostAPI.Name)
	b.project.EnsureConfiguration(test.ConfigurationName(domain.ScopeCompileClasspath)).ExtendsFrom(testHostAPI.Name)
	if spec.HasPlugin(domain.PluginTestFixtures) {
		fixtures := &domain.Unit{Name: domain.TestFixturesUnit}
		b.project.EnsureConfiguration(fixtures.ConfigurationName(domain.ScopeCompileOnly)).ExtendsFrom(testHostAPI.Name)
	}

	bundle := minimum.Classpath
	hostAPI.AddDependency(domain.FilesDependency(bundle.CoreAPI))
	if spec.HasPlugin(domain.PluginKotlin) {
		hostAPI.AddDependency(domain.FilesDependency(bundle.ScriptingAPI))
	}
	testHostAPI.AddDependency(domain.FilesDependency(bundle.TestSupportAPI))

	b.removeAmbient(main, domain.AmbientHostAPI,
		domain.ScopeAPI, domain.ScopeImplementation, domain.ScopeCompileOnly)
	b.removeAmbient(test, domain.AmbientTestSupport,
		domain.ScopeImplementation, domain.ScopeCompileOnly)
	return nil
}

func (b *Baseline) removeAmbient(unit *domain.Unit, notation string, scopes ...domain.Scope) {
	dep := domain.AmbientDependency(notation)
	for _, scope := range scopes {
		if c, ok := b.project.Configuration(unit.ConfigurationName(scope)); ok {
			c.RemoveDependency(dep)
		}
	}
}
