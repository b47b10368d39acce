// Package variant wires one compilation unit, test suite and published feature
// per target host version into the host project.
package variant

import (
	"path/filepath"

	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/multiapi/internal/core/ports"
	"go.trai.ch/zerr"
)

// projectPath is how the project refers to itself in dependency notations.
const projectPath = ":"

// Harness task properties wired into classpaths.
const (
	harnessClasspath = "pluginClasspath"
	harnessOutput    = "outputDirectory"
)

// Wirer configures the host project for multiple host API variants.
type Wirer struct {
	project ports.HostProject
	logger  ports.Logger
}

// NewWirer creates a Wirer for project.
func NewWirer(project ports.HostProject, logger ports.Logger) *Wirer {
	return &Wirer{project: project, logger: logger}
}

// ConfigureCommon publishes the main unit as the common feature and turns the
// shared test entry points into aggregators of the variant suites.
func (w *Wirer) ConfigureCommon() error {
	spec := w.project.Spec()

	common := domain.NewFeature(domain.MainUnit, domain.MainUnit, domain.Owner, nil,
		spec.Coordinates.CommonCapability())
	if err := w.project.RegisterFeature(common); err != nil {
		return err
	}

	for _, name := range []string{domain.HarnessTask, domain.TestTask} {
		t, ok := w.project.Task(name)
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "host project is missing a standard task"), "task_name", name)
		}
		t.Disabled = true
	}

	if spec.HasPlugin(domain.PluginMavenPublish) {
		w.project.SuppressPublicationWarnings()
	}
	return nil
}

// Check fails with ErrFeatureNameCollision when the names target derives are
// taken by something this engine does not own. It touches no classpath.
func (w *Wirer) Check(target *domain.Target) error {
	if f, ok := w.project.Feature(target.FeatureName()); ok && f.Owner != domain.Owner {
		return collision(target, "feature", f.Name, f.Owner)
	}
	units := []struct {
		name string
		kind domain.UnitKind
	}{
		{target.CompilationUnit(), domain.UnitCompilation},
		{target.TestUnit(), domain.UnitTest},
	}
	for _, u := range units {
		if existing, ok := w.project.Unit(u.name); ok && existing.Kind != u.kind {
			return collision(target, "unit", existing.Name, existing.Owner)
		}
	}
	if t, ok := w.project.Task(target.HarnessTask()); ok && t.Owner != domain.Owner {
		return collision(target, "task", t.Name, t.Owner)
	}
	return nil
}

func collision(target *domain.Target, what, name, owner string) error {
	err := zerr.Wrap(domain.ErrFeatureNameCollision, what+" name already taken")
	err = zerr.With(err, "feature", target.FeatureName())
	err = zerr.With(err, what, name)
	return zerr.With(err, "owner", owner)
}

// Wire adds the variant for target. Wiring the same target again is a no-op
// for everything already present.
func (w *Wirer) Wire(target *domain.Target) error {
	if err := w.Check(target); err != nil {
		return err
	}

	unit, err := w.ensureUnit(target.CompilationUnit(), domain.UnitCompilation)
	if err != nil {
		return err
	}
	suite, err := w.ensureUnit(target.TestUnit(), domain.UnitTest)
	if err != nil {
		return err
	}

	if err := w.publish(target, unit); err != nil {
		return err
	}
	w.setAPIVersion(target, unit, suite)
	w.extendCommon(unit, suite)

	if err := w.registerHarness(target, unit, suite); err != nil {
		return err
	}
	w.addDependencies(target, unit, suite)

	if err := w.project.DependOn(domain.TestTask, suite.Name); err != nil {
		return err
	}
	if err := w.runSharedTests(suite); err != nil {
		return err
	}
	w.logger.Info("wired " + target.FeatureName() + " against Gradle " + target.Version.String())
	return nil
}

// runSharedTests makes the variant test task also run the shared test classes.
func (w *Wirer) runSharedTests(suite *domain.Unit) error {
	task, ok := w.project.Task(suite.Name)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "variant test task was not created"), "task_name", suite.Name)
	}
	task.AddTestClasses(domain.ClassesDirs(suite.Name), domain.ClassesDirs(domain.TestUnit))
	return nil
}

func (w *Wirer) ensureUnit(name string, kind domain.UnitKind) (*domain.Unit, error) {
	if u, ok := w.project.Unit(name); ok {
		return u, nil
	}
	return w.project.CreateUnit(name, kind, domain.Owner)
}

// publish registers the variant feature under the project's default capability.
func (w *Wirer) publish(target *domain.Target, unit *domain.Unit) error {
	attributes := map[string]string{domain.AttributePluginAPIVersion: target.Version.String()}
	f := domain.NewFeature(target.FeatureName(), unit.Name, domain.Owner, attributes,
		w.project.Spec().Coordinates.DefaultCapability())
	if err := w.project.RegisterFeature(f); err != nil {
		return err
	}

	standardJVM := func(scope domain.Scope, usage string) {
		c := w.conf(unit.ConfigurationName(scope))
		c.SetAttribute(domain.AttributeUsage, usage)
		c.SetAttribute(domain.AttributeJvmEnvironment, domain.JvmStandard)
	}
	standardJVM(domain.ScopeAPIElements, domain.UsageJavaAPI)
	standardJVM(domain.ScopeRuntimeElements, domain.UsageJavaRuntime)
	return nil
}

// setAPIVersion marks every resolvable or consumable configuration of the
// variant with its host API version.
func (w *Wirer) setAPIVersion(target *domain.Target, unit, suite *domain.Unit) {
	var names []string
	for _, scope := range domain.ResolvableScopes {
		names = append(names, unit.ConfigurationName(scope), suite.ConfigurationName(scope))
	}
	for _, scope := range domain.ElementScopes {
		names = append(names, unit.ConfigurationName(scope))
	}
	for _, name := range names {
		w.conf(name).SetAttribute(domain.AttributePluginAPIVersion, target.Version.String())
	}
}

func (w *Wirer) extendCommon(unit, suite *domain.Unit) {
	main := &domain.Unit{Name: domain.MainUnit}
	test := &domain.Unit{Name: domain.TestUnit}

	for _, scope := range []domain.Scope{
		domain.ScopeAPI, domain.ScopeImplementation, domain.ScopeRuntimeOnly, domain.ScopeAnnotationProcessor,
	} {
		w.conf(unit.ConfigurationName(scope)).ExtendsFrom(main.ConfigurationName(scope))
	}

	w.conf(suite.ConfigurationName(domain.ScopeImplementation)).ExtendsFrom(
		unit.ConfigurationName(domain.ScopeImplementation),
		test.ConfigurationName(domain.ScopeImplementation),
	)
	w.conf(suite.ConfigurationName(domain.ScopeRuntimeOnly)).ExtendsFrom(
		unit.ConfigurationName(domain.ScopeRuntimeOnly),
		test.ConfigurationName(domain.ScopeRuntimeOnly),
	)
	w.conf(suite.ConfigurationName(domain.ScopeAnnotationProcessor)).ExtendsFrom(
		test.ConfigurationName(domain.ScopeAnnotationProcessor),
	)
}

// registerHarness declares the per-variant plugin-under-test metadata: the
// shared harness classpath plus the variant's own output.
func (w *Wirer) registerHarness(target *domain.Target, unit, suite *domain.Unit) error {
	name := target.HarnessTask()
	if _, ok := w.project.Task(name); !ok {
		task := &domain.Task{Name: name, Type: domain.HarnessTaskType, Owner: domain.Owner}
		if err := w.project.AddTask(task); err != nil {
			return err
		}
	}
	if err := w.project.DependOn(suite.Name, name); err != nil {
		return err
	}

	return w.project.RegisterArtifact(&domain.HarnessArtifact{
		Name:      name,
		Feature:   target.FeatureName(),
		OutputDir: filepath.Join(w.project.Spec().BuildDir, name),
		Layers: []domain.Dependency{
			domain.TaskOutputDependency(domain.HarnessTask, harnessClasspath),
			domain.OutputDependency(unit.Name),
		},
	})
}

func (w *Wirer) addDependencies(target *domain.Target, unit, suite *domain.Unit) {
	spec := w.project.Spec()
	common := spec.Coordinates.CommonCapability()
	bundle := target.Classpath

	compileOnly := w.conf(unit.ConfigurationName(domain.ScopeCompileOnly))
	compileOnly.AddDependency(domain.FilesDependency(bundle.CoreAPI))
	w.conf(unit.ConfigurationName(domain.ScopeAPI)).AddDependency(domain.ProjectDependency(projectPath, &common))

	testImpl := w.conf(suite.ConfigurationName(domain.ScopeImplementation))
	testImpl.AddDependency(domain.FilesDependency(bundle.TestSupportAPI))
	testImpl.AddDependency(domain.ProjectDependency(projectPath, nil))
	testImpl.AddDependency(domain.OutputDependency(domain.TestUnit))
	w.conf(suite.ConfigurationName(domain.ScopeRuntimeOnly)).AddDependency(
		domain.TaskOutputDependency(target.HarnessTask(), harnessOutput))

	if spec.HasPlugin(domain.PluginKotlin) {
		compileOnly.AddDependency(domain.FilesDependency(bundle.ScriptingAPI))
		testImpl.AddDependency(domain.FilesDependency(bundle.ScriptingAPI))
	}
}

func (w *Wirer) conf(name string) *domain.Configuration {
	return w.project.EnsureConfiguration(name)
}
