package variant_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/multiapi/internal/adapters/hostmodel"
	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/multiapi/internal/core/ports/mocks"
	"go.trai.ch/multiapi/internal/engine/registry"
	"go.trai.ch/multiapi/internal/engine/variant"
	"go.uber.org/mock/gomock"
)

var coordinates = domain.Coordinates{Group: "org.test", Name: "myPlugin", Version: "0.1.0"}

// untouchedBundle fails the test if any of its files are read.
func untouchedBundle(t *testing.T) registry.BundleFunc {
	return func(v domain.VersionID) *domain.ClasspathBundle {
		collection := func(kind domain.ClasspathKind) *domain.FileCollection {
			return domain.NewFileCollection(kind.DisplayName(v), func(context.Context) ([]string, error) {
				t.Errorf("classpath %s of %s was extracted during wiring", kind, v)
				return nil, nil
			})
		}
		return &domain.ClasspathBundle{
			Version:        v,
			CoreAPI:        collection(domain.ClasspathCoreAPI),
			TestSupportAPI: collection(domain.ClasspathTestSupport),
			ScriptingAPI:   collection(domain.ClasspathScripting),
		}
	}
}

func notations(deps []domain.Dependency) []string {
	out := make([]string, 0, len(deps))
	for _, d := range deps {
		out = append(out, d.Notation)
	}
	return out
}

func configure(t *testing.T, ctrl *gomock.Controller, plugins []string, versions ...string) *hostmodel.Project {
	t.Helper()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	project := hostmodel.NewProject(domain.ProjectSpec{Coordinates: coordinates, Plugins: plugins, BuildDir: "/p/build"})
	reg := registry.New(domain.MustParseVersion("8.14"), untouchedBundle(t), logger)
	targets, err := reg.RegisterAll(versions)
	require.NoError(t, err)

	wirer := variant.NewWirer(project, logger)
	require.NoError(t, wirer.ConfigureCommon())
	for _, target := range targets {
		require.NoError(t, wirer.Wire(target))
	}

	minimum, err := reg.Minimum()
	require.NoError(t, err)
	require.NoError(t, variant.NewBaseline(project).Inject(minimum))
	return project
}

func TestWire_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	project := configure(t, ctrl, []string{domain.PluginKotlin, domain.PluginMavenPublish}, "8.13", "7.0", "8.1")

	assert.Equal(t, []string{"main", "gradle813", "gradle70", "gradle81"}, project.Features())

	mainElements, ok := project.Configuration("apiElements")
	require.True(t, ok)
	assert.Equal(t, []domain.Capability{coordinates.CommonCapability()}, mainElements.Capabilities)

	for _, name := range []string{"gradle813", "gradle70", "gradle81"} {
		elements, ok := project.Configuration(name + "RuntimeElements")
		require.True(t, ok)
		assert.Equal(t, []domain.Capability{coordinates.DefaultCapability()}, elements.Capabilities, name)
		assert.Equal(t, domain.UsageJavaRuntime, elements.Attributes[domain.AttributeUsage])
		assert.Equal(t, domain.JvmStandard, elements.Attributes[domain.AttributeJvmEnvironment])
	}

	api, _ := project.Configuration("gradle81ApiElements")
	assert.Equal(t, "8.1", api.Attributes[domain.AttributePluginAPIVersion])
	assert.Equal(t, domain.UsageJavaAPI, api.Attributes[domain.AttributeUsage])
	testClasspath, _ := project.Configuration("gradle81TestRuntimeClasspath")
	assert.Equal(t, "8.1", testClasspath.Attributes[domain.AttributePluginAPIVersion])

	compileOnly, _ := project.Configuration("gradle81CompileOnly")
	assert.Equal(t, []string{"Gradle 8.1 API files", "Gradle 8.1 Kotlin DSL files"}, notations(compileOnly.Dependencies))

	variantAPI, _ := project.Configuration("gradle81Api")
	assert.Contains(t, variantAPI.Extends, "api")
	assert.Equal(t, []string{"project(:) requiring org.test:myPlugin-common"}, notations(variantAPI.Dependencies))

	testImpl, _ := project.Configuration("gradle81TestImplementation")
	assert.Equal(t, []string{"gradle81Implementation", "testImplementation"}, testImpl.Extends[len(testImpl.Extends)-2:])
	assert.ElementsMatch(t, []string{
		"Gradle 8.1 TestKit files", "project(:)", "test.output", "Gradle 8.1 Kotlin DSL files",
	}, notations(testImpl.Dependencies))

	testRuntimeOnly, _ := project.Configuration("gradle81TestRuntimeOnly")
	assert.Equal(t, []string{"pluginUnderTestMetadataGradle81.outputDirectory"}, notations(testRuntimeOnly.Dependencies))

	artifact, ok := project.Artifact("pluginUnderTestMetadataGradle81")
	require.True(t, ok)
	assert.Equal(t, "/p/build/pluginUnderTestMetadataGradle81", artifact.OutputDir)
	assert.Equal(t, []string{"pluginUnderTestMetadata.pluginClasspath", "gradle81.output"}, notations(artifact.Layers))

	test, _ := project.Task(domain.TestTask)
	assert.True(t, test.Disabled)
	assert.Equal(t, []string{domain.HarnessTask, "gradle813Test", "gradle70Test", "gradle81Test"}, test.Dependencies)
	harness, _ := project.Task(domain.HarnessTask)
	assert.True(t, harness.Disabled)
	variantTest, _ := project.Task("gradle81Test")
	assert.Equal(t, []string{"pluginUnderTestMetadataGradle81"}, variantTest.Dependencies)
	assert.Equal(t, []string{"gradle81Test.output.classesDirs", "test.output.classesDirs"}, variantTest.TestClasses)

	assert.False(t, project.PublicationWarnings())

	var out bytes.Buffer
	require.NoError(t, project.Render(&out))
	assert.Contains(t, out.String(), "org.test:myPlugin-common:0.1.0")
	assert.Contains(t, out.String(), "- test.output.classesDirs")
}

func TestBaseline_UsesMinimumTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	project := configure(t, ctrl, []string{domain.PluginKotlin, domain.PluginTestFixtures}, "8.13", "7.0", "8.1")

	hostAPI, ok := project.Configuration("compileOnlyGradleApi")
	require.True(t, ok)
	assert.Equal(t, []string{"Gradle 7.0 API files", "Gradle 7.0 Kotlin DSL files"}, notations(hostAPI.Dependencies))

	testHostAPI, ok := project.Configuration("testCompileOnlyGradleApi")
	require.True(t, ok)
	assert.Equal(t, []string{"Gradle 7.0 TestKit files"}, notations(testHostAPI.Dependencies))
	assert.Equal(t, []string{"compileOnlyGradleApi"}, testHostAPI.Extends)

	fixtures, _ := project.Configuration("testFixturesCompileOnly")
	assert.Contains(t, fixtures.Extends, "testCompileOnlyGradleApi")

	mainClasspath, err := project.Dependencies("compileClasspath")
	require.NoError(t, err)
	assert.Contains(t, notations(mainClasspath), "Gradle 7.0 API files")
	assert.NotContains(t, notations(mainClasspath), domain.AmbientHostAPI)

	testClasspath, err := project.Dependencies("testCompileClasspath")
	require.NoError(t, err)
	assert.Contains(t, notations(testClasspath), "Gradle 7.0 TestKit files")
	assert.Contains(t, notations(testClasspath), "Gradle 7.0 API files")
	assert.NotContains(t, notations(testClasspath), domain.AmbientTestSupport)
	assert.NotContains(t, notations(testClasspath), domain.AmbientHostAPI)
}

func TestBaseline_WithoutKotlin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	project := configure(t, ctrl, nil, "8.1", "8.13")

	hostAPI, _ := project.Configuration("compileOnlyGradleApi")
	assert.Equal(t, []string{"Gradle 8.1 API files"}, notations(hostAPI.Dependencies))

	compileOnly, _ := project.Configuration("gradle813CompileOnly")
	assert.Equal(t, []string{"Gradle 8.13 API files"}, notations(compileOnly.Dependencies))
}

func TestBaseline_RemovalIsBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := mocks.NewMockLogger(ctrl)
	project := hostmodel.NewProject(domain.ProjectSpec{Coordinates: coordinates})
	api, _ := project.Configuration("api")
	api.RemoveDependency(domain.AmbientDependency(domain.AmbientHostAPI))

	reg := registry.New(domain.MustParseVersion("8.14"), untouchedBundle(t), logger)
	target, err := reg.Register("8.0")
	require.NoError(t, err)

	baseline := variant.NewBaseline(project)
	require.NoError(t, baseline.Inject(target))
	require.NoError(t, baseline.Inject(target))

	hostAPI, _ := project.Configuration("compileOnlyGradleApi")
	assert.Len(t, hostAPI.Dependencies, 1)
}

func TestWire_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	project := hostmodel.NewProject(domain.ProjectSpec{Coordinates: coordinates, BuildDir: "/p/build"})
	reg := registry.New(domain.MustParseVersion("8.14"), untouchedBundle(t), logger)
	target, err := reg.Register("8.13")
	require.NoError(t, err)

	wirer := variant.NewWirer(project, logger)
	require.NoError(t, wirer.Wire(target))
	require.NoError(t, wirer.Wire(target))

	compileOnly, _ := project.Configuration("gradle813CompileOnly")
	assert.Len(t, compileOnly.Dependencies, 1)
	variantTest, _ := project.Task("gradle813Test")
	assert.Len(t, variantTest.TestClasses, 2)
	require.NoError(t, project.Validate())
}

func TestWire_Collisions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, p *hostmodel.Project)
	}{
		{
			name: "foreign feature",
			setup: func(t *testing.T, p *hostmodel.Project) {
				_, err := p.CreateUnit("gradle81", domain.UnitCompilation, "java")
				require.NoError(t, err)
				require.NoError(t, p.RegisterFeature(domain.NewFeature("gradle81", "gradle81", "someone-else", nil)))
			},
		},
		{
			name: "unit of another kind",
			setup: func(t *testing.T, p *hostmodel.Project) {
				_, err := p.CreateUnit("gradle81", domain.UnitTest, "jvm-test-suite")
				require.NoError(t, err)
			},
		},
		{
			name: "foreign harness task",
			setup: func(t *testing.T, p *hostmodel.Project) {
				require.NoError(t, p.AddTask(&domain.Task{Name: "pluginUnderTestMetadataGradle81", Owner: "build-logic"}))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logger := mocks.NewMockLogger(ctrl)
			project := hostmodel.NewProject(domain.ProjectSpec{Coordinates: coordinates})
			tt.setup(t, project)

			reg := registry.New(domain.MustParseVersion("8.14"), untouchedBundle(t), logger)
			target, err := reg.Register("8.1")
			require.NoError(t, err)

			err = variant.NewWirer(project, logger).Wire(target)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrFeatureNameCollision))
		})
	}
}

func TestWire_CollisionLeavesProjectUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	project := mocks.NewMockHostProject(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	foreign := domain.NewFeature("gradle90", "gradle90", "someone-else", nil)
	project.EXPECT().Feature("gradle90").Return(foreign, true).Times(1)

	target := domain.NewTarget(domain.MustParseVersion("9.0"), untouchedBundle(t)(domain.MustParseVersion("9.0")))
	err := variant.NewWirer(project, logger).Wire(target)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFeatureNameCollision))
}

func TestConfigureCommon_MissingTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	project := mocks.NewMockHostProject(ctrl)
	project.EXPECT().Spec().Return(domain.ProjectSpec{Coordinates: coordinates}).AnyTimes()
	project.EXPECT().RegisterFeature(gomock.Any()).Return(nil).Times(1)
	project.EXPECT().Task(domain.HarnessTask).Return(nil, false).Times(1)

	err := variant.NewWirer(project, mocks.NewMockLogger(ctrl)).ConfigureCommon()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTaskNotFound))
}
