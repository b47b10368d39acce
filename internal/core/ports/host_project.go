package ports

import (
	"io"

	"go.trai.ch/multiapi/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=host_project.go -destination=mocks/mock_host_project.go -package=mocks

// HostProject is the host build's configuration model as seen by the engine.
type HostProject interface {
	// Spec returns the project coordinates and applied plugins.
	Spec() domain.ProjectSpec

	// Unit returns the named compilation or test unit.
	Unit(name string) (*domain.Unit, bool)
	// CreateUnit creates a unit together with its standard configurations.
	CreateUnit(name string, kind domain.UnitKind, owner string) (*domain.Unit, error)

	// Configuration returns the named configuration.
	Configuration(name string) (*domain.Configuration, bool)
	// EnsureConfiguration returns the named configuration, creating it when absent.
	EnsureConfiguration(name string) *domain.Configuration
	// Dependencies returns every dependency reachable from the configuration
	// through its extends-from edges.
	Dependencies(configuration string) ([]domain.Dependency, error)

	// Feature returns the named published feature.
	Feature(name string) (*domain.Feature, bool)
	// RegisterFeature publishes the feature's unit under its capabilities.
	RegisterFeature(f *domain.Feature) error

	// Task returns the named task.
	Task(name string) (*domain.Task, bool)
	// AddTask declares a task.
	AddTask(t *domain.Task) error
	// DependOn orders task after dep.
	DependOn(task, dep string) error

	// RegisterArtifact records a per-variant test harness artifact.
	RegisterArtifact(a *domain.HarnessArtifact) error

	// SuppressPublicationWarnings silences POM compatibility warnings for all publications.
	SuppressPublicationWarnings()

	// Validate checks the task graph for cycles and dangling references.
	Validate() error
	// Render writes a human readable description of the model.
	Render(w io.Writer) error
}

// HostProjectFactory creates host project models.
type HostProjectFactory interface {
	// New creates a host project seeded the way the host's plugin-development
	// plugin leaves it.
	New(spec domain.ProjectSpec) HostProject
}
