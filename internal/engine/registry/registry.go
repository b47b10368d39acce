// Package registry keeps the declared target host versions and elects the
// minimum one used as the baseline for shared code.
package registry

import (
	"slices"
	"strings"
	"sync"

	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/multiapi/internal/core/ports"
	"go.trai.ch/zerr"
)

// BundleFunc returns the lazy classpath bundle for a version.
type BundleFunc func(v domain.VersionID) *domain.ClasspathBundle

// Registry owns the targets of one configuration pass, keyed by feature name
// in registration order.
type Registry struct {
	minimum domain.VersionID
	host    domain.VersionID
	bundle  BundleFunc
	logger  ports.Logger

	mu      sync.Mutex
	targets map[string]*domain.Target
	order   []string
	elected *domain.Target
}

// New creates a registry accepting versions in [MinSupportedVersion, host].
func New(host domain.VersionID, bundle BundleFunc, logger ports.Logger) *Registry {
	return &Registry{
		minimum: domain.MustParseVersion(domain.MinSupportedVersion),
		host:    host,
		bundle:  bundle,
		logger:  logger,
		targets: make(map[string]*domain.Target),
	}
}

// Register declares a target version. Registering the same version again
// returns the existing target; a different version with the same feature name
// is a collision. Registration fails once the minimum has been read.
func (r *Registry) Register(version string) (*domain.Target, error) {
	v, err := domain.ParseVersion(version)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateRange(v, r.minimum, r.host); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.elected != nil {
		err := zerr.Wrap(domain.ErrRegistryFrozen, "targets cannot be added after the minimum was computed")
		return nil, zerr.With(zerr.With(err, "version", v.String()), "minimum", r.elected.Version.String())
	}

	name := v.FeatureName()
	if t, ok := r.targets[name]; ok {
		if !t.Version.Equal(v) {
			err := zerr.Wrap(domain.ErrFeatureNameCollision, "versions share a feature name")
			err = zerr.With(err, "feature", name)
			err = zerr.With(err, "version", v.String())
			return nil, zerr.With(err, "registered", t.Version.String())
		}
		return t, nil
	}
	t := domain.NewTarget(v, r.bundle(v))
	r.targets[name] = t
	r.order = append(r.order, name)
	return t, nil
}

// RegisterAll registers every version, stopping at the first failure.
func (r *Registry) RegisterAll(versions []string) ([]*domain.Target, error) {
	targets := make([]*domain.Target, 0, len(versions))
	for _, version := range versions {
		t, err := r.Register(version)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(targets, t) {
			targets = append(targets, t)
		}
	}
	return targets, nil
}

// Minimum returns the target with the oldest version. The result is computed
// on first call and freezes the registry. Ties keep the first registered target.
func (r *Registry) Minimum() (*domain.Target, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.elected != nil {
		return r.elected, nil
	}
	if len(r.order) == 0 {
		return nil, zerr.Wrap(domain.ErrNoTargets, "cannot compute minimum target")
	}

	elected := r.targets[r.order[0]]
	for _, name := range r.order[1:] {
		if t := r.targets[name]; t.Version.Less(elected.Version) {
			elected = t
		}
	}

	if len(r.order) < 2 {
		r.logger.Warn("only " + strings.Join(r.order, ", ") +
			" is targeted; declare at least two versions to build against multiple APIs")
	}
	r.elected = elected
	return elected, nil
}

// Target returns the target registered under the feature name.
func (r *Registry) Target(name string) (*domain.Target, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.targets[name]
	return t, ok
}

// Targets returns the targets in registration order.
func (r *Registry) Targets() []*domain.Target {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Target, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.targets[name])
	}
	return out
}

// Frozen reports whether the minimum has been read.
func (r *Registry) Frozen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.elected != nil
}
