// Package app implements the application layer for multiapi.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/multiapi/internal/core/ports"
	"go.trai.ch/multiapi/internal/engine/classpath"
	"go.trai.ch/multiapi/internal/engine/registry"
	"go.trai.ch/multiapi/internal/engine/variant"
	"go.trai.ch/zerr"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       ports.ToolRunner
	projects     ports.HostProjectFactory
	caches       *classpath.Factory
	logger       ports.Logger
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	runner ports.ToolRunner,
	projects ports.HostProjectFactory,
	caches *classpath.Factory,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		projects:     projects,
		caches:       caches,
		logger:       logger,
		out:          os.Stdout,
	}
}

// WithOutput sets the writer results are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// PlanOptions configure a plan run.
type PlanOptions struct {
	ConfigPath string
	// Resolve materializes every classpath before rendering.
	Resolve bool
	// Rerun ignores valid cache entries.
	Rerun bool
}

// ResolveOptions configure a resolve run.
type ResolveOptions struct {
	ConfigPath string
	// Versions to resolve. Empty means every configured target.
	Versions []string
	Rerun    bool
}

// session is the state of one configuration pass.
type session struct {
	cfg      *domain.Config
	cache    *classpath.Cache
	registry *registry.Registry
	targets  []*domain.Target
}

// Plan configures every target variant into a fresh host model and prints it.
// Nothing is printed when any step fails.
func (a *App) Plan(ctx context.Context, opts PlanOptions) error {
	s, err := a.open(ctx, opts.ConfigPath, opts.Rerun, nil)
	if err != nil {
		return err
	}

	project, err := a.configure(s)
	if err != nil {
		return zerr.Wrap(err, "failed to configure variants")
	}

	if opts.Resolve {
		if _, err := s.cache.ResolveAll(ctx, versionsOf(s.targets)); err != nil {
			return err
		}
	}

	return project.Render(a.out)
}

// Resolve materializes the classpaths of the given versions and prints where
// their manifests live.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) error {
	s, err := a.open(ctx, opts.ConfigPath, opts.Rerun, opts.Versions)
	if err != nil {
		return err
	}

	versions := versionsOf(s.targets)
	if _, err := s.cache.ResolveAll(ctx, versions); err != nil {
		return err
	}

	for _, v := range versions {
		dir, err := s.cache.EntryDir(v)
		if err != nil {
			return err
		}
		outcome, _ := s.cache.Outcome(v)
		_, _ = fmt.Fprintf(a.out, "%s\t%s\t%s\n", v, outcome, dir)
	}
	return nil
}

// Clean removes the project-local cache and scratch directories.
func (a *App) Clean(_ context.Context, configPath string) error {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	for _, dir := range classpath.ProjectDirs(cfg.Project.BuildDir) {
		if err := os.RemoveAll(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove directory"), "path", dir)
		}
		a.logger.Info("removed " + dir)
	}
	return nil
}

// open loads the configuration and registers the targets. When versions is
// empty the configured targets are used, or the running host version when
// none are configured.
func (a *App) open(ctx context.Context, configPath string, rerun bool, versions []string) (*session, error) {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	host, err := a.hostVersion(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cache := a.caches.New(classpath.Options{
		BuildDir: cfg.Project.BuildDir,
		UserHome: cfg.Host.UserHome,
		Command:  cfg.Host.Command,
	})
	if cfg.CachePolicy != "" {
		if err := cache.SetPolicy(cfg.CachePolicy); err != nil {
			return nil, err
		}
	}
	cache.SetForceRebuild(rerun)

	if len(versions) == 0 {
		versions = cfg.Targets
	}
	if len(versions) == 0 {
		versions = []string{host.String()}
	}

	reg := registry.New(host, cache.Bundle, a.logger)
	targets, err := reg.RegisterAll(versions)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to register targets")
	}

	return &session{cfg: cfg, cache: cache, registry: reg, targets: targets}, nil
}

// configure wires the session's targets into a new host project.
func (a *App) configure(s *session) (ports.HostProject, error) {
	project := a.projects.New(s.cfg.Project)

	wirer := variant.NewWirer(project, a.logger)
	for _, target := range s.targets {
		if err := wirer.Check(target); err != nil {
			return nil, err
		}
	}
	if err := wirer.ConfigureCommon(); err != nil {
		return nil, err
	}
	for _, target := range s.targets {
		if err := wirer.Wire(target); err != nil {
			return nil, err
		}
	}

	minimum, err := s.registry.Minimum()
	if err != nil {
		return nil, err
	}
	if err := variant.NewBaseline(project).Inject(minimum); err != nil {
		return nil, err
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}
	return project, nil
}

func (a *App) hostVersion(ctx context.Context, cfg *domain.Config) (domain.VersionID, error) {
	raw := cfg.Host.Version
	if raw == "" {
		probed, err := a.runner.HostVersion(ctx, cfg.Host.Command)
		if err != nil {
			return domain.VersionID{}, err
		}
		raw = probed
	}

	v, err := domain.ParseVersion(raw)
	if err != nil {
		return domain.VersionID{}, zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrHostVersionUnknown, err), "invalid host version")
	}
	return v, nil
}

func versionsOf(targets []*domain.Target) []domain.VersionID {
	out := make([]domain.VersionID, 0, len(targets))
	for _, t := range targets {
		out = append(out, t.Version)
	}
	return out
}
