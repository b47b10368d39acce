// Package classpath materializes the host API, test kit and scripting DSL
// classpaths of arbitrary host versions and caches them on disk.
package classpath

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"

	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/multiapi/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Options locate the cache for one project.
type Options struct {
	// BuildDir is the project's build output directory.
	BuildDir string
	// UserHome overrides the host tool's user home.
	UserHome string
	// Command launches the host tool.
	Command []string
}

// Cache resolves classpath bundles per host version.
// Each version is extracted at most once per process, even under concurrent access.
type Cache struct {
	opts      Options
	runner    ports.ToolRunner
	verifier  ports.Verifier
	hasher    ports.Hasher
	store     ports.CacheRecordStore
	telemetry ports.Telemetry
	logger    ports.Logger

	mu           sync.Mutex
	policy       domain.CachePolicy
	finalized    bool
	forceRebuild bool
	layout       *layout
	bundles      map[string]*domain.ClasspathBundle
	entries      map[string]string
	outcomes     map[string]domain.ExtractionOutcome

	flight singleflight.Group
}

// New creates a Cache using the shared policy unless SetPolicy says otherwise.
func New(
	opts Options,
	runner ports.ToolRunner,
	verifier ports.Verifier,
	hasher ports.Hasher,
	store ports.CacheRecordStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Cache {
	if len(opts.Command) == 0 {
		opts.Command = domain.DefaultHostCommand
	}
	return &Cache{
		opts:      opts,
		runner:    runner,
		verifier:  verifier,
		hasher:    hasher,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
		policy:    domain.CachePolicyShared,
		bundles:   make(map[string]*domain.ClasspathBundle),
		entries:   make(map[string]string),
		outcomes:  make(map[string]domain.ExtractionOutcome),
	}
}

// SetPolicy selects the cache policy. It may be called once, and only before
// the first resolution.
func (c *Cache) SetPolicy(policy domain.CachePolicy) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.finalized {
		err := zerr.Wrap(domain.ErrCachePolicyFinalized, "cannot change cache policy")
		return zerr.With(zerr.With(err, "policy", string(c.policy)), "requested", string(policy))
	}
	c.policy = policy
	c.finalized = true
	return nil
}

// Policy returns the current cache policy.
func (c *Cache) Policy() domain.CachePolicy {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.policy
}

// SetForceRebuild makes the next materialization of every version re-run the
// extraction, ignoring valid entries.
func (c *Cache) SetForceRebuild(force bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forceRebuild = force
}

// EntryDir returns the cache entry directory for v. It finalizes the policy.
func (c *Cache) EntryDir(v domain.VersionID) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, err := c.freeze()
	if err != nil {
		return "", err
	}
	return l.entryDir(v), nil
}

// Bundle returns the lazy bundle for v. Nothing is extracted until one of its
// collections is read.
func (c *Cache) Bundle(v domain.VersionID) *domain.ClasspathBundle {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b, ok := c.bundles[v.String()]; ok {
		return b
	}
	b := &domain.ClasspathBundle{
		Version:        v,
		CoreAPI:        c.collection(v, domain.ClasspathCoreAPI),
		TestSupportAPI: c.collection(v, domain.ClasspathTestSupport),
		ScriptingAPI:   c.collection(v, domain.ClasspathScripting),
	}
	c.bundles[v.String()] = b
	return b
}

func (c *Cache) collection(v domain.VersionID, kind domain.ClasspathKind) *domain.FileCollection {
	return domain.NewFileCollection(kind.DisplayName(v), func(ctx context.Context) ([]string, error) {
		dir, err := c.materialize(ctx, v)
		if err != nil {
			return nil, err
		}
		return readManifest(filepath.Join(dir, kind.ManifestName(v)))
	})
}

// Resolve materializes the bundle for v and loads its file lists.
func (c *Cache) Resolve(ctx context.Context, v domain.VersionID) (*domain.ClasspathBundle, error) {
	b := c.Bundle(v)
	for _, kind := range domain.ClasspathKinds {
		if _, err := b.Collection(kind).Files(ctx); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// ResolveAll resolves every version in parallel, bounded by the number of CPUs.
// Bundles are returned in the order of versions.
func (c *Cache) ResolveAll(ctx context.Context, versions []domain.VersionID) ([]*domain.ClasspathBundle, error) {
	bundles := make([]*domain.ClasspathBundle, len(versions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, v := range versions {
		g.Go(func() error {
			b, err := c.Resolve(gctx, v)
			if err != nil {
				return err
			}
			bundles[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundles, nil
}

// freeze finalizes the policy and computes the layout. Must be called with mu held.
func (c *Cache) freeze() (layout, error) {
	c.finalized = true
	if c.layout != nil {
		return *c.layout, nil
	}
	l, err := newLayout(c.policy, c.opts)
	if err != nil {
		return layout{}, err
	}
	c.layout = &l
	return l, nil
}

// materialize returns a valid entry directory for v, extracting it when needed.
func (c *Cache) materialize(ctx context.Context, v domain.VersionID) (string, error) {
	key := v.String()

	c.mu.Lock()
	if dir, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return dir, nil
	}
	l, err := c.freeze()
	force := c.forceRebuild || c.policy.ForcesRebuild()
	c.mu.Unlock()
	if err != nil {
		return "", err
	}

	result, err, _ := c.flight.Do(key, func() (any, error) {
		c.mu.Lock()
		dir, ok := c.entries[key]
		c.mu.Unlock()
		if ok {
			return dir, nil
		}

		dir, err := c.ensureEntry(ctx, l, v, force)
		if err != nil {
			return "", err
		}

		c.mu.Lock()
		c.entries[key] = dir
		c.mu.Unlock()
		return dir, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (c *Cache) ensureEntry(ctx context.Context, l layout, v domain.VersionID, force bool) (string, error) {
	ctx, vertex := c.telemetry.Record(ctx, "gradle "+v.String()+" classpath")
	entryDir := l.entryDir(v)

	if !force && c.valid(entryDir, v) {
		vertex.Cached()
		vertex.Complete(nil)
		c.setOutcome(v, domain.OutcomeCached)
		return entryDir, nil
	}

	err := c.extract(ctx, vertex, l, v)
	vertex.Complete(err)
	if err != nil {
		c.setOutcome(v, domain.OutcomeFailed)
		return "", err
	}
	c.setOutcome(v, domain.OutcomeExtracted)
	return entryDir, nil
}

func (c *Cache) setOutcome(v domain.VersionID, outcome domain.ExtractionOutcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outcomes[v.String()] = outcome
}

// Outcome reports how the last materialization of v in this process ended.
func (c *Cache) Outcome(v domain.VersionID) (domain.ExtractionOutcome, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.outcomes[v.String()]
	return o, ok
}

// valid reports whether entryDir holds intact manifests for v whose listed
// files all still exist. A single dangling path invalidates the entry.
func (c *Cache) valid(entryDir string, v domain.VersionID) bool {
	record, err := c.store.Get(entryDir)
	if err != nil || record == nil || record.Version != v.String() {
		return false
	}

	var listed []string
	for _, kind := range domain.ClasspathKinds {
		path := filepath.Join(entryDir, kind.ManifestName(v))
		sum, err := c.hasher.ComputeFileHash(path)
		if err != nil || sum != record.Checksums[kind] {
			return false
		}
		files, err := readManifest(path)
		if err != nil {
			return false
		}
		listed = append(listed, files...)
	}

	ok, err := c.verifier.VerifyFiles(listed)
	return err == nil && ok
}
