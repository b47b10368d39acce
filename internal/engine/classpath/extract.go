package classpath

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/multiapi/internal/core/ports"
	"go.trai.ch/zerr"
)

// extract runs the host tool in a scratch project and publishes the manifests
// it writes as the entry for v. The canonical entry only ever appears through
// a directory rename. On tool failure the scratch project is kept for its logs.
func (c *Cache) extract(ctx context.Context, vertex ports.Vertex, l layout, v domain.VersionID) error {
	msg := "Extracting Gradle " + v.String() + " API"
	c.logger.Info(msg)
	vertex.Log(domain.LogLevelInfo, msg)

	for _, dir := range []string{l.workRoot, l.root} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create cache directory"), "path", dir)
		}
	}

	scratch, err := os.MkdirTemp(l.workRoot, "work"+v.String()+"-")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create scratch project"), "path", l.workRoot)
	}
	staging, err := os.MkdirTemp(l.root, "."+v.String()+"-staging-")
	if err != nil {
		_ = os.RemoveAll(scratch)
		return zerr.With(zerr.Wrap(err, "failed to create staging directory"), "path", l.root)
	}

	outputs := make(map[domain.ClasspathKind]string, len(domain.ClasspathKinds))
	for _, kind := range domain.ClasspathKinds {
		outputs[kind] = filepath.Join(staging, kind.ManifestName(v))
	}

	runErr := c.run(ctx, vertex, scratch, l.userHome, v, outputs)
	if ctx.Err() != nil {
		_ = os.RemoveAll(scratch)
		_ = os.RemoveAll(staging)
		return ctx.Err()
	}
	if runErr != nil {
		_ = os.RemoveAll(staging)
		return extractionError(runErr, v, scratch)
	}

	if err := c.commit(staging, l.entryDir(v), v, outputs); err != nil {
		_ = os.RemoveAll(staging)
		return extractionError(err, v, scratch)
	}
	_ = os.RemoveAll(scratch)
	return nil
}

func (c *Cache) run(
	ctx context.Context,
	vertex ports.Vertex,
	scratch, userHome string,
	v domain.VersionID,
	outputs map[domain.ClasspathKind]string,
) error {
	if err := writeProject(scratch, v, outputs); err != nil {
		return err
	}

	stdout, err := os.Create(filepath.Join(scratch, stdoutFile)) //nolint:gosec // scratch is created by us
	if err != nil {
		return zerr.Wrap(err, "failed to create log file")
	}
	defer func() { _ = stdout.Close() }()
	stderr, err := os.Create(filepath.Join(scratch, stderrFile)) //nolint:gosec // scratch is created by us
	if err != nil {
		return zerr.Wrap(err, "failed to create log file")
	}
	defer func() { _ = stderr.Close() }()

	return c.runner.Run(ctx, c.opts.Command, domain.Invocation{
		ProjectDir: scratch,
		Version:    v,
		UserHome:   userHome,
		Args:       domain.DependenciesOnlyArgs,
		Outputs:    outputs,
		Stdout:     io.MultiWriter(stdout, vertex.Stdout()),
		Stderr:     io.MultiWriter(stderr, vertex.Stderr()),
	})
}

// commit records checksums for the staged manifests and moves the staging
// directory into place. A stale entry is renamed aside, never deleted in place. Losing a rename race to another process is fine as
// long as the winner's entry is valid.
func (c *Cache) commit(staging, entryDir string, v domain.VersionID, outputs map[domain.ClasspathKind]string) error {
	record := domain.CacheRecord{
		Version:   v.String(),
		Checksums: make(map[domain.ClasspathKind]string, len(outputs)),
		Command:   c.opts.Command,
		Timestamp: time.Now(),
	}
	for _, kind := range domain.ClasspathKinds {
		sum, err := c.hasher.ComputeFileHash(outputs[kind])
		if err != nil {
			return zerr.With(zerr.Wrap(err, "manifest was not produced"), "manifest", outputs[kind])
		}
		record.Checksums[kind] = sum
	}
	if err := c.store.Put(staging, record); err != nil {
		return err
	}

	retired, err := retire(entryDir)
	if err != nil {
		return err
	}
	if err := os.Rename(staging, entryDir); err != nil {
		if _, statErr := os.Stat(entryDir); statErr == nil && c.valid(entryDir, v) {
			_ = os.RemoveAll(staging)
			removeRetired(retired)
			return nil
		}
		if retired != "" {
			_ = os.Rename(retired, entryDir)
		}
		return zerr.With(zerr.Wrap(err, "failed to publish cache entry"), "path", entryDir)
	}
	removeRetired(retired)
	return nil
}

// retire moves an existing entry out of the canonical path so the staged entry
// can be renamed in. Readers keep finding manifests at entryDir until the
// retired copy is removed. It returns "" when there is nothing to move.
func retire(entryDir string) (string, error) {
	if _, err := os.Lstat(entryDir); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to inspect cache entry"), "path", entryDir)
	}
	retired := filepath.Join(filepath.Dir(entryDir),
		fmt.Sprintf(".%s-retired-%d-%d", filepath.Base(entryDir), os.Getpid(), time.Now().UnixNano()))
	if err := os.Rename(entryDir, retired); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to retire stale entry"), "path", entryDir)
	}
	return retired, nil
}

func removeRetired(dir string) {
	if dir != "" {
		_ = os.RemoveAll(dir)
	}
}

func extractionError(cause error, v domain.VersionID, logs string) error {
	err := zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrExtractionFailed, cause), "failed to extract host classpaths")
	return zerr.With(zerr.With(err, "version", v.String()), "logs", logs)
}

