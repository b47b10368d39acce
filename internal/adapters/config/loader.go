// Package config provides the configuration loader for multiapi.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/multiapi/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when none is given.
const DefaultFilename = "multiapi.yaml"

// supportedSchema is the only schema version understood by this loader.
const supportedSchema = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path and returns the validated configuration.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if len(cfg.Targets) == 0 && l.logger != nil {
		l.logger.Warn("no target versions declared, the running host version will be used")
	}
	return cfg, nil
}

// Load reads a configuration file from the given path.
func Load(path string) (*domain.Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", path)
	}

	data, err := os.ReadFile(abs) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "cannot load configuration"), "path", abs)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", abs)
	}

	var file Multiapifile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", abs)
	}

	return toDomain(&file, filepath.Dir(abs))
}

func toDomain(file *Multiapifile, root string) (*domain.Config, error) {
	if file.Version != "" && file.Version != supportedSchema {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unsupported config version"), "version", file.Version)
	}

	policy, err := domain.ParseCachePolicy(file.Cache)
	if err != nil {
		return nil, err
	}
	if file.Cache == "" {
		policy = ""
	}

	for _, target := range file.Targets {
		if _, err := domain.ParseVersion(target); err != nil {
			return nil, zerr.Wrap(err, "invalid target in config")
		}
	}

	if file.Host.Version != "" {
		if _, err := domain.ParseVersion(file.Host.Version); err != nil {
			return nil, zerr.Wrap(err, "invalid host version in config")
		}
	}

	name := file.Project.Name
	if name == "" {
		name = filepath.Base(root)
	}

	buildDir := file.BuildDir
	if buildDir == "" {
		buildDir = domain.DefaultBuildDir
	}
	if filepath.IsAbs(buildDir) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "build_dir must be relative to the project"), "build_dir", buildDir)
	}

	command := file.Host.Command
	if len(command) == 0 {
		command = slices.Clone(domain.DefaultHostCommand)
	}

	return &domain.Config{
		Root: root,
		Project: domain.ProjectSpec{
			Coordinates: domain.Coordinates{
				Group:   file.Project.Group,
				Name:    name,
				Version: file.Project.Version,
			},
			Plugins:  canonicalizeStrings(file.Project.Plugins),
			BuildDir: filepath.Join(root, buildDir),
		},
		Targets:     file.Targets,
		CachePolicy: policy,
		Host: domain.HostConfig{
			Version:  file.Host.Version,
			Command:  command,
			UserHome: file.Host.UserHome,
		},
	}, nil
}

func canonicalizeStrings(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}

	sorted := slices.Clone(strs)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
