package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/multiapi/internal/adapters/config"
	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/multiapi/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFilename)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
version: "1"
project:
  group: org.test
  name: myPlugin
  version: 0.1.0
  plugins: [kotlin, maven-publish, kotlin]
targets: ["7.0", "8.1", "8.13"]
cache: project
host:
  version: "8.14"
  command: ["./gradlew", "--offline"]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	root := filepath.Dir(path)
	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, domain.Coordinates{Group: "org.test", Name: "myPlugin", Version: "0.1.0"}, cfg.Project.Coordinates)
	assert.Equal(t, []string{"kotlin", "maven-publish"}, cfg.Project.Plugins)
	assert.Equal(t, filepath.Join(root, "build"), cfg.Project.BuildDir)
	assert.Equal(t, []string{"7.0", "8.1", "8.13"}, cfg.Targets)
	assert.Equal(t, domain.CachePolicyProject, cfg.CachePolicy)
	assert.Equal(t, "8.14", cfg.Host.Version)
	assert.Equal(t, []string{"./gradlew", "--offline"}, cfg.Host.Command)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `targets: ["8.1"]`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(filepath.Dir(path)), cfg.Project.Coordinates.Name)
	assert.Equal(t, domain.CachePolicy(""), cfg.CachePolicy, "unset policy is left for the cache to default")
	assert.Equal(t, domain.DefaultHostCommand, cfg.Host.Command)
	assert.Empty(t, cfg.Host.Version)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
		meta    map[string]any
	}{
		{
			name:    "unknown cache policy",
			content: `cache: everywhere`,
			target:  domain.ErrInvalidCachePolicy,
			meta:    map[string]any{"policy": "everywhere"},
		},
		{
			name:    "malformed target",
			content: `targets: ["seven"]`,
			target:  domain.ErrInvalidVersion,
			meta:    map[string]any{"version": "seven"},
		},
		{
			name:    "unsupported schema",
			content: `version: "2"`,
			target:  domain.ErrInvalidConfig,
			meta:    map[string]any{"version": "2"},
		},
		{
			name:    "absolute build dir",
			content: `build_dir: /tmp/out`,
			target:  domain.ErrInvalidConfig,
			meta:    map[string]any{"build_dir": "/tmp/out"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "expected %v, got %v", tt.target, err)

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			for k, v := range tt.meta {
				assert.Equal(t, v, metadata(err)[k], "metadata %s", k)
			}
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := config.Load(writeConfig(t, "targetz: [\"8.1\"]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
}

func TestLoader_WarnsWithoutTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	cfg, err := config.NewLoader(mockLogger).Load(writeConfig(t, "project: {name: demo}\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Targets)
}

// metadata merges the metadata of every zerr.Error in the chain, outermost first.
func metadata(err error) map[string]any {
	out := make(map[string]any)
	for current := err; current != nil; current = errors.Unwrap(current) {
		if z, ok := current.(*zerr.Error); ok {
			for k, v := range z.Metadata() {
				if _, exists := out[k]; !exists {
					out[k] = v
				}
			}
		}
	}
	return out
}
