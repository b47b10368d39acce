package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/multiapi/internal/adapters/cas"
	"go.trai.ch/multiapi/internal/adapters/fs"
	"go.trai.ch/multiapi/internal/adapters/hostmodel"
	"go.trai.ch/multiapi/internal/app"
	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/multiapi/internal/core/ports"
	"go.trai.ch/multiapi/internal/core/ports/mocks"
	"go.trai.ch/multiapi/internal/engine/classpath"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

type harness struct {
	app    *app.App
	out    *bytes.Buffer
	loader *mocks.MockConfigLoader
	runner *mocks.MockToolRunner
	cfg    *domain.Config
	libDir string
}

func newHarness(t *testing.T, ctrl *gomock.Controller) *harness {
	t.Helper()
	t.Setenv(classpath.WorkDirEnv, "")

	root := t.TempDir()
	h := &harness{
		out:    &bytes.Buffer{},
		loader: mocks.NewMockConfigLoader(ctrl),
		runner: mocks.NewMockToolRunner(ctrl),
		libDir: t.TempDir(),
		cfg: &domain.Config{
			Root: root,
			Project: domain.ProjectSpec{
				Coordinates: domain.Coordinates{Group: "org.test", Name: "myPlugin", Version: "0.1.0"},
				BuildDir:    filepath.Join(root, "build"),
			},
			Targets:     []string{"7.0", "8.1", "8.13"},
			CachePolicy: domain.CachePolicyProject,
			Host: domain.HostConfig{
				Version:  "8.14",
				Command:  []string{"gradle"},
				UserHome: t.TempDir(),
			},
		},
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Stdout().Return(io.Discard).AnyTimes()
	vertex.EXPECT().Stderr().Return(io.Discard).AnyTimes()
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Cached().AnyTimes()
	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()

	caches := classpath.NewFactory(h.runner, fs.NewVerifier(), fs.NewHasher(), cas.NewStore(), telemetry, logger)
	h.app = app.New(h.loader, h.runner, hostmodel.NewFactory(), caches, logger).WithOutput(h.out)
	return h
}

func (h *harness) extraction(_ context.Context, _ []string, inv domain.Invocation) error {
	for kind, manifest := range inv.Outputs {
		jar := filepath.Join(h.libDir, string(kind)+"-"+inv.Version.String()+".jar")
		if err := os.WriteFile(jar, nil, 0o600); err != nil {
			return err
		}
		if err := os.WriteFile(manifest, []byte(jar+"\n"), 0o600); err != nil {
			return err
		}
	}
	return nil
}

func TestApp_Plan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(t, ctrl)
	h.loader.EXPECT().Load("multiapi.yaml").Return(h.cfg, nil).Times(1)

	err := h.app.Plan(context.Background(), app.PlanOptions{ConfigPath: "multiapi.yaml"})
	require.NoError(t, err)

	var doc struct {
		Features []struct {
			Name string `yaml:"name"`
		} `yaml:"features"`
	}
	require.NoError(t, yaml.Unmarshal(h.out.Bytes(), &doc))
	require.Len(t, doc.Features, 4)
	assert.Equal(t, "main", doc.Features[0].Name)
	assert.Equal(t, "gradle813", doc.Features[3].Name)
	assert.Contains(t, h.out.String(), "Gradle 7.0 API files")
	assert.NotContains(t, h.out.String(), "files (")
}

func TestApp_Plan_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(t, ctrl)
	h.loader.EXPECT().Load(gomock.Any()).Return(h.cfg, nil).Times(1)
	h.runner.EXPECT().Run(gomock.Any(), []string{"gradle"}, gomock.Any()).DoAndReturn(h.extraction).Times(3)

	err := h.app.Plan(context.Background(), app.PlanOptions{ConfigPath: "multiapi.yaml", Resolve: true})
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "Gradle 8.13 TestKit files (1 files)")
}

func TestApp_Plan_DefaultsToHostVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(t, ctrl)
	h.cfg.Targets = nil
	h.cfg.Host.Version = ""
	h.loader.EXPECT().Load(gomock.Any()).Return(h.cfg, nil).Times(1)
	h.runner.EXPECT().HostVersion(gomock.Any(), []string{"gradle"}).Return("8.14", nil).Times(1)

	err := h.app.Plan(context.Background(), app.PlanOptions{ConfigPath: "multiapi.yaml"})
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "gradle814")
}

func TestApp_Plan_OutOfRangePrintsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(t, ctrl)
	h.cfg.Targets = []string{"8.1", "9.0"}
	h.loader.EXPECT().Load(gomock.Any()).Return(h.cfg, nil).Times(1)

	err := h.app.Plan(context.Background(), app.PlanOptions{ConfigPath: "multiapi.yaml"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOutOfRangeVersion))
	assert.Empty(t, h.out.String())
}

func TestApp_Plan_ExtractionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(t, ctrl)
	h.cfg.Targets = []string{"8.1"}
	h.loader.EXPECT().Load(gomock.Any()).Return(h.cfg, nil).Times(1)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("exit status 1")).Times(1)

	err := h.app.Plan(context.Background(), app.PlanOptions{ConfigPath: "multiapi.yaml", Resolve: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExtractionFailed))
	assert.Empty(t, h.out.String())
}

func TestApp_Plan_ConfigLoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(t, ctrl)
	h.loader.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrConfigNotFound).Times(1)

	err := h.app.Plan(context.Background(), app.PlanOptions{ConfigPath: "missing.yaml"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
}

func TestApp_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(t, ctrl)
	h.loader.EXPECT().Load(gomock.Any()).Return(h.cfg, nil).Times(1)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(h.extraction).Times(1)

	err := h.app.Resolve(context.Background(), app.ResolveOptions{ConfigPath: "multiapi.yaml", Versions: []string{"8.2"}})
	require.NoError(t, err)

	line := strings.TrimSpace(h.out.String())
	fields := strings.Split(line, "\t")
	require.Len(t, fields, 3)
	assert.Equal(t, "8.2", fields[0])
	assert.Equal(t, string(domain.OutcomeExtracted), fields[1])
	assert.Equal(t, filepath.Join(h.cfg.Project.BuildDir, "multiapi", "cache", "8.2"), fields[2])
}

func TestApp_Clean(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHarness(t, ctrl)
	h.loader.EXPECT().Load(gomock.Any()).Return(h.cfg, nil).Times(1)

	for _, dir := range classpath.ProjectDirs(h.cfg.Project.BuildDir) {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "8.1"), 0o750))
	}

	require.NoError(t, h.app.Clean(context.Background(), "multiapi.yaml"))

	for _, dir := range classpath.ProjectDirs(h.cfg.Project.BuildDir) {
		assert.NoDirExists(t, dir)
	}
}
