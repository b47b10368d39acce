package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/multiapi/internal/adapters/telemetry/progrock"
	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/multiapi/internal/core/ports"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
	assert.NoError(t, recorder.Close())
}

func TestRecorder_RecordAttachesVertexToContext(t *testing.T) {
	recorder := progrock.New()
	defer func() { _ = recorder.Close() }()

	ctx, vertex := recorder.Record(context.Background(), "extract Gradle 8.13 classpath")
	require.NotNil(t, vertex)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("BUILD SUCCESSFUL\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("deprecation warning\n"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelInfo, "manifests written")
	vertex.Log(domain.LogLevelWarn, "slow extraction")
	vertex.Complete(nil)
}

func TestRecorder_CachedAndFailedVertices(t *testing.T) {
	recorder := progrock.New()
	defer func() { _ = recorder.Close() }()

	_, cached := recorder.Record(context.Background(), "resolve Gradle 7.0 classpath")
	cached.Cached()
	cached.Complete(nil)

	_, failed := recorder.Record(context.Background(), "resolve Gradle 8.1 classpath")
	failed.Complete(errors.New("exit status 1"))
}
