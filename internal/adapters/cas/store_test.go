package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/multiapi/internal/adapters/cas"
	"go.trai.ch/multiapi/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	entryDir := filepath.Join(t.TempDir(), "8.13")
	store := cas.NewStore()

	record := domain.CacheRecord{
		Version: "8.13",
		Checksums: map[domain.ClasspathKind]string{
			domain.ClasspathCoreAPI:     "0123456789abcdef",
			domain.ClasspathTestSupport: "fedcba9876543210",
			domain.ClasspathScripting:   "00000000deadbeef",
		},
		Command:   []string{"gradle", "-m"},
		Timestamp: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.Put(entryDir, record))

	got, err := store.Get(entryDir)
	require.NoError(t, err)
	require.NotNil(t, got)
	if diff := cmp.Diff(record, *got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(entryDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_GetMissing(t *testing.T) {
	got, err := cas.NewStore().Get(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetCorrupt(t *testing.T) {
	entryDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(entryDir, cas.RecordFile), []byte("{not json"), 0o600))

	got, err := cas.NewStore().Get(entryDir)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "failed to unmarshal cache record")
}

func TestStore_PutOverwrites(t *testing.T) {
	entryDir := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(entryDir, domain.CacheRecord{Version: "8.1"}))
	require.NoError(t, store.Put(entryDir, domain.CacheRecord{Version: "8.2"}))

	got, err := store.Get(entryDir)
	require.NoError(t, err)
	assert.Equal(t, "8.2", got.Version)
}
