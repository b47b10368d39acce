package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/multiapi/internal/adapters/fs"
)

func TestHasher_ComputeFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	hasher := fs.NewHasher()

	a := filepath.Join(tmpDir, "a.txt")
	b := filepath.Join(tmpDir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("/gradle/lib/gradle-api.jar\n"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("/gradle/lib/gradle-api.jar\n"), 0o600))

	hashA, err := hasher.ComputeFileHash(a)
	require.NoError(t, err)
	hashB, err := hasher.ComputeFileHash(b)
	require.NoError(t, err)

	assert.Len(t, hashA, 16)
	assert.Equal(t, hashA, hashB, "same content must hash the same")

	require.NoError(t, os.WriteFile(b, []byte("/gradle/lib/other.jar\n"), 0o600))
	hashB, err = hasher.ComputeFileHash(b)
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashB)
}

func TestHasher_MissingFile(t *testing.T) {
	_, err := fs.NewHasher().ComputeFileHash(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}
