package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{
			name:         "Version",
			args:         []string{"multiapi", "version"},
			expectedExit: 0,
		},
		{
			name:         "Error with missing config",
			args:         []string{"multiapi", "-c", "nonexistent.yaml", "plan"},
			expectedExit: 1,
		},
		{
			name:         "Error with unknown command",
			args:         []string{"multiapi", "deploy"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			os.Args = tt.args

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}

func TestRun_CleanWithConfig(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("multiapi.yaml", []byte(`version: "1"
project:
  group: org.test
  name: myPlugin
targets: ["7.0", "8.13"]
cache: project
host:
  version: "8.14"
`), 0o600))
	require.NoError(t, os.MkdirAll("build/multiapi/cache/7.0", 0o750))

	os.Args = []string{"multiapi", "clean"}
	assert.Equal(t, 0, run())
	assert.NoDirExists(t, "build/multiapi")
}
