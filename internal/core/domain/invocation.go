package domain

import "io"

// Invocation describes one run of the external host tool.
type Invocation struct {
	// ProjectDir is the scratch project the tool runs in.
	ProjectDir string
	// Version is the host version the tool must run as.
	Version VersionID
	// UserHome overrides the tool's user home. Empty keeps the tool default.
	UserHome string
	// Args are passed after the generic tool arguments.
	Args []string
	// Outputs are the manifest paths the generated build writes.
	Outputs map[ClasspathKind]string
	Stdout  io.Writer
	Stderr  io.Writer
}

// DependenciesOnlyArgs runs the build without executing any task.
var DependenciesOnlyArgs = []string{"-m"}
