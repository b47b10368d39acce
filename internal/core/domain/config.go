package domain

// Config is the validated project configuration.
type Config struct {
	// Root is the directory the configuration file lives in.
	Root    string
	Project ProjectSpec
	// Targets are the declared version tokens, in declaration order.
	Targets []string
	// CachePolicy is empty when the file does not select one.
	CachePolicy CachePolicy
	Host        HostConfig
}

// HostConfig describes how to reach the external host tool.
type HostConfig struct {
	// Version is the running host version. Empty means probe the tool.
	Version  string
	Command  []string
	UserHome string
}

// DefaultHostCommand is used when no host command is configured.
var DefaultHostCommand = []string{"gradle"}

// DefaultBuildDir is the build output directory relative to the project root.
const DefaultBuildDir = "build"
