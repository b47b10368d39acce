package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidVersion is returned when a version identifier cannot be parsed.
	ErrInvalidVersion = zerr.New("invalid version identifier")

	// ErrOutOfRangeVersion is returned when a target version falls outside the supported range.
	ErrOutOfRangeVersion = zerr.New("target version out of supported range")

	// ErrExtractionFailed is returned when the external tool could not produce the classpath manifests.
	ErrExtractionFailed = zerr.New("classpath extraction failed")

	// ErrFeatureNameCollision is returned when a derived feature name is already taken by a foreign feature or unit.
	ErrFeatureNameCollision = zerr.New("feature name collision")

	// ErrCachePolicyFinalized is returned when the cache policy is set after it was already decided.
	ErrCachePolicyFinalized = zerr.New("cache policy already finalized")

	// ErrInvalidCachePolicy is returned when an unknown cache policy is requested.
	ErrInvalidCachePolicy = zerr.New("invalid cache policy")

	// ErrRegistryFrozen is returned when a target is registered after the minimum was read.
	ErrRegistryFrozen = zerr.New("target registry is frozen")

	// ErrNoTargets is returned when the minimum target is requested from an empty registry.
	ErrNoTargets = zerr.New("no target versions registered")

	// ErrUnitNotFound is returned when a compilation or test unit is missing from the host project.
	ErrUnitNotFound = zerr.New("unit not found")

	// ErrTaskAlreadyExists is returned when attempting to add a task with a name that already exists.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrMissingDependency is returned when a task references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the task dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTaskNotFound is returned when a requested task is not found in the graph.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrInvalidConfig is returned when the configuration file is structurally valid YAML but semantically wrong.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrHostVersionUnknown is returned when the running host version could not be determined.
	ErrHostVersionUnknown = zerr.New("unable to determine host version")
)
