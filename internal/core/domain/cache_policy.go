package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// CachePolicy selects where extracted classpath manifests are kept.
type CachePolicy string

const (
	// CachePolicyShared stores manifests under the host tool's global user home.
	CachePolicyShared CachePolicy = "shared"
	// CachePolicyProject stores manifests in the project's build output.
	CachePolicyProject CachePolicy = "project"
	// CachePolicyDisabled always re-extracts.
	CachePolicyDisabled CachePolicy = "disabled"
)

// ParseCachePolicy converts a configuration value into a CachePolicy.
// An empty value selects the shared policy.
func ParseCachePolicy(s string) (CachePolicy, error) {
	switch CachePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", CachePolicyShared:
		return CachePolicyShared, nil
	case CachePolicyProject:
		return CachePolicyProject, nil
	case CachePolicyDisabled, "none":
		return CachePolicyDisabled, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidCachePolicy, "expected shared, project or disabled"), "policy", s)
	}
}

// ForcesRebuild reports whether every resolution must re-run the extraction.
func (p CachePolicy) ForcesRebuild() bool {
	return p == CachePolicyDisabled
}
