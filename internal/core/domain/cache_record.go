package domain

import "time"

// CacheRecord describes a materialized classpath cache entry.
// It is persisted next to the manifests it vouches for.
type CacheRecord struct {
	Version   string                   `json:"version,omitzero"`
	Checksums map[ClasspathKind]string `json:"checksums,omitzero"`
	Command   []string                 `json:"command,omitzero"`
	Timestamp time.Time                `json:"timestamp,omitzero"`
}
