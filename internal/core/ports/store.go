package ports

import "go.trai.ch/multiapi/internal/core/domain"

// CacheRecordStore persists the record that vouches for a classpath cache entry.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheRecordStore interface {
	// Get retrieves the record stored in the entry directory.
	// Returns nil, nil if not found.
	Get(entryDir string) (*domain.CacheRecord, error)

	// Put stores the record in the entry directory.
	Put(entryDir string, record domain.CacheRecord) error
}
