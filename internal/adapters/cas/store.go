// Package cas stores the records that vouch for content-addressed classpath cache entries.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/multiapi/internal/core/ports"
	"go.trai.ch/zerr"
)

// RecordFile is the name of the record inside a cache entry directory.
const RecordFile = "entry.json"

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

var _ ports.CacheRecordStore = (*Store)(nil)

// Store implements ports.CacheRecordStore with one JSON file per entry.
type Store struct {
	mu sync.RWMutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record stored in entryDir.
// Returns nil, nil when the entry has no record.
func (s *Store) Get(entryDir string) (*domain.CacheRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := filepath.Join(filepath.Clean(entryDir), RecordFile)
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read cache record"), "path", path)
	}

	var record domain.CacheRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal cache record"), "path", path)
	}
	return &record, nil
}

// Put stores the record in entryDir. The file is replaced atomically.
func (s *Store) Put(entryDir string, record domain.CacheRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache record")
	}

	dir := filepath.Clean(entryDir)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache entry directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, RecordFile+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache record"), "path", dir)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write cache record"), "path", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cache record"), "path", tmp.Name())
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cache record"), "path", tmp.Name())
	}

	path := filepath.Join(dir, RecordFile)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cache record"), "path", path)
	}
	return nil
}
