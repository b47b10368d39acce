package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/multiapi/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier checks that files referenced by a manifest still exist.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyFiles reports whether every path is an existing regular file.
// Directories and dangling entries make the whole set invalid.
func (v *Verifier) VerifyFiles(paths []string) (bool, error) {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
		}
		if !info.Mode().IsRegular() {
			return false, nil
		}
	}
	return true, nil
}
