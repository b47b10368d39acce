package ports

// Hasher defines the interface for computing content checksums.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash returns the hex encoded checksum of the file content.
	ComputeFileHash(path string) (string, error)
}
