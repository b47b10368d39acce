package ports

// Verifier defines the interface for verifying file existence.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// VerifyFiles reports whether every path is an existing regular file.
	VerifyFiles(paths []string) (bool, error)
}
