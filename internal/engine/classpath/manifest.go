package classpath

import (
	"bufio"
	"os"
	"strings"

	"go.trai.ch/zerr"
)

// readManifest returns the non-blank lines of a manifest.
func readManifest(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path is derived from the cache layout
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open manifest"), "path", path)
	}
	defer func() { _ = f.Close() }()

	var files []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			files = append(files, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}
	return files, nil
}
