package domain

import (
	"context"
	"fmt"
	"sync"
)

// ClasspathKind identifies one of the three dependency closures extracted per version.
type ClasspathKind string

const (
	// ClasspathCoreAPI is the host's public plugin API.
	ClasspathCoreAPI ClasspathKind = "api"
	// ClasspathTestSupport is the host's functional testing kit.
	ClasspathTestSupport ClasspathKind = "test-kit"
	// ClasspathScripting is the host's scripting DSL API.
	ClasspathScripting ClasspathKind = "kotlin-dsl"
)

// ClasspathKinds lists every kind in manifest order.
var ClasspathKinds = []ClasspathKind{ClasspathCoreAPI, ClasspathTestSupport, ClasspathScripting}

// ManifestName returns the manifest file name for this kind at version v.
func (k ClasspathKind) ManifestName(v VersionID) string {
	return fmt.Sprintf("gradle-%s-%s.txt", k, v.String())
}

// DisplayName returns a human readable label such as "Gradle 8.13 API files".
func (k ClasspathKind) DisplayName(v VersionID) string {
	switch k {
	case ClasspathCoreAPI:
		return "Gradle " + v.String() + " API files"
	case ClasspathTestSupport:
		return "Gradle " + v.String() + " TestKit files"
	case ClasspathScripting:
		return "Gradle " + v.String() + " Kotlin DSL files"
	default:
		return "Gradle " + v.String() + " " + string(k) + " files"
	}
}

// FileLoader produces the absolute paths of a file collection.
type FileLoader func(ctx context.Context) ([]string, error)

// FileCollection is a lazily resolved, memoized list of files.
type FileCollection struct {
	displayName string
	load        FileLoader

	mu       sync.Mutex
	files    []string
	resolved bool
}

// NewFileCollection creates a FileCollection that calls load on first access.
func NewFileCollection(displayName string, load FileLoader) *FileCollection {
	return &FileCollection{displayName: displayName, load: load}
}

// StaticFiles creates an already resolved FileCollection.
func StaticFiles(displayName string, files ...string) *FileCollection {
	return &FileCollection{displayName: displayName, files: files, resolved: true}
}

// DisplayName returns the collection label.
func (c *FileCollection) DisplayName() string {
	return c.displayName
}

// Resolved reports whether the files were already loaded.
func (c *FileCollection) Resolved() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolved
}

// Cached returns the files without loading them.
func (c *FileCollection) Cached() ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.files, c.resolved
}

// Files loads the collection on first call and returns the memoized result afterwards.
// Failed loads are not memoized.
func (c *FileCollection) Files(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resolved {
		return c.files, nil
	}

	files, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	c.files = files
	c.resolved = true
	return c.files, nil
}

// ClasspathBundle groups the three classpaths of one host version.
type ClasspathBundle struct {
	Version        VersionID
	CoreAPI        *FileCollection
	TestSupportAPI *FileCollection
	ScriptingAPI   *FileCollection
}

// Collection returns the file collection for kind.
func (b *ClasspathBundle) Collection(kind ClasspathKind) *FileCollection {
	switch kind {
	case ClasspathCoreAPI:
		return b.CoreAPI
	case ClasspathTestSupport:
		return b.TestSupportAPI
	case ClasspathScripting:
		return b.ScriptingAPI
	default:
		return nil
	}
}
