package classpath

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// WorkDirEnv redirects the scratch projects and their log files.
	WorkDirEnv = "MULTIAPI_TEMP_DIR"
	// UserHomeEnv locates the host tool's user home.
	UserHomeEnv = "GRADLE_USER_HOME"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// layout holds the directories one cache policy resolves to.
type layout struct {
	root     string
	workRoot string
	userHome string
}

func (l layout) entryDir(v domain.VersionID) string {
	return filepath.Join(l.root, v.String())
}

func newLayout(policy domain.CachePolicy, opts Options) (layout, error) {
	userHome, err := ResolveUserHome(opts.UserHome)
	if err != nil {
		return layout{}, err
	}

	l := layout{userHome: userHome, workRoot: workRoot(opts.BuildDir)}
	switch policy {
	case domain.CachePolicyShared:
		l.root = filepath.Join(userHome, "caches", "multiapi", "classpaths")
	case domain.CachePolicyProject:
		l.root = filepath.Join(opts.BuildDir, "multiapi", "cache")
	case domain.CachePolicyDisabled:
		l.root = filepath.Join(opts.BuildDir, "multiapi", "classpaths")
	default:
		return layout{}, zerr.With(zerr.Wrap(domain.ErrInvalidCachePolicy, "cannot locate cache root"), "policy", string(policy))
	}
	return l, nil
}

// ResolveUserHome returns the host tool's user home: the configured one,
// then $GRADLE_USER_HOME, then ~/.gradle.
func ResolveUserHome(configured string) (string, error) {
	for _, candidate := range []string{configured, os.Getenv(UserHomeEnv)} {
		if candidate == "" {
			continue
		}
		expanded, err := homedir.Expand(candidate)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to expand user home"), "path", candidate)
		}
		return expanded, nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to locate home directory")
	}
	return filepath.Join(home, ".gradle"), nil
}

func workRoot(buildDir string) string {
	if dir := os.Getenv(WorkDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(buildDir, "tmp", "multiapi")
}

// ProjectDirs lists the project-local directories the cache may write to.
func ProjectDirs(buildDir string) []string {
	return []string{
		filepath.Join(buildDir, "multiapi"),
		workRoot(buildDir),
	}
}
