package classpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	settingsFile = "settings.gradle.kts"
	buildFile    = "build.gradle.kts"
	wrapperFile  = "gradle/wrapper/gradle-wrapper.properties"
	stdoutFile   = "stdout.txt"
	stderrFile   = "stderr.txt"
)

// distributionURL is where the wrapper fetches a host distribution from.
const distributionURL = "https://services.gradle.org/distributions/gradle-%s-bin.zip"

// sources maps each classpath kind to the build expression producing it.
var sources = map[domain.ClasspathKind]string{
	domain.ClasspathCoreAPI:     "dependencies.gradleApi()",
	domain.ClasspathTestSupport: "dependencies.gradleTestKit()",
	domain.ClasspathScripting:   "gradleKotlinDsl()",
}

// BuildScript renders a build that writes every classpath closure, one path
// per line, to the given outputs.
func BuildScript(outputs map[domain.ClasspathKind]string) string {
	var b strings.Builder
	b.WriteString("fun File.writeClasspath(source: Dependency) =\n")
	b.WriteString("    writeText(configurations.detachedConfiguration(source).files.joinToString(\"\\n\"))\n\n")
	for _, kind := range domain.ClasspathKinds {
		path, ok := outputs[kind]
		if !ok {
			continue
		}
		b.WriteString("file(" + kotlinString(path) + ").writeClasspath(" + sources[kind] + ")\n")
	}
	return b.String()
}

// WrapperProperties pins the scratch project to version v.
func WrapperProperties(v domain.VersionID) string {
	url := fmt.Sprintf(distributionURL, v.String())
	return "distributionBase=GRADLE_USER_HOME\n" +
		"distributionPath=wrapper/dists\n" +
		"distributionUrl=" + strings.ReplaceAll(url, ":", "\\:") + "\n" +
		"zipStoreBase=GRADLE_USER_HOME\n" +
		"zipStorePath=wrapper/dists\n"
}

func kotlinString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`)
	return `"` + r.Replace(s) + `"`
}

// writeProject lays out the scratch project in dir.
func writeProject(dir string, v domain.VersionID, outputs map[domain.ClasspathKind]string) error {
	files := map[string]string{
		settingsFile: "",
		buildFile:    BuildScript(outputs),
		wrapperFile:  WrapperProperties(v),
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create scratch project"), "path", path)
		}
		if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write scratch project"), "path", path)
		}
	}
	return nil
}
