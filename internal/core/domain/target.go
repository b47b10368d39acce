package domain

// Target is one declared host API version the plugin is built and tested against.
// It is created on registration and never changes afterwards; only the file
// lists inside its classpath bundle are resolved on demand.
type Target struct {
	Name      string
	Version   VersionID
	Classpath *ClasspathBundle
}

// NewTarget creates a target for version owning the given lazy bundle.
func NewTarget(version VersionID, classpath *ClasspathBundle) *Target {
	return &Target{
		Name:      version.FeatureName(),
		Version:   version,
		Classpath: classpath,
	}
}

// FeatureName is the name of the variant feature and its compilation unit.
func (t *Target) FeatureName() string {
	return t.Name
}

// CompilationUnit is the name of the variant's production unit.
func (t *Target) CompilationUnit() string {
	return t.Name
}

// TestUnit is the name of the variant's test suite.
func (t *Target) TestUnit() string {
	return t.Name + "Test"
}

// HarnessTask is the name of the variant's test harness metadata task.
func (t *Target) HarnessTask() string {
	return HarnessTaskName(t.Name)
}
