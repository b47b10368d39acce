package domain

import "slices"

// Task is a unit of work in the host's task graph.
// The engine only declares tasks and their ordering; it never runs them.
type Task struct {
	Name         string
	Type         string
	Owner        string
	Disabled     bool
	Dependencies []string
	// TestClasses lists the class directories a test task scans for tests.
	TestClasses []string
}

// AddTestClasses appends dirs to the scanned class directories, skipping known ones.
func (t *Task) AddTestClasses(dirs ...string) {
	for _, dir := range dirs {
		if !slices.Contains(t.TestClasses, dir) {
			t.TestClasses = append(t.TestClasses, dir)
		}
	}
}

// ClassesDirs names the compiled class directories of unit.
func ClassesDirs(unit string) string {
	return unit + ".output.classesDirs"
}

// Names of host tasks the engine reconfigures.
const (
	TestTask        = "test"
	HarnessTask     = "pluginUnderTestMetadata"
	HarnessTaskType = "PluginUnderTestMetadata"
	TestTaskType    = "Test"
)

// HarnessTaskName returns the per-variant harness task for feature.
func HarnessTaskName(feature string) string {
	return HarnessTask + upperFirst(feature)
}
