package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Graph represents the host project's task dependency graph.
type Graph struct {
	tasks          map[string]*Task
	order          []string
	executionOrder []string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		tasks: make(map[string]*Task),
	}
}

// AddTask adds a task to the graph.
// It returns an error if a task with the same name already exists.
func (g *Graph) AddTask(t *Task) error {
	if _, exists := g.tasks[t.Name]; exists {
		return zerr.With(zerr.Wrap(ErrTaskAlreadyExists, "cannot add task"), "task_name", t.Name)
	}
	g.tasks[t.Name] = t
	g.order = append(g.order, t.Name)
	return nil
}

// Task returns the named task.
func (g *Graph) Task(name string) (*Task, bool) {
	t, ok := g.tasks[name]
	return t, ok
}

// DependOn makes task depend on dep. Both must exist.
func (g *Graph) DependOn(task, dep string) error {
	t, ok := g.tasks[task]
	if !ok {
		return zerr.With(zerr.Wrap(ErrTaskNotFound, "cannot add dependency"), "task_name", task)
	}
	if _, ok := g.tasks[dep]; !ok {
		return zerr.With(zerr.Wrap(ErrMissingDependency, "cannot add dependency"), "dependency", dep)
	}
	if !slices.Contains(t.Dependencies, dep) {
		t.Dependencies = append(t.Dependencies, dep)
	}
	return nil
}

// Validate checks for cycles in the graph using a topological sort.
// It populates the execution order if successful. Disconnected tasks keep
// their insertion order.
func (g *Graph) Validate() error {
	g.executionOrder = make([]string, 0, len(g.tasks))
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(u string) error
	visit = func(u string) error {
		visited[u] = 1
		path = append(path, u)

		task, exists := g.tasks[u]
		if !exists {
			return zerr.With(zerr.Wrap(ErrMissingDependency, "invalid task graph"), "dependency", u)
		}

		for _, dep := range task.Dependencies {
			if visited[dep] == 1 {
				return buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	for _, name := range g.order {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func buildCycleError(path []string, dep string) error {
	cyclePath := ""
	startIdx := slices.Index(path, dep)
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i] + " -> "
	}
	cyclePath += dep
	return zerr.With(zerr.Wrap(ErrCycleDetected, "invalid task graph"), "cycle", cyclePath)
}

// Walk returns an iterator that yields tasks in execution order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[*Task] {
	return func(yield func(*Task) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.tasks[name]) {
				return
			}
		}
	}
}
