package dependency

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Manager is a convenience wrapper around a Graph. Every call to
// GetDependencies resolves the graph as it is at that moment; results are
// never cached.
type Manager[T comparable] struct {
	graph *Graph[T]
}

// NewManager returns a manager with an empty graph.
func NewManager[T comparable]() *Manager[T] {
	return &Manager[T]{graph: NewGraph[T]()}
}

// AddDependency records that from depends on to. See Graph.AddDependency.
func (m *Manager[T]) AddDependency(from, to T) error {
	return m.graph.AddDependency(from, to)
}

// AddElement registers from without any dependency.
func (m *Manager[T]) AddElement(from T) error {
	return m.graph.AddElement(from)
}

// BuildDependencyGraph adds every dependency in spec, where each key is a
// target and its value lists the elements depending on it.
func (m *Manager[T]) BuildDependencyGraph(spec map[T][]T) error {
	return m.graph.BuildFromMap(spec)
}

// BuildOrderedDependencyGraph is BuildDependencyGraph with deterministic key
// order.
func (m *Manager[T]) BuildOrderedDependencyGraph(spec *orderedmap.OrderedMap[T, []T]) error {
	return m.graph.BuildFromOrderedMap(spec)
}

// Iterator returns a fresh producer over the current graph.
func (m *Manager[T]) Iterator() *Order[T] {
	return m.graph.Order()
}

// GetDependencies returns all resolvable elements in dependency order.
func (m *Manager[T]) GetDependencies() []T {
	result := make([]T, 0, m.graph.Len())
	it := m.Iterator()
	for it.HasNext() {
		x, err := it.Next()
		if err != nil {
			break
		}
		result = append(result, x)
	}
	return result
}

// Graph exposes the underlying graph for read access.
func (m *Manager[T]) Graph() *Graph[T] {
	return m.graph
}

// Len returns the number of elements known to the manager.
func (m *Manager[T]) Len() int {
	return m.graph.Len()
}

// Elements returns every element in the order it was first seen.
func (m *Manager[T]) Elements() []T {
	return m.graph.Elements()
}

// Unresolved returns the elements that GetDependencies leaves out because
// they sit on, or behind, a dependency cycle.
func (m *Manager[T]) Unresolved() []T {
	resolved := m.GetDependencies()
	if len(resolved) == m.graph.Len() {
		return nil
	}
	seen := make(map[T]struct{}, len(resolved))
	for _, x := range resolved {
		seen[x] = struct{}{}
	}
	var res []T
	for _, x := range m.graph.Elements() {
		if _, ok := seen[x]; !ok {
			res = append(res, x)
		}
	}
	return res
}
