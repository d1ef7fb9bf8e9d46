package dependency

import (
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"depmanager/pkg/logging"
)

const subsystem = "Dependency"

// Graph stores elements and the "depends on" relations between them.
//
// Nodes are kept in creation order in a single slice and reference each other
// by index. Graph is *not* thread-safe; callers must synchronise if they use
// it from several goroutines.
type Graph[T comparable] struct {
	nodes []node[T]
	index map[T]int
}

// NewGraph returns an empty graph.
func NewGraph[T comparable]() *Graph[T] {
	return &Graph[T]{index: make(map[T]int)}
}

// nodeFor returns the index of the node wrapping x, creating it if needed.
func (g *Graph[T]) nodeFor(x T) int {
	if g.index == nil {
		g.index = make(map[T]int)
	}
	if i, ok := g.index[x]; ok {
		return i
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, node[T]{element: x})
	g.index[x] = i
	logging.Debug(subsystem, "Created node %v at index %d", x, i)
	return i
}

// AddDependency records that from depends on to, meaning from must be
// processed after to. Missing nodes are created.
//
// A nil to (for pointer or interface element types) registers from on its
// own, like AddElement. The call fails with an error wrapping
// ErrInvalidDependency when from is nil, or when to already depends on from.
// Only that direct reversal is checked here; longer cycles are accepted and
// show up as elements missing from Order.
func (g *Graph[T]) AddDependency(from, to T) error {
	if isNil(from) {
		return &InvalidDependencyError{From: from, Reason: reasonNilElement}
	}
	fromIdx := g.nodeFor(from)
	if isNil(to) {
		return nil
	}
	toIdx := g.nodeFor(to)

	if g.nodes[toIdx].dependsOn.contains(fromIdx) {
		logging.Debug(subsystem, "Rejected edge %v -> %v: %v already depends on %v", from, to, to, from)
		return &InvalidDependencyError{From: from, To: to, Reason: reasonCircular}
	}

	g.nodes[fromIdx].dependsOn.add(toIdx)
	g.nodes[toIdx].dependedUpon.add(fromIdx)
	return nil
}

// AddElement registers x with no dependencies.
func (g *Graph[T]) AddElement(x T) error {
	if isNil(x) {
		return &InvalidDependencyError{From: x, Reason: reasonNilElement}
	}
	g.nodeFor(x)
	return nil
}

// BuildFromMap adds every dependency described by spec. Each key is a
// dependency target and its value lists the elements that depend on it.
// A nil spec is a no-op. The first failing edge aborts the build; edges added
// before it are kept.
//
// Go randomises map iteration, so the relative order of elements that become
// ready at the same time may differ between runs. Use BuildFromOrderedMap when
// that matters.
func (g *Graph[T]) BuildFromMap(spec map[T][]T) error {
	for to, dependents := range spec {
		if err := g.addDependents(to, dependents); err != nil {
			return err
		}
	}
	return nil
}

// BuildFromOrderedMap behaves like BuildFromMap but visits keys in insertion
// order, which makes the resulting order fully deterministic.
func (g *Graph[T]) BuildFromOrderedMap(spec *orderedmap.OrderedMap[T, []T]) error {
	if spec == nil {
		return nil
	}
	for pair := spec.Oldest(); pair != nil; pair = pair.Next() {
		if err := g.addDependents(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph[T]) addDependents(to T, dependents []T) error {
	for _, from := range dependents {
		if err := g.AddDependency(from, to); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of elements in the graph.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// Contains reports whether x has a node in the graph.
func (g *Graph[T]) Contains(x T) bool {
	_, ok := g.index[x]
	return ok
}

// Elements returns every element in node creation order.
func (g *Graph[T]) Elements() []T {
	res := make([]T, len(g.nodes))
	for i := range g.nodes {
		res[i] = g.nodes[i].element
	}
	return res
}

// DependenciesOf returns the elements x directly depends on, in the order the
// edges were added. The second result is false if x is not in the graph.
func (g *Graph[T]) DependenciesOf(x T) ([]T, bool) {
	i, ok := g.index[x]
	if !ok {
		return nil, false
	}
	return g.elementsAt(g.nodes[i].dependsOn.order), true
}

// DependentsOf returns the elements that directly depend on x.
func (g *Graph[T]) DependentsOf(x T) ([]T, bool) {
	i, ok := g.index[x]
	if !ok {
		return nil, false
	}
	return g.elementsAt(g.nodes[i].dependedUpon.order), true
}

func (g *Graph[T]) elementsAt(indices []int) []T {
	res := make([]T, len(indices))
	for k, i := range indices {
		res[k] = g.nodes[i].element
	}
	return res
}

// isNil reports whether v is a nil interface, pointer or channel.
func isNil[T comparable](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	switch rv := reflect.ValueOf(a); rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
