package dependency

import (
	"iter"
	"slices"
)

// Order yields the elements of a Graph in topological order: every element
// comes after all the elements it depends on.
//
// Order is built by Graph.Order and holds a snapshot of the graph taken at
// that moment. Later changes to the graph are not seen. An Order can be
// drained exactly once; create a new one to iterate again.
//
// Elements that take part in a dependency cycle never become ready and are
// left out of the sequence.
type Order[T comparable] struct {
	elements   []T
	dependents [][]int
	// outDegree counts, per node, the dependencies not emitted yet.
	outDegree []int
	// ready holds nodes whose outDegree reached zero, in discovery order.
	ready []int
}

// Order returns a new producer over the current state of the graph.
func (g *Graph[T]) Order() *Order[T] {
	o := &Order[T]{
		elements:   make([]T, len(g.nodes)),
		dependents: make([][]int, len(g.nodes)),
		outDegree:  make([]int, len(g.nodes)),
	}
	for i := range g.nodes {
		n := &g.nodes[i]
		o.elements[i] = n.element
		o.dependents[i] = slices.Clone(n.dependedUpon.order)
		o.outDegree[i] = n.dependsOn.len()
		if o.outDegree[i] == 0 {
			o.ready = append(o.ready, i)
		}
	}
	return o
}

// HasNext reports whether another element is ready.
func (o *Order[T]) HasNext() bool {
	return len(o.ready) > 0
}

// Next returns the next element in dependency order. It returns
// ErrEmptyIteration when nothing is ready.
func (o *Order[T]) Next() (T, error) {
	if !o.HasNext() {
		var zero T
		return zero, ErrEmptyIteration
	}

	n := o.ready[0]
	o.ready = o.ready[1:]

	for _, m := range o.dependents[n] {
		if o.outDegree[m] == 0 {
			continue
		}
		o.outDegree[m]--
		if o.outDegree[m] == 0 {
			o.ready = append(o.ready, m)
		}
	}
	return o.elements[n], nil
}

// All drains the producer as a range-over-func sequence.
func (o *Order[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for o.HasNext() {
			x, err := o.Next()
			if err != nil || !yield(x) {
				return
			}
		}
	}
}
