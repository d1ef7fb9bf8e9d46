// Package dependency resolves a set of "A depends on B" relations between
// elements into a single processing order in which every element comes after
// everything it depends on.
//
// The package is generic over any comparable element type: strings, runes,
// integers, or user-defined comparable structs all work as node identities.
//
// # Core Concepts
//
// Graph: owns every node, keyed by element. Nodes are created lazily the first
// time an element is mentioned and are never removed. Internally the nodes
// live in a single slice (an arena) and refer to each other by index, so the
// two-way relation between a node and its dependents carries no pointer
// cycles.
//
// Order: a one-shot producer that yields elements in topological order using
// Kahn's algorithm. It snapshots the out-degree of every node (the number of
// dependencies not yet emitted) when it is created and then hands out nodes
// whose out-degree has dropped to zero, first in, first out.
//
// Manager: a thin facade combining a Graph with a fresh Order on every
// resolution.
//
// # Cycle Handling
//
// Cycles are handled in two different ways:
//
//  1. A direct mutual dependency (A depends on B, then B depends on A) is
//     rejected when the second edge is added. The call returns an error
//     wrapping ErrInvalidDependency and the graph is left unchanged.
//  2. Longer cycles (A -> B -> C -> A) are accepted at insertion time. Their
//     members never reach out-degree zero, so they are silently left out of
//     the produced order. Callers that care compare the length of the order
//     with Manager.Len, or ask Manager.Unresolved.
//
// # Usage Example
//
//	m := dependency.NewManager[string]()
//	_ = m.AddDependency("app", "lib")
//	_ = m.AddDependency("app", "runtime")
//	_ = m.AddDependency("runtime", "lib")
//
//	order := m.GetDependencies()
//	// order: ["lib", "runtime", "app"]
//
// # Thread Safety
//
// None of the types in this package are safe for concurrent use. A Graph is
// meant to be owned by a single caller; embedding code that shares one must
// serialize access itself.
package dependency
