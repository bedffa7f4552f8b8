// Package core defines the graph specification and the validated,
// immutable node arena that the route package traverses.
//
// What
//
//   - Spec: an ordered declaration of nodes and their adjacency arcs,
//     exactly as the caller wrote it down. Order matters: traversal
//     tie-breaking follows declaration order, so Spec is a slice rather
//     than a map.
//   - Graph: the validated form of a Spec. Node IDs are resolved once to
//     dense indices, and declared arcs are stored index-based so that
//     per-request adjacency rebuilds never touch strings.
//
// Why
//
//   - Validation happens exactly once, at NewGraph: every arc target must
//     be a declared node, IDs must be non-empty and unique. After that the
//     Graph is immutable, so any number of routing requests can read it
//     concurrently without locks.
//
// Determinism
//
//	NodeIDs, Edges, and index assignment all follow Spec declaration
//	order, making every downstream traversal fully reproducible.
//
// Errors
//
//   - ErrEmptyNodeID        if a declared node has an empty ID.
//   - ErrDuplicateNode      if the same ID is declared twice.
//   - ErrUndefinedAdjacency if an arc references an undeclared node.
//
// Usage
//
//	spec := core.Spec{
//	    {ID: "a", Arcs: []core.Arc{{To: "b", Weight: 3}}},
//	    {ID: "b", Arcs: []core.Arc{{To: "a", Weight: 5}}},
//	}
//	g, err := core.NewGraph(spec, core.WithDirected(false))
package core
