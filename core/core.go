// Package core provides graph construction and read-only catalog queries.
//
// NewGraph validates a Spec and freezes it into an index-based arena;
// every other method is a pure read.
package core

import "fmt"

// NewGraph validates spec and builds the immutable node arena.
//
// Validation, in order of detection:
//   - every node ID must be non-empty (ErrEmptyNodeID);
//   - node IDs must be unique (ErrDuplicateNode);
//   - every Arc.To must name a declared node (ErrUndefinedAdjacency).
//
// The first violation wins; the spec is never partially applied.
//
// Complexity: O(V + E).
func NewGraph(spec Spec, opts ...GraphOption) (*Graph, error) {
	g := &Graph{
		directed: true,
		ids:      make([]string, 0, len(spec)),
		index:    make(map[string]int, len(spec)),
	}
	for _, opt := range opts {
		opt(g)
	}

	// First pass: catalog node IDs so arcs can reference nodes declared later.
	for i, ns := range spec {
		if ns.ID == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyNodeID, i)
		}
		if _, seen := g.index[ns.ID]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, ns.ID)
		}
		g.index[ns.ID] = i
		g.ids = append(g.ids, ns.ID)
	}

	// Second pass: resolve declared arcs to indices, rejecting arcs that
	// point outside the declared node set.
	g.edges = make([][]Edge, len(spec))
	for i, ns := range spec {
		resolved := make([]Edge, 0, len(ns.Arcs))
		for _, a := range ns.Arcs {
			j, ok := g.index[a.To]
			if !ok {
				return nil, fmt.Errorf("%w: node %q lists %q", ErrUndefinedAdjacency, ns.ID, a.To)
			}
			resolved = append(resolved, Edge{To: j, Weight: a.Weight})
		}
		g.edges[i] = resolved
	}

	return g, nil
}

// Directed reports whether edge values are used per direction as declared.
// When false, the routing layer symmetrizes reciprocal arcs per objective.
//
// Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// NodeCount returns the number of declared nodes.
//
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.ids) }

// Has reports whether id names a declared node.
//
// Complexity: O(1).
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Index returns the dense index of id, and whether id is declared.
//
// Complexity: O(1).
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// ID returns the node ID at index i. It panics if i is out of range,
// mirroring slice indexing; indices only come from Index or Edges.
//
// Complexity: O(1).
func (g *Graph) ID(i int) string { return g.ids[i] }

// NodeIDs returns all node IDs in declaration order. The slice is a copy.
//
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Edges returns node i's declared arcs, resolved to indices, in
// declaration order. The returned slice is shared and must not be
// modified by the caller.
//
// Complexity: O(1).
func (g *Graph) Edges(i int) []Edge { return g.edges[i] }
