// Package core declares the Spec, Arc, Edge, and Graph types together
// with sentinel errors and graph construction options.
package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrEmptyNodeID indicates that a declared node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that the same node ID was declared twice.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrUndefinedAdjacency indicates that a declared arc references a
	// node that does not appear among the declared node IDs.
	ErrUndefinedAdjacency = errors.New("core: adjacency references undefined node")
)

// Arc is one declared adjacency entry: a neighbor ID and the edge value
// toward it. The value is a cost or a bandwidth depending on how the
// caller routes; core does not interpret it beyond storage.
type Arc struct {
	// To is the neighbor node ID.
	To string

	// Weight is the declared edge value toward To.
	Weight int64
}

// NodeSpec declares one node and its outgoing arcs, in order.
type NodeSpec struct {
	// ID uniquely identifies the node within its Spec.
	ID string

	// Arcs lists the node's declared adjacency, in declaration order.
	Arcs []Arc
}

// Spec is the caller's full graph declaration. It is ordered: node and
// arc positions decide index assignment and traversal tie-breaking.
// A Spec is never mutated by this package.
type Spec []NodeSpec

// Edge is a resolved adjacency entry inside a Graph: the neighbor is
// addressed by its dense node index rather than by ID.
type Edge struct {
	// To is the index of the neighbor node.
	To int

	// Weight is the declared edge value toward To.
	Weight int64
}

// GraphOption configures a Graph before validation runs.
type GraphOption func(*Graph)

// WithDirected sets whether edge values are used per direction as
// declared (true, the default) or symmetrized across reciprocal arcs by
// the routing layer (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the validated, immutable node arena built from a Spec.
//
// Nodes are addressed by dense index in declaration order; declared arcs
// are stored index-based. Graph carries no per-request computed state —
// routing results live in route.Result — so concurrent readers need no
// synchronization.
type Graph struct {
	directed bool

	ids   []string       // index → node ID, in declaration order
	index map[string]int // node ID → index

	// edges[i] holds node i's declared arcs, resolved to indices,
	// in declaration order.
	edges [][]Edge
}
