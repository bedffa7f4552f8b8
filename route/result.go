package route

import (
	"fmt"

	"github.com/katalvlaran/lvlroute/core"
)

// none marks the absence of an upstream node: the source itself, or a
// node the traversal never reached.
const none = -1

// Result holds the full routing tree of one completed request: every
// node's hop count, cumulative cost, bottleneck bandwidth, and upstream
// pointer relative to the source. It is read-only after Route returns.
type Result struct {
	g         *core.Graph
	objective Objective
	source    string
	target    string

	hops      []int
	cost      []int64
	bandwidth []int64
	upstream  []int // index of the next node toward the source; none at the source and at unreached nodes
}

// Path is one reconstructed route, read source→destination.
//
// For an unreached destination, Nodes holds only the destination itself
// and the metrics are the sentinels: Cost == Unreached,
// Bandwidth == UnboundedBandwidth, Hops == Unreached.
type Path struct {
	// Nodes lists the node IDs along the route, source first.
	Nodes []string

	// Cost is the cumulative edge value along the route.
	Cost int64

	// Bandwidth is the smallest edge value along the route.
	Bandwidth int64

	// Hops is the number of edges along the route.
	Hops int
}

// Objective returns the objective this result was computed under.
func (r *Result) Objective() Objective { return r.objective }

// Source returns the root node ID of the request.
func (r *Result) Source() string { return r.source }

// Target returns the request's default destination, or "" if none.
func (r *Result) Target() string { return r.target }

// Reached reports whether id has a path from the source. The source
// itself counts as reached. Use this to disambiguate
// UnboundedBandwidth, which reads 999 both at the source and at
// unreached nodes.
func (r *Result) Reached(id string) (bool, error) {
	i, ok := r.g.Index(id)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return r.hops[i] != Unreached, nil
}

// PathTo reconstructs the route from the source to id by walking
// upstream pointers and reversing, together with the destination's final
// metrics. Absence of a path is not an error: the sentinel Path
// documented on the Path type is returned instead. Only an undeclared id
// fails, with ErrUnknownNode.
//
// Complexity: O(L) where L is the path length; upstream chains are
// acyclic and terminate within NodeCount steps.
func (r *Result) PathTo(id string) (Path, error) {
	i, ok := r.g.Index(id)
	if !ok {
		return Path{}, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	nodes := []string{r.g.ID(i)}
	for cur := i; r.upstream[cur] != none; {
		cur = r.upstream[cur]
		nodes = append(nodes, r.g.ID(cur))
	}
	// collected destination-first; flip to read source→destination
	for a, b := 0, len(nodes)-1; a < b; a, b = a+1, b-1 {
		nodes[a], nodes[b] = nodes[b], nodes[a]
	}

	return Path{
		Nodes:     nodes,
		Cost:      r.cost[i],
		Bandwidth: r.bandwidth[i],
		Hops:      r.hops[i],
	}, nil
}

// Path reconstructs the route to the request's Target.
// Returns ErrNoTarget if the request carried none.
func (r *Result) Path() (Path, error) {
	if r.target == "" {
		return Path{}, ErrNoTarget
	}

	return r.PathTo(r.target)
}
