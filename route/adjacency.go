package route

import "github.com/katalvlaran/lvlroute/core"

// Adjacency derives the runtime adjacency one routing request traverses.
// Entry i holds node i's outgoing edges; the slices must not be modified.
//
// Directed graphs traverse their declared arcs as-is. Undirected graphs
// are symmetrized first: a reciprocal arc pair (u→v, v→u) collapses to a
// single shared weight — the larger of the two under MaxBandwidth, the
// smaller otherwise — installed on both endpoints. A one-sided
// declaration keeps its weight and gains a mirror arc on the other
// endpoint, so every undirected edge is walkable in both directions.
//
// The derivation always starts from the graph's immutable declared arcs,
// so rebuilding for the same graph and objective yields identical
// weights every time.
//
// Complexity: O(E·d) where d is the max out-degree (reciprocal lookup
// scans the neighbor's declared arcs).
func Adjacency(g *core.Graph, obj Objective) [][]core.Edge {
	if g == nil {
		return nil
	}
	n := g.NodeCount()
	adj := make([][]core.Edge, n)

	if g.Directed() {
		for i := 0; i < n; i++ {
			adj[i] = g.Edges(i)
		}

		return adj
	}

	merge := obj.policy().merge

	// First pass: emit each node's declared arcs in order, collapsing
	// reciprocal pairs to their merged weight.
	for i := 0; i < n; i++ {
		declared := g.Edges(i)
		out := make([]core.Edge, 0, len(declared))
		for _, e := range declared {
			w := e.Weight
			if back, ok := reciprocalWeight(g, e.To, i); ok {
				w = merge(e.Weight, back)
			}
			out = append(out, core.Edge{To: e.To, Weight: w})
		}
		adj[i] = out
	}

	// Second pass: mirror one-sided declarations onto the other endpoint,
	// after that endpoint's declared arcs.
	for i := 0; i < n; i++ {
		for _, e := range g.Edges(i) {
			if _, ok := reciprocalWeight(g, e.To, i); !ok {
				adj[e.To] = append(adj[e.To], core.Edge{To: i, Weight: e.Weight})
			}
		}
	}

	return adj
}

// reciprocalWeight returns the weight of the first declared from→to arc.
func reciprocalWeight(g *core.Graph, from, to int) (int64, bool) {
	for _, e := range g.Edges(from) {
		if e.To == to {
			return e.Weight, true
		}
	}

	return 0, false
}
