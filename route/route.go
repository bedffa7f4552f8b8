// Package route implements the breadth-first traversal with in-line
// relaxation that computes every node's distance, cost, bandwidth, and
// upstream pointer relative to a chosen source.
package route

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvlroute/core"
)

// Route computes, from the request's source node, the optimal path values
// to every node of g under the request's objective. It accepts functional
// options to customize behavior (Source, Target, WithObjective,
// WithLogger).
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Objective must be one of the declared enum values (ErrBadObjective).
//  4. Source — and Target, when set — must be declared nodes
//     (ErrUnknownNode).
//
// Validation happens before any state is built; a failed request has no
// effect. On success the returned Result holds the full routing tree:
// query any node through Result.PathTo.
//
// A single call is strictly single-threaded; because all computed state
// lives in the Result and g is immutable, independent calls on the same
// graph may run concurrently.
//
// Complexity: O(V·E) worst case — the relaxation scan revisits every
// visited node's adjacency on each dequeue.
func Route(g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions("")
	for _, opt := range opts {
		opt(&o)
	}

	if o.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if o.Objective < MinHops || o.Objective > MaxBandwidth {
		return nil, fmt.Errorf("%w: %d", ErrBadObjective, int(o.Objective))
	}
	src, ok := g.Index(o.Source)
	if !ok {
		return nil, fmt.Errorf("%w: source %q", ErrUnknownNode, o.Source)
	}
	if o.Target != "" && !g.Has(o.Target) {
		return nil, fmt.Errorf("%w: target %q", ErrUnknownNode, o.Target)
	}

	n := g.NodeCount()
	res := &Result{
		g:         g,
		objective: o.Objective,
		source:    o.Source,
		target:    o.Target,
		hops:      make([]int, n),
		cost:      make([]int64, n),
		bandwidth: make([]int64, n),
		upstream:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.hops[i] = Unreached
		res.cost[i] = Unreached
		res.bandwidth[i] = UnboundedBandwidth
		res.upstream[i] = none
	}

	r := &runner{
		res:   res,
		pol:   o.Objective.policy(),
		adj:   Adjacency(g, o.Objective),
		log:   o.Logger,
		queue: make([]int, 0, n),
	}
	r.run(src)

	return res, nil
}

// policy bundles the objective-specific formulas: how a reciprocal arc
// pair merges into one symmetric weight, when routing a node through a
// new upstream improves it, and how the node's values are rewritten on
// improvement. Keeping the formulas as data keeps the traversal itself
// objective-agnostic.
type policy struct {
	merge    func(out, back int64) int64
	improves func(res *Result, m, n int, w int64) bool
	adopt    func(res *Result, m, n int, w int64)
}

func (o Objective) policy() policy {
	switch o {
	case MaxBandwidth:
		return policy{
			merge: func(out, back int64) int64 { return max(out, back) },
			improves: func(res *Result, m, n int, w int64) bool {
				// A fatter pipe exists only if the candidate upstream has
				// one AND the connecting edge itself is one.
				return res.bandwidth[m] > res.bandwidth[n] && w > res.bandwidth[n]
			},
			adopt: func(res *Result, m, n int, w int64) {
				res.upstream[n] = m
				res.bandwidth[n] = min(res.bandwidth[m], w)
				res.cost[n] = res.cost[m] + w
				res.hops[n] = res.hops[m] + 1
			},
		}
	case MinCost:
		return policy{
			merge: func(out, back int64) int64 { return min(out, back) },
			improves: func(res *Result, m, n int, w int64) bool {
				return res.cost[m]+w < res.cost[n]
			},
			adopt: func(res *Result, m, n int, w int64) {
				res.upstream[n] = m
				res.cost[n] = res.cost[m] + w
				res.bandwidth[n] = min(res.bandwidth[m], w)
				// Hop count advances from n's own current level, not the
				// new upstream's. Kept as-is; see DESIGN.md, "MinCost hop
				// accounting".
				res.hops[n]++
			},
		}
	default: // MinHops: first-discovery order is already hop-optimal,
		// so the relaxation scan never fires.
		return policy{
			merge:    func(out, back int64) int64 { return min(out, back) },
			improves: func(*Result, int, int, int64) bool { return false },
			adopt:    func(*Result, int, int, int64) {},
		}
	}
}

// runner holds the mutable state of a single traversal.
type runner struct {
	res   *Result
	pol   policy
	adj   [][]core.Edge // per-request adjacency, symmetrized when undirected
	log   *slog.Logger
	queue []int // FIFO: first-discovered node is processed first
}

// run seeds the source and drains the queue. Nodes are enqueued exactly
// once, on first discovery; relaxation keeps improving nodes that are
// discovered but not yet processed.
func (r *runner) run(src int) {
	r.res.hops[src] = 0
	r.res.cost[src] = 0
	r.queue = append(r.queue, src)

	for len(r.queue) > 0 {
		n := r.dequeue()
		r.log.Debug("processing node", "id", r.res.g.ID(n))
		r.relaxScan(n)
		r.expand(n)
	}
}

// dequeue pops the oldest queued node.
func (r *runner) dequeue() int {
	n := r.queue[0]
	r.queue = r.queue[1:]

	return n
}

// relaxScan re-tests n against every already-visited node m holding an
// edge into n, before n's own neighbors are expanded: upstream nodes
// must carry their best values before the next layer inherits them.
func (r *runner) relaxScan(n int) {
	res := r.res
	for m := range r.adj {
		if res.hops[m] == Unreached {
			continue
		}
		for _, e := range r.adj[m] {
			if e.To != n || !r.pol.improves(res, m, n, e.Weight) {
				continue
			}
			r.pol.adopt(res, m, n, e.Weight)
			r.log.Debug("better route adopted",
				"id", res.g.ID(n),
				"via", res.g.ID(m),
				"cost", res.cost[n],
				"bandwidth", res.bandwidth[n])
		}
	}
}

// expand discovers n's unvisited neighbors: each inherits its first
// values straight from n and joins the queue.
func (r *runner) expand(n int) {
	res := r.res
	for _, e := range r.adj[n] {
		if res.hops[e.To] != Unreached {
			continue
		}
		res.hops[e.To] = res.hops[n] + 1
		res.upstream[e.To] = n
		res.bandwidth[e.To] = min(res.bandwidth[n], e.Weight)
		res.cost[e.To] = res.cost[n] + e.Weight
		r.log.Debug("appending node", "id", res.g.ID(e.To))
		r.queue = append(r.queue, e.To)
	}
}
