// Package route computes single-source optimal paths over a core.Graph
// under one of three interchangeable objectives, using a breadth-first
// traversal with in-line relaxation.
//
// What
//
//   - One Route call computes, for every node, its hop count, cumulative
//     cost, bottleneck bandwidth, and upstream pointer relative to the
//     source, optimized for the requested Objective:
//   - MinHops      — fewest edges (plain breadth-first layering)
//   - MinCost      — cheapest cumulative edge value
//   - MaxBandwidth — widest path (maximize the smallest pipe)
//   - Undirected graphs are symmetrized per request: reciprocal arc pairs
//     collapse to one shared weight (max for MaxBandwidth, min
//     otherwise), and one-sided declarations are mirrored. The merge rule
//     depends on the objective, which is why adjacency is rebuilt on
//     every request rather than once at construction.
//   - Paths are reconstructed on demand from the Result: PathTo walks
//     upstream pointers back to the source and reverses.
//
// Why
//
//   - Routing tables, spanning-tree-style reachability, and
//     widest-path capacity planning all fall out of the same traversal;
//     only the relaxation formulas differ, and those are dispatched
//     through a small per-objective policy.
//
// Sentinels
//
//	Unreached nodes keep Hops == -1 and Cost == -1. Bandwidth reads
//	UnboundedBandwidth (999) both at the source and at unreached nodes;
//	the bandwidth field alone cannot tell the two apart — cross-check the
//	hop count or call Result.Reached.
//
// Concurrency
//
//	A single Route call is strictly single-threaded with no suspension
//	points. All computed state lives in the returned Result and the
//	Graph is immutable, so independent Route calls on the same Graph may
//	run concurrently without locking.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V·E) worst case — every dequeue re-scans all visited
//     nodes' adjacency for relaxation candidates.
//   - Memory: O(V + E) for the per-request adjacency and the Result.
//
// Usage
//
//	res, err := route.Route(
//	    g,
//	    route.Source("a"),
//	    route.Target("c"),
//	    route.WithObjective(route.MaxBandwidth),
//	)
//	if err != nil {
//	    // handle one of:
//	    // ErrEmptySource, ErrNilGraph, ErrBadObjective, ErrUnknownNode
//	}
//	p, _ := res.Path() // or res.PathTo("d") for any other node
//
// Options
//
//   - DefaultOptions(src): MinHops objective, no target, discard logger.
//   - Source(id):          root node of the request (required).
//   - Target(id):          default destination for Result.Path.
//   - WithObjective(o):    pick MinHops, MinCost, or MaxBandwidth.
//   - WithLogger(l):       receive Debug-level traversal events.
//
// Errors
//
//   - ErrEmptySource  if no source was provided.
//   - ErrNilGraph     if the graph pointer is nil.
//   - ErrBadObjective if the objective is outside the declared enum.
//   - ErrUnknownNode  if source or target is not a declared node; also
//     returned by Result.PathTo and Result.Reached for undeclared IDs.
//   - ErrNoTarget     from Result.Path when the request had no target.
//
// Absence of a path is never an error: unreached nodes are a normal,
// representable outcome carrying the sentinel values above.
package route
