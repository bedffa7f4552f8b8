// Package lvlroute computes, from a chosen root node, the optimal route
// to every other node of a weighted graph — under the objective you pick.
//
// 🚀 What is lvlroute?
//
//	A small, focused library that answers one question three ways:
//		• MinHops      — fewest edges between root and node
//		• MinCost      — cheapest cumulative edge cost
//		• MaxBandwidth — widest path (maximize the smallest pipe)
//
// It handles both directed graphs (edge values used per direction, as
// declared) and undirected graphs (reciprocal edge values symmetrized:
// the fatter pipe wins for bandwidth, the cheaper edge wins for cost).
//
// ✨ Why choose lvlroute?
//
//   - One traversal, every destination — a single Route call yields the
//     full routing tree; reconstruct any path from the Result.
//   - Immutable graphs — the node catalog never changes after NewGraph,
//     so concurrent Route calls need no locking.
//   - Pure Go engine — the only runtime dependencies live in the optional
//     CLI and file-format layers.
//
// Everything is organized under four subpackages:
//
//	core/       — graph specification, validation, and the node arena
//	route/      — symmetrization, BFS-with-relaxation engine, path queries
//	graphfile/  — YAML documents describing graphs and routing requests
//	cmd/        — the lvlroute command-line driver
//
// Quick ASCII example:
//
//	    a──3──b──5──c
//	          │     │
//	          9     7
//	          │     │
//	          └─────d
//
//	route.Route(g, route.Source("a"), route.WithObjective(route.MaxBandwidth))
//
// Dive into the package docs of core and route for the full contract,
// sentinel semantics, and worked examples.
package lvlroute
