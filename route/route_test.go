package route_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/route"
)

// referenceSpec is the seven-node graph used throughout the module's
// tests: two connected components ({a..e} and {f,g}).
func referenceSpec() core.Spec {
	return core.Spec{
		{ID: "a", Arcs: []core.Arc{{To: "b", Weight: 3}}},
		{ID: "b", Arcs: []core.Arc{{To: "a", Weight: 5}, {To: "c", Weight: 5}, {To: "d", Weight: 9}}},
		{ID: "c", Arcs: []core.Arc{{To: "b", Weight: 23}, {To: "d", Weight: 7}}},
		{ID: "d", Arcs: []core.Arc{{To: "b", Weight: 1}, {To: "c", Weight: 6}}},
		{ID: "e", Arcs: []core.Arc{{To: "d", Weight: 8}}},
		{ID: "f", Arcs: []core.Arc{{To: "g", Weight: 8}}},
		{ID: "g", Arcs: []core.Arc{{To: "f", Weight: 10}}},
	}
}

func referenceGraph(t *testing.T, directed bool) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(referenceSpec(), core.WithDirected(directed))
	if err != nil {
		t.Fatalf("building reference graph: %v", err)
	}

	return g
}

// wantPath asserts one reconstructed path and its metric triple.
func wantPath(t *testing.T, res *route.Result, id string, nodes []string, cost, bandwidth int64, hops int) {
	t.Helper()
	p, err := res.PathTo(id)
	if err != nil {
		t.Fatalf("PathTo(%q): %v", id, err)
	}
	if !reflect.DeepEqual(p.Nodes, nodes) {
		t.Errorf("PathTo(%q).Nodes = %v; want %v", id, p.Nodes, nodes)
	}
	if p.Cost != cost {
		t.Errorf("PathTo(%q).Cost = %d; want %d", id, p.Cost, cost)
	}
	if p.Bandwidth != bandwidth {
		t.Errorf("PathTo(%q).Bandwidth = %d; want %d", id, p.Bandwidth, bandwidth)
	}
	if p.Hops != hops {
		t.Errorf("PathTo(%q).Hops = %d; want %d", id, p.Hops, hops)
	}
}

// TestRoute_Errors verifies that invalid requests are rejected before any
// state is built.
func TestRoute_Errors(t *testing.T) {
	g := referenceGraph(t, true)

	// missing source
	if _, err := route.Route(g); !errors.Is(err, route.ErrEmptySource) {
		t.Errorf("no source: want ErrEmptySource, got %v", err)
	}
	// nil graph
	if _, err := route.Route(nil, route.Source("a")); !errors.Is(err, route.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	// objective outside the enum
	if _, err := route.Route(g, route.Source("a"), route.WithObjective(route.Objective(42))); !errors.Is(err, route.ErrBadObjective) {
		t.Errorf("bad objective: want ErrBadObjective, got %v", err)
	}
	// undeclared source
	if _, err := route.Route(g, route.Source("ghost")); !errors.Is(err, route.ErrUnknownNode) {
		t.Errorf("unknown source: want ErrUnknownNode, got %v", err)
	}
	// undeclared target
	if _, err := route.Route(g, route.Source("a"), route.Target("ghost")); !errors.Is(err, route.ErrUnknownNode) {
		t.Errorf("unknown target: want ErrUnknownNode, got %v", err)
	}
}

// TestRoute_RootIdentity checks the source node's values after any
// successful request: itself as the whole path, zero hops, zero cost,
// bandwidth at the unbounded sentinel.
func TestRoute_RootIdentity(t *testing.T) {
	for _, obj := range []route.Objective{route.MinHops, route.MinCost, route.MaxBandwidth} {
		for _, directed := range []bool{true, false} {
			res, err := route.Route(referenceGraph(t, directed), route.Source("a"), route.WithObjective(obj))
			if err != nil {
				t.Fatalf("%v directed=%v: %v", obj, directed, err)
			}
			wantPath(t, res, "a", []string{"a"}, 0, route.UnboundedBandwidth, 0)
		}
	}
}

// TestRoute_Unreachable checks the sentinel triple of a node with no
// path from the source. Absence of a path is not an error.
func TestRoute_Unreachable(t *testing.T) {
	res, err := route.Route(referenceGraph(t, true), route.Source("a"), route.WithObjective(route.MaxBandwidth))
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"e", "f", "g"} {
		wantPath(t, res, id, []string{id}, route.Unreached, route.UnboundedBandwidth, route.Unreached)
		reached, err := res.Reached(id)
		if err != nil {
			t.Fatal(err)
		}
		if reached {
			t.Errorf("Reached(%q) = true; want false", id)
		}
	}
	// the source also reads bandwidth 999; Reached disambiguates
	if reached, _ := res.Reached("a"); !reached {
		t.Error("Reached(a) = false; want true")
	}
}

// TestRoute_DirectedMaxBandwidth covers the reference scenario: widest
// paths from a over the directed graph.
func TestRoute_DirectedMaxBandwidth(t *testing.T) {
	res, err := route.Route(referenceGraph(t, true),
		route.Source("a"), route.Target("c"), route.WithObjective(route.MaxBandwidth))
	if err != nil {
		t.Fatal(err)
	}

	wantPath(t, res, "c", []string{"a", "b", "c"}, 8, 3, 2)
	wantPath(t, res, "b", []string{"a", "b"}, 3, 3, 1)
	wantPath(t, res, "d", []string{"a", "b", "d"}, 12, 3, 2)
	wantPath(t, res, "e", []string{"e"}, route.Unreached, route.UnboundedBandwidth, route.Unreached)

	// Target was set, so Path() answers for c directly.
	p, err := res.Path()
	if err != nil {
		t.Fatalf("Path(): %v", err)
	}
	if !reflect.DeepEqual(p.Nodes, []string{"a", "b", "c"}) {
		t.Errorf("Path().Nodes = %v; want [a b c]", p.Nodes)
	}
}

// TestRoute_UndirectedMinCost covers the reference scenario: least-cost
// paths from a after min-merge symmetrization. The one-sided e→d
// declaration is mirrored, so e becomes reachable.
func TestRoute_UndirectedMinCost(t *testing.T) {
	res, err := route.Route(referenceGraph(t, false),
		route.Source("a"), route.WithObjective(route.MinCost))
	if err != nil {
		t.Fatal(err)
	}

	wantPath(t, res, "d", []string{"a", "b", "d"}, 4, 1, 2)
	wantPath(t, res, "e", []string{"a", "b", "d", "e"}, 12, 1, 3)
	wantPath(t, res, "c", []string{"a", "b", "c"}, 8, 3, 2)
	wantPath(t, res, "f", []string{"f"}, route.Unreached, route.UnboundedBandwidth, route.Unreached)
}

// TestRoute_UndirectedMaxBandwidth checks max-merge symmetrization: the
// a↔b pair collapses to the fatter declared value.
func TestRoute_UndirectedMaxBandwidth(t *testing.T) {
	res, err := route.Route(referenceGraph(t, false),
		route.Source("a"), route.WithObjective(route.MaxBandwidth))
	if err != nil {
		t.Fatal(err)
	}

	wantPath(t, res, "b", []string{"a", "b"}, 5, 5, 1)
	wantPath(t, res, "e", []string{"a", "b", "d", "e"}, 22, 5, 3)
}

// TestRoute_MinHops verifies plain breadth-first layering: the default
// objective, no relaxation.
func TestRoute_MinHops(t *testing.T) {
	res, err := route.Route(referenceGraph(t, true), route.Source("a"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Objective() != route.MinHops {
		t.Errorf("default objective = %v; want MinHops", res.Objective())
	}

	wantPath(t, res, "c", []string{"a", "b", "c"}, 8, 3, 2)
	wantPath(t, res, "d", []string{"a", "b", "d"}, 12, 3, 2)
	wantPath(t, res, "e", []string{"e"}, route.Unreached, route.UnboundedBandwidth, route.Unreached)
}

// TestRoute_BandwidthRelaxation forces the relaxation scan to fire: x is
// first discovered over a thin pipe from the root, then rewired through
// y's fatter one before x is processed.
func TestRoute_BandwidthRelaxation(t *testing.T) {
	g, err := core.NewGraph(core.Spec{
		{ID: "r", Arcs: []core.Arc{{To: "x", Weight: 1}, {To: "y", Weight: 10}}},
		{ID: "x"},
		{ID: "y", Arcs: []core.Arc{{To: "x", Weight: 10}}},
	})
	if err != nil {
		t.Fatal(err)
	}

	res, err := route.Route(g, route.Source("r"), route.WithObjective(route.MaxBandwidth))
	if err != nil {
		t.Fatal(err)
	}
	wantPath(t, res, "x", []string{"r", "y", "x"}, 20, 10, 2)
}

// TestRoute_MinCostRelaxationHops pins the historical MinCost hop
// accounting: each cost improvement bumps the node's hop count from its
// own level, so two successive improvements leave x at three hops even
// though its final path has two edges. See DESIGN.md, "MinCost hop
// accounting".
func TestRoute_MinCostRelaxationHops(t *testing.T) {
	g, err := core.NewGraph(core.Spec{
		{ID: "r", Arcs: []core.Arc{{To: "x", Weight: 10}, {To: "y", Weight: 1}, {To: "z", Weight: 3}}},
		{ID: "x"},
		{ID: "y", Arcs: []core.Arc{{To: "x", Weight: 8}}},
		{ID: "z", Arcs: []core.Arc{{To: "x", Weight: 1}}},
	})
	if err != nil {
		t.Fatal(err)
	}

	res, err := route.Route(g, route.Source("r"), route.WithObjective(route.MinCost))
	if err != nil {
		t.Fatal(err)
	}
	// improved r→x(10) → via y (cost 9) → via z (cost 4)
	wantPath(t, res, "x", []string{"r", "z", "x"}, 4, 1, 3)
}

// TestRoute_TriangleInequality checks the least-cost optimality
// condition on every edge of the final adjacency: a reached node is
// never more expensive than any reached in-neighbor plus the connecting
// edge.
func TestRoute_TriangleInequality(t *testing.T) {
	for _, directed := range []bool{true, false} {
		g := referenceGraph(t, directed)
		res, err := route.Route(g, route.Source("a"), route.WithObjective(route.MinCost))
		if err != nil {
			t.Fatal(err)
		}

		costs := pathMetrics(t, g, res)
		for u, edges := range route.Adjacency(g, route.MinCost) {
			for _, e := range edges {
				cu, cv := costs[g.ID(u)], costs[g.ID(e.To)]
				if cu.Cost == route.Unreached || cv.Cost == route.Unreached {
					continue
				}
				if cv.Cost > cu.Cost+e.Weight {
					t.Errorf("directed=%v: cost[%s]=%d > cost[%s]+%d",
						directed, g.ID(e.To), cv.Cost, g.ID(u), e.Weight)
				}
			}
		}
	}
}

// TestRoute_BottleneckOptimality checks the widest-path optimality
// condition on every edge of the final adjacency.
func TestRoute_BottleneckOptimality(t *testing.T) {
	for _, directed := range []bool{true, false} {
		g := referenceGraph(t, directed)
		res, err := route.Route(g, route.Source("a"), route.WithObjective(route.MaxBandwidth))
		if err != nil {
			t.Fatal(err)
		}

		metrics := pathMetrics(t, g, res)
		for u, edges := range route.Adjacency(g, route.MaxBandwidth) {
			for _, e := range edges {
				mu, mv := metrics[g.ID(u)], metrics[g.ID(e.To)]
				if mu.Hops == route.Unreached || mv.Hops == route.Unreached {
					continue
				}
				if floor := min(mu.Bandwidth, e.Weight); mv.Bandwidth < floor {
					t.Errorf("directed=%v: bandwidth[%s]=%d < min(bandwidth[%s], %d)",
						directed, g.ID(e.To), mv.Bandwidth, g.ID(u), e.Weight)
				}
			}
		}
	}
}

// TestRoute_PathConsistency checks that every reached node's
// reconstructed path starts at the source and that its last two elements
// form an edge of the final adjacency.
func TestRoute_PathConsistency(t *testing.T) {
	for _, obj := range []route.Objective{route.MinHops, route.MinCost, route.MaxBandwidth} {
		for _, directed := range []bool{true, false} {
			g := referenceGraph(t, directed)
			res, err := route.Route(g, route.Source("a"), route.WithObjective(obj))
			if err != nil {
				t.Fatal(err)
			}
			adj := route.Adjacency(g, obj)

			for _, id := range g.NodeIDs() {
				p, err := res.PathTo(id)
				if err != nil {
					t.Fatal(err)
				}
				if p.Hops == route.Unreached || len(p.Nodes) < 2 {
					continue
				}
				if p.Nodes[0] != "a" {
					t.Errorf("%v directed=%v: path to %s starts at %s", obj, directed, id, p.Nodes[0])
				}
				u, _ := g.Index(p.Nodes[len(p.Nodes)-2])
				v, _ := g.Index(p.Nodes[len(p.Nodes)-1])
				if !hasEdge(adj, u, v) {
					t.Errorf("%v directed=%v: path to %s ends on a non-edge %s→%s",
						obj, directed, id, p.Nodes[len(p.Nodes)-2], p.Nodes[len(p.Nodes)-1])
				}
			}
		}
	}
}

// TestRoute_PathToUnknown verifies the reconstructor rejects undeclared
// node IDs.
func TestRoute_PathToUnknown(t *testing.T) {
	res, err := route.Route(referenceGraph(t, true), route.Source("a"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := res.PathTo("ghost"); !errors.Is(err, route.ErrUnknownNode) {
		t.Errorf("PathTo(ghost): want ErrUnknownNode, got %v", err)
	}
	if _, err := res.Reached("ghost"); !errors.Is(err, route.ErrUnknownNode) {
		t.Errorf("Reached(ghost): want ErrUnknownNode, got %v", err)
	}
	if _, err := res.Path(); !errors.Is(err, route.ErrNoTarget) {
		t.Errorf("Path() without target: want ErrNoTarget, got %v", err)
	}
}

// TestRoute_ConcurrentRequests ensures independent requests on one graph
// do not interfere: all state lives in each Result.
func TestRoute_ConcurrentRequests(t *testing.T) {
	g := referenceGraph(t, true)
	errs := make(chan error, 2)
	for _, obj := range []route.Objective{route.MinCost, route.MaxBandwidth} {
		go func(obj route.Objective) {
			res, err := route.Route(g, route.Source("a"), route.WithObjective(obj))
			if err == nil {
				_, err = res.PathTo("c")
			}
			errs <- err
		}(obj)
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("concurrent request #%d: %v", i, err)
		}
	}
}

// TestObjective_Text covers the text round-trip used by graphfile and
// the CLI.
func TestObjective_Text(t *testing.T) {
	for _, obj := range []route.Objective{route.MinHops, route.MinCost, route.MaxBandwidth} {
		text, err := obj.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back route.Objective
		if err := back.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if back != obj {
			t.Errorf("round-trip %v → %s → %v", obj, text, back)
		}
	}
	if _, err := route.ParseObjective("fastest"); !errors.Is(err, route.ErrBadObjective) {
		t.Errorf("ParseObjective(fastest): want ErrBadObjective, got %v", err)
	}
	if _, err := route.Objective(42).MarshalText(); !errors.Is(err, route.ErrBadObjective) {
		t.Errorf("MarshalText(42): want ErrBadObjective, got %v", err)
	}
}

// pathMetrics collects every node's reconstructed Path keyed by ID.
func pathMetrics(t *testing.T, g *core.Graph, res *route.Result) map[string]route.Path {
	t.Helper()
	out := make(map[string]route.Path, g.NodeCount())
	for _, id := range g.NodeIDs() {
		p, err := res.PathTo(id)
		if err != nil {
			t.Fatal(err)
		}
		out[id] = p
	}

	return out
}

// hasEdge reports whether adjacency adj contains an edge u→v.
func hasEdge(adj [][]core.Edge, u, v int) bool {
	for _, e := range adj[u] {
		if e.To == v {
			return true
		}
	}

	return false
}
