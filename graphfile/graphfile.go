// Package graphfile reads YAML documents describing a graph and the
// routing requests to run against it.
//
// A document looks like:
//
//	directed: true
//	nodes:
//	  - id: a
//	    arcs: [ { to: b, weight: 3 } ]
//	  - id: b
//	    arcs: [ { to: a, weight: 5 } ]
//	requests:
//	  - { source: a, target: b, objective: max-bandwidth }
//
// The objective field takes the canonical text forms of route.Objective
// ("min-hops", "min-cost", "max-bandwidth") and defaults to min-hops
// when omitted. Node order in the file is preserved into the core.Spec,
// so traversal tie-breaking matches the document.
package graphfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/route"
)

// ErrNoNodes is returned when a document declares no nodes at all.
var ErrNoNodes = errors.New("graphfile: document declares no nodes")

// Arc is one adjacency entry of a node in the document.
type Arc struct {
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// Node declares one node and its outgoing arcs.
type Node struct {
	ID   string `yaml:"id"`
	Arcs []Arc  `yaml:"arcs"`
}

// Request is one routing request to run against the document's graph.
type Request struct {
	Source    string          `yaml:"source"`
	Target    string          `yaml:"target"`
	Objective route.Objective `yaml:"objective"`
}

// Document is a fully parsed graph file.
type Document struct {
	Directed bool      `yaml:"directed"`
	Nodes    []Node    `yaml:"nodes"`
	Requests []Request `yaml:"requests"`
}

// Parse decodes a YAML graph document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("graphfile: decoding document: %w", err)
	}
	if len(doc.Nodes) == 0 {
		return nil, ErrNoNodes
	}

	return &doc, nil
}

// Load reads and parses the YAML graph document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: reading %s: %w", path, err)
	}

	return Parse(data)
}

// Spec converts the document's node declarations into a core.Spec,
// preserving declaration order.
func (d *Document) Spec() core.Spec {
	spec := make(core.Spec, 0, len(d.Nodes))
	for _, n := range d.Nodes {
		arcs := make([]core.Arc, 0, len(n.Arcs))
		for _, a := range n.Arcs {
			arcs = append(arcs, core.Arc{To: a.To, Weight: a.Weight})
		}
		spec = append(spec, core.NodeSpec{ID: n.ID, Arcs: arcs})
	}

	return spec
}

// Graph validates the document and builds its core.Graph.
func (d *Document) Graph() (*core.Graph, error) {
	return core.NewGraph(d.Spec(), core.WithDirected(d.Directed))
}
