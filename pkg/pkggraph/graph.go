package pkggraph

import (
	"errors"
	"slices"
)

var (
	// ErrEmptyName is returned by [Build] when a record has no name.
	ErrEmptyName = errors.New("package name must not be empty")

	// ErrDuplicateName is returned by [Build] when two records share a name.
	// Package names are the graph keys and must be unique.
	ErrDuplicateName = errors.New("duplicate package name")

	// ErrNegativeSize is returned by [Build] when a record reports a
	// negative installed size.
	ErrNegativeSize = errors.New("installed size must not be negative")
)

// Graph is a dependency graph of installed packages keyed by name.
//
// The zero value is not usable - use Build. Graph is not safe for
// concurrent use; a single blame engine run owns it exclusively.
type Graph struct {
	nodes map[string]*Node
	order []string // node names in record order
}

// Build constructs a graph from package records.
//
// It runs two passes: the first creates a node per record, the second adds
// edges. Splitting the passes means edges can reference packages that
// appear later in the input. An edge is added only when the dependency
// alternative names an installed package; other alternatives are skipped
// without error. When several alternatives of one group are installed at
// once, each gets an edge, over-counting that group.
func Build(records []Record) (*Graph, error) {
	g := &Graph{nodes: make(map[string]*Node, len(records))}

	for _, r := range records {
		if r.Name == "" {
			return nil, ErrEmptyName
		}
		if r.InstalledSize < 0 {
			return nil, ErrNegativeSize
		}
		if _, exists := g.nodes[r.Name]; exists {
			return nil, ErrDuplicateName
		}
		g.nodes[r.Name] = &Node{name: r.Name, size: float64(r.InstalledSize)}
		g.order = append(g.order, r.Name)
	}

	for _, r := range records {
		parent := g.nodes[r.Name]
		for _, group := range r.Depends {
			for _, alt := range group {
				child, installed := g.nodes[alt]
				if !installed {
					// Alternative deps are not always installed.
					continue
				}
				g.addEdge(parent, child)
			}
		}
	}

	return g, nil
}

// addEdge links parent→child symmetrically, ignoring duplicates and
// self-edges.
func (g *Graph) addEdge(parent, child *Node) {
	if parent == child || slices.Contains(parent.children, child.name) {
		return
	}
	parent.children = append(parent.children, child.name)
	child.parents = append(child.parents, parent.name)
}

// Node returns the node with the given name and true, or nil and false if
// no such package is installed.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Names returns all package names in record order.
// The returned slice is a read-only view and must not be modified.
func (g *Graph) Names() []string { return g.order }

// Len returns the number of packages in the graph.
func (g *Graph) Len() int { return len(g.nodes) }
