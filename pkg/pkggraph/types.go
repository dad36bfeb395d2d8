package pkggraph

// Record describes one installed package as reported by the package
// database. InstalledSize is the package's own on-disk footprint in bytes,
// excluding anything attributed to it later. Each element of Depends is an
// OR-group: an ordered list of alternative package names, any one of which
// satisfies the dependency.
type Record struct {
	Name          string
	InstalledSize int64
	Depends       [][]string
}

// Node is one package in the dependency graph.
//
// A node is in one of two states: pending, where Size holds all disk usage
// currently attributed to it (its own footprint plus blame received from
// dependencies), or collapsed, where its size has been fully redistributed
// to its parents and it must not send or receive any further blame. The
// two states are explicit so that a zero size is never confused with
// "already redistributed".
type Node struct {
	name      string
	size      float64
	collapsed bool

	children []string // packages this node depends on, insertion order
	parents  []string // packages depending on this node, insertion order
}

// Name returns the package name.
func (n *Node) Name() string { return n.name }

// Size returns the disk usage currently attributed to this node.
// The value is only meaningful while the node is pending.
func (n *Node) Size() float64 { return n.size }

// Collapsed reports whether this node's size has already been
// redistributed to its parents.
func (n *Node) Collapsed() bool { return n.collapsed }

// AddBlame attributes additional bytes to this node. Blame directed at a
// collapsed node is dropped, preserving the invariant that collapsed
// nodes never act as a size sink.
func (n *Node) AddBlame(bytes float64) {
	if n.collapsed {
		return
	}
	n.size += bytes
}

// Collapse marks the node as fully redistributed and returns the size it
// held. Collapsing an already collapsed node returns 0.
func (n *Node) Collapse() float64 {
	if n.collapsed {
		return 0
	}
	n.collapsed = true
	size := n.size
	n.size = 0
	return size
}

// Children returns the names of packages this node depends on.
// The returned slice is a read-only view and must not be modified.
func (n *Node) Children() []string { return n.children }

// Parents returns the names of packages that depend on this node.
// The returned slice is a read-only view and must not be modified.
func (n *Node) Parents() []string { return n.parents }
