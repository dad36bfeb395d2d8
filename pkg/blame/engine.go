package blame

import (
	"github.com/FedericoCeratto/debian-slimmer/pkg/pkggraph"
)

// DefaultMaxDepth is the traversal depth at which descent stops and
// dependency loops are broken.
const DefaultMaxDepth = 10

// TraceFunc receives traversal events for debugging. The depth argument
// is the nesting level, for indented output.
type TraceFunc func(depth int, format string, args ...any)

// Engine runs blame reassignment over a dependency graph.
// The zero value is usable and applies DefaultMaxDepth with no tracing.
type Engine struct {
	// MaxDepth bounds descent per traversal entry. Values <= 0 mean
	// DefaultMaxDepth.
	MaxDepth int

	// Trace, when non-nil, receives one event per node visit, depth
	// cutoff, and collapse. Tracing does not affect results.
	Trace TraceFunc
}

// Run redistributes size until every package with at least one dependent
// is collapsed. The traversal is entered once per node, in record order;
// entering an already collapsed node is a no-op, so Run is idempotent and
// does not depend on root detection.
func (e *Engine) Run(g *pkggraph.Graph) {
	maxDepth := e.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	for _, name := range g.Names() {
		n, _ := g.Node(name)
		e.reassign(g, n, maxDepth)
	}
}

// frame is one node being visited, with the index of the next child to
// descend into.
type frame struct {
	node  *pkggraph.Node
	next  int
	depth int
}

// reassign performs one depth-bounded postorder traversal from start,
// using an explicit stack so that graphs of any size stay within host
// stack limits.
func (e *Engine) reassign(g *pkggraph.Graph, start *pkggraph.Node, maxDepth int) {
	stack := []frame{{node: start}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		n := f.node

		if n.Collapsed() {
			// Already redistributed, either before this entry or while
			// a descendant loop was being unwound.
			stack = stack[:len(stack)-1]
			continue
		}

		if f.next == 0 {
			e.trace(f.depth, "%s", n.Name())
		}

		children := n.Children()
		if f.next < len(children) {
			if f.depth == maxDepth {
				// Break dependency loops: leave the remaining children
				// pending, to be collapsed via another entry point.
				for _, skipped := range children[f.next:] {
					e.trace(f.depth, "  skip dep %s", skipped)
				}
			} else {
				child := children[f.next]
				f.next++
				c, ok := g.Node(child)
				if ok {
					stack = append(stack, frame{node: c, depth: f.depth + 1})
				}
				continue
			}
		}

		stack = stack[:len(stack)-1]
		e.collapse(g, n, f.depth)
	}
}

// collapse splits n's size equally among its parents and marks it
// collapsed. Roots have no parents and stay pending, accumulating blame
// across later collapses. A node whose parents have all collapsed
// already (the last survivor of a dependency loop) also stays pending,
// so the loop's total footprint is retained instead of vanishing.
func (e *Engine) collapse(g *pkggraph.Graph, n *pkggraph.Node, depth int) {
	parents := n.Parents()
	if len(parents) == 0 {
		return
	}

	pending := 0
	for _, name := range parents {
		if p, ok := g.Node(name); ok && !p.Collapsed() {
			pending++
		}
	}
	if pending == 0 {
		e.trace(depth, "  keeping residual, all %d parents collapsed", len(parents))
		return
	}

	// The split is over all parents, not just pending ones; shares
	// aimed at a collapsed parent are dropped.
	share := n.Size() / float64(len(parents))
	n.Collapse()
	e.trace(depth, "  uploading blame to %d parents", len(parents))

	for _, name := range parents {
		p, ok := g.Node(name)
		if !ok || p.Collapsed() {
			continue
		}
		p.AddBlame(share)
	}
}

func (e *Engine) trace(depth int, format string, args ...any) {
	if e.Trace != nil {
		e.Trace(depth, format, args...)
	}
}
