package blame

import (
	"slices"

	"github.com/FedericoCeratto/debian-slimmer/pkg/pkggraph"
)

// DefaultTopN is the number of packages reported when no count is given.
const DefaultTopN = 50

// Entry is one line of the final ranking: a root package and the total
// disk usage attributed to it.
type Entry struct {
	Name string
	Size float64 // bytes
}

// Roots returns every package that nothing depends on, in record order.
// Parent sets are fixed at build time, so Roots can be called at any
// point; the node sizes are only meaningful after [Engine.Run].
func Roots(g *pkggraph.Graph) []*pkggraph.Node {
	var roots []*pkggraph.Node
	for _, name := range g.Names() {
		n, _ := g.Node(name)
		if len(n.Parents()) == 0 {
			roots = append(roots, n)
		}
	}
	return roots
}

// Rank sorts roots by attributed size, largest first, and truncates to
// the top n entries. Ties are broken by name so the output is
// deterministic. A count <= 0 means DefaultTopN.
func Rank(roots []*pkggraph.Node, n int) []Entry {
	if n <= 0 {
		n = DefaultTopN
	}

	entries := make([]Entry, len(roots))
	for i, r := range roots {
		entries[i] = Entry{Name: r.Name(), Size: r.Size()}
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		switch {
		case a.Size > b.Size:
			return -1
		case a.Size < b.Size:
			return 1
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
