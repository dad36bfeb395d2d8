package blame

import (
	"math"
	"testing"

	"github.com/FedericoCeratto/debian-slimmer/pkg/pkggraph"
)

// dep is shorthand for a single-alternative dependency group.
func dep(names ...string) [][]string {
	groups := make([][]string, len(names))
	for i, n := range names {
		groups[i] = []string{n}
	}
	return groups
}

func build(t *testing.T, records []pkggraph.Record) *pkggraph.Graph {
	t.Helper()
	g, err := pkggraph.Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func run(g *pkggraph.Graph) {
	e := &Engine{}
	e.Run(g)
}

func totalSize(records []pkggraph.Record) float64 {
	var sum float64
	for _, r := range records {
		sum += float64(r.InstalledSize)
	}
	return sum
}

func rootSum(g *pkggraph.Graph) float64 {
	var sum float64
	for _, r := range Roots(g) {
		sum += r.Size()
	}
	return sum
}

const eps = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) < eps }

func TestSumConservationAcyclic(t *testing.T) {
	tests := []struct {
		name    string
		records []pkggraph.Record
	}{
		{
			name: "Diamond",
			// A depends on B and C, both depend on D. D splits 4/4,
			// B and C end at 9 each, A ends at 28.
			records: []pkggraph.Record{
				{Name: "a", InstalledSize: 10, Depends: dep("b", "c")},
				{Name: "b", InstalledSize: 5, Depends: dep("d")},
				{Name: "c", InstalledSize: 5, Depends: dep("d")},
				{Name: "d", InstalledSize: 8},
			},
		},
		{
			name: "Chain",
			records: []pkggraph.Record{
				{Name: "a", InstalledSize: 1, Depends: dep("b")},
				{Name: "b", InstalledSize: 2, Depends: dep("c")},
				{Name: "c", InstalledSize: 3},
			},
		},
		{
			name: "TwoRootsSharedDep",
			records: []pkggraph.Record{
				{Name: "a", InstalledSize: 100, Depends: dep("lib")},
				{Name: "b", InstalledSize: 200, Depends: dep("lib")},
				{Name: "lib", InstalledSize: 50},
			},
		},
		{
			name: "WideFanOut",
			records: []pkggraph.Record{
				{Name: "root", InstalledSize: 7, Depends: dep("x", "y", "z")},
				{Name: "x", InstalledSize: 11},
				{Name: "y", InstalledSize: 13},
				{Name: "z", InstalledSize: 17},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.records)
			run(g)
			if got, want := rootSum(g), totalSize(tt.records); !almostEqual(got, want) {
				t.Errorf("root size sum = %v, want %v", got, want)
			}
		})
	}
}

func TestDiamondExactSizes(t *testing.T) {
	g := build(t, []pkggraph.Record{
		{Name: "a", InstalledSize: 10, Depends: dep("b", "c")},
		{Name: "b", InstalledSize: 5, Depends: dep("d")},
		{Name: "c", InstalledSize: 5, Depends: dep("d")},
		{Name: "d", InstalledSize: 8},
	})
	run(g)

	a, _ := g.Node("a")
	if !almostEqual(a.Size(), 28) {
		t.Errorf("a.Size() = %v, want 28", a.Size())
	}
	for _, name := range []string{"b", "c", "d"} {
		n, _ := g.Node(name)
		if !n.Collapsed() {
			t.Errorf("%s should be collapsed", name)
		}
	}
}

func TestLeafRootKeepsOwnSize(t *testing.T) {
	g := build(t, []pkggraph.Record{
		{Name: "standalone", InstalledSize: 42},
		{Name: "a", InstalledSize: 1, Depends: dep("b")},
		{Name: "b", InstalledSize: 2},
	})
	run(g)

	n, _ := g.Node("standalone")
	if n.Collapsed() {
		t.Fatal("standalone should stay pending")
	}
	if !almostEqual(n.Size(), 42) {
		t.Errorf("standalone.Size() = %v, want 42", n.Size())
	}
}

func TestRootDetectionMatchesCollapseState(t *testing.T) {
	records := []pkggraph.Record{
		{Name: "top1", InstalledSize: 1, Depends: dep("mid")},
		{Name: "top2", InstalledSize: 2, Depends: dep("mid")},
		{Name: "mid", InstalledSize: 3, Depends: dep("leaf")},
		{Name: "leaf", InstalledSize: 4},
		{Name: "lone", InstalledSize: 5},
	}
	g := build(t, records)

	// Parent sets never mutate, so roots computed before the run must
	// match the pending set after it.
	wantRoots := map[string]bool{}
	for _, r := range Roots(g) {
		wantRoots[r.Name()] = true
	}

	run(g)

	for _, name := range g.Names() {
		n, _ := g.Node(name)
		if wantRoots[name] == n.Collapsed() {
			t.Errorf("%s: root=%v collapsed=%v", name, wantRoots[name], n.Collapsed())
		}
	}
}

func TestEqualSplitFairness(t *testing.T) {
	// shared has 4 parents and size 100; each parent must receive 25.
	records := []pkggraph.Record{
		{Name: "p1", InstalledSize: 1, Depends: dep("shared")},
		{Name: "p2", InstalledSize: 2, Depends: dep("shared")},
		{Name: "p3", InstalledSize: 3, Depends: dep("shared")},
		{Name: "p4", InstalledSize: 4, Depends: dep("shared")},
		{Name: "shared", InstalledSize: 100},
	}
	g := build(t, records)
	run(g)

	var received float64
	for i, name := range []string{"p1", "p2", "p3", "p4"} {
		n, _ := g.Node(name)
		own := float64(i + 1)
		got := n.Size() - own
		if !almostEqual(got, 25) {
			t.Errorf("%s received %v, want 25", name, got)
		}
		received += got
	}
	if !almostEqual(received, 100) {
		t.Errorf("total received = %v, want 100", received)
	}
}

func TestCycleTermination(t *testing.T) {
	// Two mutually dependent packages with no external parents. The run
	// must terminate within the depth bound and keep a strictly positive
	// amount of size inside the cluster.
	g := build(t, []pkggraph.Record{
		{Name: "a", InstalledSize: 10, Depends: dep("b")},
		{Name: "b", InstalledSize: 10, Depends: dep("a")},
	})
	run(g)

	a, _ := g.Node("a")
	b, _ := g.Node("b")

	var remaining float64
	pending := 0
	for _, n := range []*pkggraph.Node{a, b} {
		if !n.Collapsed() {
			pending++
			remaining += n.Size()
		}
	}
	if pending == 0 {
		t.Fatal("cycle lost all blame: every node collapsed")
	}
	if remaining <= 0 {
		t.Errorf("remaining size in cycle = %v, want > 0", remaining)
	}
}

func TestThreeNodeCycleWithExternalRoot(t *testing.T) {
	g := build(t, []pkggraph.Record{
		{Name: "app", InstalledSize: 1, Depends: dep("x")},
		{Name: "x", InstalledSize: 2, Depends: dep("y")},
		{Name: "y", InstalledSize: 3, Depends: dep("z")},
		{Name: "z", InstalledSize: 4, Depends: dep("x")},
	})
	run(g) // must terminate

	app, _ := g.Node("app")
	if app.Collapsed() {
		t.Fatal("app is a root and must stay pending")
	}
	if app.Size() <= 1 {
		t.Errorf("app.Size() = %v, want > own size", app.Size())
	}
}

func TestIdempotence(t *testing.T) {
	g := build(t, []pkggraph.Record{
		{Name: "a", InstalledSize: 10, Depends: dep("b", "c")},
		{Name: "b", InstalledSize: 5, Depends: dep("d")},
		{Name: "c", InstalledSize: 5, Depends: dep("d")},
		{Name: "d", InstalledSize: 8},
		{Name: "p", InstalledSize: 6, Depends: dep("q")},
		{Name: "q", InstalledSize: 7, Depends: dep("p")},
	})
	run(g)

	before := map[string]struct {
		size      float64
		collapsed bool
	}{}
	for _, name := range g.Names() {
		n, _ := g.Node(name)
		before[name] = struct {
			size      float64
			collapsed bool
		}{n.Size(), n.Collapsed()}
	}

	run(g) // second pass must be a no-op

	for _, name := range g.Names() {
		n, _ := g.Node(name)
		want := before[name]
		if n.Size() != want.size || n.Collapsed() != want.collapsed {
			t.Errorf("%s changed on second run: size %v→%v collapsed %v→%v",
				name, want.size, n.Size(), want.collapsed, n.Collapsed())
		}
	}
}

func TestMaxDepthCutoff(t *testing.T) {
	// A chain deeper than the bound still terminates. The first entry
	// collapses the nodes within reach of the root; the segment beyond
	// the cutoff collapses through its own entry points and its
	// accumulated size stays on the node just past the boundary.
	var records []pkggraph.Record
	names := []string{"n0", "n1", "n2", "n3", "n4", "n5", "n6"}
	for i, name := range names {
		r := pkggraph.Record{Name: name, InstalledSize: 1}
		if i < len(names)-1 {
			r.Depends = dep(names[i+1])
		}
		records = append(records, r)
	}
	g := build(t, records)

	e := &Engine{MaxDepth: 3}
	e.Run(g)

	root, _ := g.Node("n0")
	if !almostEqual(root.Size(), 4) {
		t.Errorf("n0.Size() = %v, want 4 (n0..n3)", root.Size())
	}

	// No size vanishes: the tail segment stays on n4.
	var pendingSum float64
	for _, name := range names {
		n, _ := g.Node(name)
		if !n.Collapsed() {
			pendingSum += n.Size()
		}
	}
	if !almostEqual(pendingSum, float64(len(names))) {
		t.Errorf("pending size sum = %v, want %v", pendingSum, len(names))
	}
}

func TestTraceEmitsEvents(t *testing.T) {
	g := build(t, []pkggraph.Record{
		{Name: "a", InstalledSize: 1, Depends: dep("b")},
		{Name: "b", InstalledSize: 2},
	})

	var events int
	e := &Engine{Trace: func(depth int, format string, args ...any) { events++ }}
	e.Run(g)

	if events == 0 {
		t.Error("expected trace events, got none")
	}
}
