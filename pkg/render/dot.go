// Package render exports the dependency graph for external visualization.
//
// The graph is emitted in Graphviz DOT format, optionally rendered to SVG
// in-process via the goccy/go-graphviz bindings. Rendering happens on the
// pre-engine graph: node labels carry each package's own installed size,
// not the post-blame attribution.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-graphviz"

	"github.com/FedericoCeratto/debian-slimmer/pkg/pkggraph"
)

// Options configures DOT output.
type Options struct {
	// Detailed includes each package's installed size in its label.
	Detailed bool
}

// ToDOT converts a dependency graph to Graphviz DOT format. Nodes appear
// in record order, edges point from dependent to dependency, so output is
// reproducible for a given database.
func ToDOT(g *pkggraph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph packages {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for _, name := range g.Names() {
		n, _ := g.Node(name)
		fmt.Fprintf(&buf, "  %q [label=%q];\n", name, label(n, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, name := range g.Names() {
		n, _ := g.Node(name)
		for _, child := range n.Children() {
			fmt.Fprintf(&buf, "  %q -> %q;\n", name, child)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func label(n *pkggraph.Node, detailed bool) string {
	if !detailed {
		return n.Name()
	}
	return fmt.Sprintf("%s\n%s", n.Name(), humanize.Bytes(uint64(n.Size())))
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
