package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/FedericoCeratto/debian-slimmer/pkg/errors"
	"github.com/FedericoCeratto/debian-slimmer/pkg/pkggraph"
)

// newTreeCmd creates the tree command, which shows the dependencies a
// package pulls in, two levels deep, with their own installed sizes.
func newTreeCmd() *cobra.Command {
	var (
		src   sourceOpts
		depth int
	)

	cmd := &cobra.Command{
		Use:   "tree <package>",
		Short: "Show the dependency tree of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			g, _, err := src.loadGraph(cmd.Context())
			if err != nil {
				return err
			}

			n, ok := g.Node(name)
			if !ok {
				return errors.New(errors.ErrCodePackageNotFound, "no such installed package: %s", name)
			}

			printTree(cmd.OutOrStdout(), g, n, 0, depth)
			return nil
		},
	}

	addSourceFlags(cmd, &src)
	cmd.Flags().IntVarP(&depth, "depth", "d", 2, "how many dependency levels to show")

	return cmd
}

// printTree writes one node and recurses into its children until the
// depth limit. Sizes are the packages' own footprints, before any blame
// reassignment.
func printTree(w io.Writer, g *pkggraph.Graph, n *pkggraph.Node, nesting, maxNesting int) {
	indent := strings.Repeat("  ", nesting)
	size := styleSize.Render(humanize.Bytes(uint64(n.Size())))
	fmt.Fprintf(w, "%s%s  %s\n", indent, styleName.Render(n.Name()), size)

	if nesting >= maxNesting {
		return
	}
	for _, child := range n.Children() {
		if c, ok := g.Node(child); ok {
			printTree(w, g, c, nesting+1, maxNesting)
		}
	}
}
