package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/FedericoCeratto/debian-slimmer/pkg/errors"
	"github.com/FedericoCeratto/debian-slimmer/pkg/render"
)

// newGraphCmd creates the graph command, which exports the dependency
// graph as Graphviz DOT or rendered SVG.
func newGraphCmd() *cobra.Command {
	var (
		src      sourceOpts
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the dependency graph as DOT or SVG",
		Long: `Graph exports the installed-package dependency graph in Graphviz DOT
format. With an .svg output file the graph is rendered in-process.

Note that a full system graph has thousands of nodes; point --status-file
at a reduced database for a readable diagram.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			g, _, err := src.loadGraph(ctx)
			if err != nil {
				return err
			}

			dot := render.ToDOT(g, render.Options{Detailed: detailed})

			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), dot)
				return nil
			}

			data := []byte(dot)
			if filepath.Ext(output) == ".svg" {
				prog := newProgress(logger)
				data, err = render.RenderSVG(ctx, dot)
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "render SVG")
				}
				prog.done("Rendered SVG")
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return err
			}
			logger.Infof("Wrote %s", output)
			return nil
		},
	}

	addSourceFlags(cmd, &src)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot or .svg, stdout if empty)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include installed sizes in node labels")

	return cmd
}
