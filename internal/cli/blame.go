package cli

import (
	"github.com/spf13/cobra"

	"github.com/FedericoCeratto/debian-slimmer/pkg/blame"
)

// newBlameCmd creates the blame command, the main entry point: it ranks
// root packages by the disk usage attributed to them.
func newBlameCmd() *cobra.Command {
	var (
		src sourceOpts
		top int
	)

	cmd := &cobra.Command{
		Use:   "blame",
		Short: "Rank root packages by attributed disk usage",
		Long: `Blame builds the dependency graph of all installed packages and
redistributes each dependency's footprint onto the packages that depend
on it. The result is a ranking of root packages (packages nothing else
depends on) by the total disk space they are responsible for.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			g, cfg, err := src.loadGraph(ctx)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("number") {
				cfg.Top = top
			}

			prog := newProgress(logger)
			newEngine(logger, cfg.MaxDepth).Run(g)
			roots := blame.Roots(g)
			prog.done("Reassigned blame to root packages")

			renderSummary(cmd.OutOrStdout(), blame.Rank(roots, cfg.Top))
			return nil
		},
	}

	addSourceFlags(cmd, &src)
	cmd.Flags().IntVarP(&top, "number", "n", blame.DefaultTopN, "number of packages to display")

	return cmd
}

// addSourceFlags registers the database/measurement flags shared by all
// commands that read the package database.
func addSourceFlags(cmd *cobra.Command, o *sourceOpts) {
	cmd.Flags().StringVar(&o.configFile, "config", "", "config file (default ~/.config/slimmer/config.toml)")
	cmd.Flags().StringVar(&o.statusFile, "status-file", "", "dpkg status file (default /var/lib/dpkg/status)")
	cmd.Flags().StringVar(&o.infoDir, "info-dir", "", "dpkg info directory (default /var/lib/dpkg/info)")
	cmd.Flags().StringVar(&o.duPath, "du-path", "", "du binary (default /usr/bin/du)")
	cmd.Flags().BoolVar(&o.exploreVar, "explore-var", false,
		"account for disk space under /var/{lib,cache,log} (needs read access to /var)")
}
