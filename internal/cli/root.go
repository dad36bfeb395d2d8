package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/FedericoCeratto/debian-slimmer/pkg/buildinfo"
)

// Execute runs the slimmer CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (blame,
// tree, graph, completion), configures logging based on the --verbose
// flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level, including the blame traversal trace
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "slimmer",
		Short:        "Slimmer estimates disk usage per top-level package",
		Long: `Slimmer estimates the amount of disk space used by installed packages,
including their dependencies. Shared dependencies are blamed equally on
the packages that pull them in, so the ranking reflects what removing a
top-level package would actually free.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBlameCmd())
	root.AddCommand(newTreeCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
