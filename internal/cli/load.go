package cli

import (
	"context"
	"fmt"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/FedericoCeratto/debian-slimmer/pkg/blame"
	"github.com/FedericoCeratto/debian-slimmer/pkg/dpkg"
	"github.com/FedericoCeratto/debian-slimmer/pkg/du"
	"github.com/FedericoCeratto/debian-slimmer/pkg/pkggraph"
)

// sourceOpts are the flags shared by every command that reads the
// package database. Empty string values fall back to the config file,
// then to the built-in defaults.
type sourceOpts struct {
	configFile string // config file override
	statusFile string // dpkg status file override
	infoDir    string // dpkg info directory override
	duPath     string // du binary override
	exploreVar bool   // add /var/{lib,cache,log} usage
}

// loadGraph reads the package database, optionally augments sizes with
// the /var measurement pass, and builds the dependency graph. A database
// error is fatal; per-path measurement failures are logged and skipped.
func (o *sourceOpts) loadGraph(ctx context.Context) (*pkggraph.Graph, config, error) {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(o.configFile)
	if err != nil {
		return nil, cfg, err
	}
	if o.statusFile != "" {
		cfg.StatusFile = o.statusFile
	}
	if o.infoDir != "" {
		cfg.InfoDir = o.infoDir
	}
	if o.duPath != "" {
		cfg.DuPath = o.duPath
	}
	if o.exploreVar {
		cfg.ExploreVar = true
	}

	src := dpkg.NewStatusFile(cfg.StatusFile, cfg.InfoDir)

	prog := newProgress(logger)
	sp := newSpinner(ctx, "Scanning package database")
	sp.start()
	records, err := src.Packages(ctx)
	sp.stop()
	if err != nil {
		return nil, cfg, err
	}
	prog.done(fmt.Sprintf("Loaded %d installed packages from %s", len(records), src.Path()))

	if cfg.ExploreVar {
		if err := augmentSizes(ctx, src, records, cfg.DuPath); err != nil {
			return nil, cfg, err
		}
	}

	g, err := pkggraph.Build(records)
	if err != nil {
		return nil, cfg, err
	}
	logger.Debugf("built graph: %d packages", g.Len())
	return g, cfg, nil
}

// augmentSizes adds measured /var subtree usage to each record. Requires
// read access to /var, hence opt-in. The only hard failure is context
// cancellation.
func augmentSizes(ctx context.Context, src dpkg.Source, records []pkggraph.Record, duPath string) error {
	logger := loggerFromContext(ctx)
	explorer := &du.VarExplorer{
		Measure: &du.Runner{BinPath: duPath},
		Log:     logger.Warnf,
	}

	prog := newProgress(logger)
	sp := newSpinner(ctx, "Measuring /var usage")
	sp.start()
	defer sp.stop()

	for i := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		files, err := src.InstalledFiles(records[i].Name)
		if err != nil {
			logger.Warnf("file list for %s: %v", records[i].Name, err)
			continue
		}
		records[i].InstalledSize += explorer.Extra(ctx, files)
	}

	sp.stop()
	prog.done("Measured /var/{lib,cache,log} usage")
	return nil
}

// newEngine builds a blame engine wired to the debug trace when verbose
// logging is on. Tracing at info level would swamp the output.
func newEngine(logger *charmlog.Logger, maxDepth int) *blame.Engine {
	e := &blame.Engine{MaxDepth: maxDepth}
	if logger.GetLevel() <= charmlog.DebugLevel {
		e.Trace = func(depth int, format string, args ...any) {
			logger.Debug(strings.Repeat("  ", depth) + fmt.Sprintf(format, args...))
		}
	}
	return e
}
