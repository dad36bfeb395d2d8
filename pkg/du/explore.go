package du

import (
	"context"
	"strings"
)

// varSubdirs are the /var subtrees where packages accumulate
// runtime-generated data.
var varSubdirs = map[string]bool{
	"lib":   true,
	"cache": true,
	"log":   true,
}

// VarExplorer sums the measured size of a package's /var/{lib,cache,log}
// subtrees. It implements the size-augmentation hook: the result is added
// to a package's installed size before the graph is built.
type VarExplorer struct {
	// Measure performs the per-directory measurement.
	Measure Measurer

	// Log receives per-path failure reports. Nil disables reporting.
	Log func(format string, args ...any)
}

// Extra returns the additional bytes found under well-known /var subtrees
// among the given installed file paths. Only paths exactly three
// components deep (/var/<subdir>/<entry>) are measured, so each package
// subtree is counted once. Per-path failures contribute zero and are
// logged; Extra never fails as a whole.
func (v *VarExplorer) Extra(ctx context.Context, files []string) int64 {
	var total int64
	for _, f := range files {
		path, ok := varSubtree(f)
		if !ok {
			continue
		}
		size, err := v.Measure.Usage(ctx, path)
		if err != nil {
			if v.Log != nil {
				v.Log("disk usage measurement failed: %v", err)
			}
			continue
		}
		total += size
	}
	return total
}

// varSubtree reports whether f is a directory entry directly under
// /var/lib, /var/cache or /var/log.
func varSubtree(f string) (string, bool) {
	tok := strings.SplitN(f, "/", 5)
	if len(tok) != 4 || tok[0] != "" || tok[1] != "var" || !varSubdirs[tok[2]] || tok[3] == "" {
		return "", false
	}
	return f, true
}
