package du

import (
	"context"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/FedericoCeratto/debian-slimmer/pkg/errors"
)

// DefaultBinPath is where du lives on Debian systems.
const DefaultBinPath = "/usr/bin/du"

// Measurer reports the total on-disk size of a directory subtree.
type Measurer interface {
	Usage(ctx context.Context, path string) (int64, error)
}

// Runner measures disk usage by running "du -bs" as a subprocess.
// The zero value uses DefaultBinPath.
type Runner struct {
	// BinPath overrides the du binary location.
	BinPath string
}

// Usage returns the byte size of the subtree rooted at path. Paths that
// are not directories measure as zero without running du. A du failure
// (typically missing read permission) is returned as a DU_FAILED error
// carrying the command output.
func (r *Runner) Usage(ctx context.Context, path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return 0, nil
	}

	bin := r.BinPath
	if bin == "" {
		bin = DefaultBinPath
	}

	out, err := exec.CommandContext(ctx, bin, "-bs", path).CombinedOutput()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeDUFailed, err,
			"run %s -bs %s: %s", bin, path, strings.TrimSpace(string(out)))
	}

	// du output is "<size>\t<path>".
	field, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\t")
	size, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeDUFailed, err,
			"parse du output for %s: %q", path, string(out))
	}
	return size, nil
}
