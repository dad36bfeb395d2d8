package dpkg

import (
	"context"

	"github.com/FedericoCeratto/debian-slimmer/pkg/pkggraph"
)

// Default locations of the dpkg database on Debian-derived systems.
const (
	DefaultStatusPath = "/var/lib/dpkg/status"
	DefaultInfoDir    = "/var/lib/dpkg/info"
)

// Source supplies installed-package records and per-package file lists.
// Implementations must be read-only; a failed Packages call is fatal to
// the run, while InstalledFiles failures are handled per-package by the
// caller.
type Source interface {
	// Packages returns one record per installed package. An error means
	// the database could not be read and the run must stop before graph
	// construction.
	Packages(ctx context.Context) ([]pkggraph.Record, error)

	// InstalledFiles returns the file paths shipped by the named
	// package. A package with no recorded file list yields an empty
	// slice, not an error.
	InstalledFiles(name string) ([]string, error)
}
