package dpkg

import (
	"bufio"
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/FedericoCeratto/debian-slimmer/pkg/errors"
	"github.com/FedericoCeratto/debian-slimmer/pkg/pkggraph"
)

// dpkg records Installed-Size in KiB.
const kib = 1024

// StatusFile reads installed packages from a dpkg status file.
// The zero value is not usable - use NewStatusFile.
type StatusFile struct {
	path    string
	infoDir string
}

// NewStatusFile creates a Source backed by the given dpkg status file and
// info directory. Empty arguments select the system defaults.
func NewStatusFile(path, infoDir string) *StatusFile {
	if path == "" {
		path = DefaultStatusPath
	}
	if infoDir == "" {
		infoDir = DefaultInfoDir
	}
	return &StatusFile{path: path, infoDir: infoDir}
}

// Path returns the status file location this source reads from.
func (s *StatusFile) Path() string { return s.path }

// Packages parses the status file and returns a record per installed
// package. The database being unreadable or malformed is a fatal error.
func (s *StatusFile) Packages(ctx context.Context) ([]pkggraph.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDBUnreadable, err, "open dpkg status file %s", s.path)
	}
	defer f.Close()

	var records []pkggraph.Record

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	stanza := map[string]string{}
	var lastField string

	flush := func() error {
		if len(stanza) == 0 {
			return nil
		}
		rec, installed, err := recordFromStanza(stanza)
		if err != nil {
			return err
		}
		if installed {
			records = append(records, rec)
		}
		stanza = map[string]string{}
		lastField = ""
		return nil
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := sc.Text()

		switch {
		case line == "":
			if err := flush(); err != nil {
				return nil, err
			}
		case line[0] == ' ' || line[0] == '\t':
			// Continuation of the previous field.
			if lastField != "" {
				stanza[lastField] += "\n" + strings.TrimSpace(line)
			}
		default:
			field, value, ok := strings.Cut(line, ":")
			if !ok {
				return nil, errors.New(errors.ErrCodeDBMalformed, "malformed line in %s: %q", s.path, line)
			}
			lastField = field
			stanza[field] = strings.TrimSpace(value)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDBUnreadable, err, "read %s", s.path)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return records, nil
}

// recordFromStanza converts one status stanza into a Record. The second
// return value reports whether the package is actually installed;
// config-files and half-installed states are skipped.
func recordFromStanza(stanza map[string]string) (pkggraph.Record, bool, error) {
	name := stanza["Package"]
	if name == "" {
		return pkggraph.Record{}, false, errors.New(errors.ErrCodeDBMalformed, "stanza without Package field")
	}

	// Status is "<want> <flag> <status>", e.g. "install ok installed".
	status := strings.Fields(stanza["Status"])
	if len(status) != 3 || status[2] != "installed" {
		return pkggraph.Record{}, false, nil
	}

	var size int64
	if raw := stanza["Installed-Size"]; raw != "" {
		kb, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return pkggraph.Record{}, false, errors.Wrap(errors.ErrCodeDBMalformed, err,
				"package %s: bad Installed-Size %q", name, raw)
		}
		size = kb * kib
	}

	var groups [][]string
	for _, field := range []string{"Pre-Depends", "Depends"} {
		groups = append(groups, parseDepends(stanza[field])...)
	}

	return pkggraph.Record{Name: name, InstalledSize: size, Depends: groups}, true, nil
}

// parseDepends splits a Depends value into OR-groups of bare package
// names. Version constraints "(>= 1.2)" and architecture qualifiers
// ":any" are stripped; they do not affect whether an installed package
// satisfies the dependency for blame purposes.
func parseDepends(value string) [][]string {
	if value == "" {
		return nil
	}
	value = strings.ReplaceAll(value, "\n", " ")

	var groups [][]string
	for _, group := range strings.Split(value, ",") {
		var alts []string
		for _, alt := range strings.Split(group, "|") {
			if name := bareName(alt); name != "" {
				alts = append(alts, name)
			}
		}
		if len(alts) > 0 {
			groups = append(groups, alts)
		}
	}
	return groups
}

// bareName strips version constraints and architecture qualifiers from a
// single dependency alternative.
func bareName(alt string) string {
	alt = strings.TrimSpace(alt)
	if i := strings.IndexByte(alt, '('); i >= 0 {
		alt = strings.TrimSpace(alt[:i])
	}
	if i := strings.IndexByte(alt, ':'); i >= 0 {
		alt = alt[:i]
	}
	if i := strings.IndexByte(alt, ' '); i >= 0 {
		alt = alt[:i]
	}
	return alt
}
