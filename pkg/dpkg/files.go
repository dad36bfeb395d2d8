package dpkg

import (
	"os"
	"path/filepath"
	"strings"
)

// InstalledFiles returns the paths shipped by the named package, read
// from the package's .list file in the dpkg info directory. Multi-arch
// packages store their list under "name:arch.list"; both layouts are
// tried. A package without a list file yields nil, not an error.
func (s *StatusFile) InstalledFiles(name string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.infoDir, name+".list"))
	if os.IsNotExist(err) {
		data, err = s.readArchQualified(name)
	}
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}

// readArchQualified looks for "name:arch.list" variants.
// Returns nil data when no variant exists.
func (s *StatusFile) readArchQualified(name string) ([]byte, error) {
	matches, err := filepath.Glob(filepath.Join(s.infoDir, name+":*.list"))
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	data, err := os.ReadFile(matches[0])
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}
