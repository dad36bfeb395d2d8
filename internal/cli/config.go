package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/FedericoCeratto/debian-slimmer/pkg/blame"
	"github.com/FedericoCeratto/debian-slimmer/pkg/du"
	"github.com/FedericoCeratto/debian-slimmer/pkg/errors"
)

// config holds the file-configurable defaults. Command-line flags take
// precedence over values read from the config file.
type config struct {
	Top        int    `toml:"top"`         // result count for blame output
	StatusFile string `toml:"status_file"` // dpkg status file location
	InfoDir    string `toml:"info_dir"`    // dpkg info directory
	DuPath     string `toml:"du_path"`     // du binary location
	ExploreVar bool   `toml:"explore_var"` // measure /var subtrees by default
	MaxDepth   int    `toml:"max_depth"`   // traversal depth bound
}

func defaultConfig() config {
	return config{
		Top:      blame.DefaultTopN,
		DuPath:   du.DefaultBinPath,
		MaxDepth: blame.DefaultMaxDepth,
	}
}

// defaultConfigPath returns ~/.config/slimmer/config.toml (respecting
// XDG overrides), or empty when no user config dir is available.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "slimmer", "config.toml")
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file yields the built-in defaults; a file that
// exists but does not parse is an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return defaultConfig(), nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig,
			"unknown key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}
