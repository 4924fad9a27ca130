package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
)

// Load builds the effective configuration: defaults, then path (or
// bookshelf.toml in the working directory when path is empty and the file
// exists), then the environment. The result is validated.
func Load(path string, logger *log.Logger) (*Config, error) {
	if logger == nil {
		logger = log.New(os.Stderr)
		logger.SetLevel(log.WarnLevel)
	}

	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	if _, err := os.Stat(path); err == nil || explicit {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded config", "path", path)
		cfg = loaded
	} else if !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("cannot stat config", "path", path, "err", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
