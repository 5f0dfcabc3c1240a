package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/njchilds90/exactcalc/format"
)

// Config is the on-disk CLI configuration, read from
// ~/.exactcalc.yaml unless --config points elsewhere.
type Config struct {
	Format    format.Mode `yaml:"format"`
	Precision int         `yaml:"precision"`
	History   string      `yaml:"history"`
}

// DefaultConfig uses automatic notation and a history database next to
// the config file.
func DefaultConfig() Config {
	return Config{
		Format:    format.Automatic,
		Precision: 10,
		History:   defaultPath(".exactcalc_history.db"),
	}
}

// LoadConfig reads the YAML config at path. An empty path means the
// default location, and a missing file falls back to defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultPath(".exactcalc.yaml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cli: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cli: parse config %s: %w", path, err)
	}
	if cfg.Precision < 1 || cfg.Precision > 17 {
		cfg.Precision = DefaultConfig().Precision
	}
	return cfg, nil
}

// Display converts the CLI config into the engine's display settings.
func (c Config) Display() format.Config {
	return format.Config{Mode: c.Format, Precision: c.Precision}
}

func defaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name)
}
