package app

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configFilename = "config.toml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string `toml:"-"`         // config directory, e.g. $HOME/.cryptalk
	LogLevel string `toml:"log_level"` // logrus level name; default "warn"
}

// DefaultConfig returns the baseline configuration for home.
func DefaultConfig(home string) Config {
	return Config{Home: home, LogLevel: "warn"}
}

// LoadConfig reads <home>/config.toml over the defaults. A missing file
// just yields the defaults.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig(home)
	b, err := os.ReadFile(filepath.Join(home, configFilename))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	cfg.Home = home
	return cfg, nil
}
