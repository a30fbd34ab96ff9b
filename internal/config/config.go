package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// NotmuchConfig selects the notmuch installation to query.
type NotmuchConfig struct {
	// Binary is the notmuch executable. Defaults to "notmuch" on PATH.
	Binary string `toml:"binary"`

	// ConfigPath is handed to notmuch via --config. Empty lets notmuch
	// resolve its own configuration (NOTMUCH_CONFIG or ~/.notmuch-config).
	ConfigPath string `toml:"config_path"`
}

// ServeConfig holds the transport settings of the tool server.
type ServeConfig struct {
	// Transport is "stdio" or "http".
	Transport string `toml:"transport"`

	// Addr is the listen address for the http transport.
	Addr string `toml:"addr"`
}

type Config struct {
	Notmuch NotmuchConfig `toml:"notmuch"`
	Serve   ServeConfig   `toml:"serve"`
}

// DefaultPath returns the conventional config file location,
// ~/.config/patchmuch/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "patchmuch", "config.toml"), nil
}

// Load reads a TOML config file, applying defaults for unset fields. A
// missing file is not an error: all settings have workable defaults.
func Load(path string) (*Config, error) {
	config := defaults()

	if _, err := toml.DecodeFile(path, config); err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return config, nil
}

// Default returns the built-in defaults without reading any file.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Notmuch: NotmuchConfig{
			Binary: "notmuch",
		},
		Serve: ServeConfig{
			Transport: "stdio",
			Addr:      ":8000",
		},
	}
}
