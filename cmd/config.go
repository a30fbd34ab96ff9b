package cmd

import (
	"patchmuch/internal/archive"
	"patchmuch/internal/config"
	"patchmuch/internal/notmuch"
)

// loadConfig reads the config file at path, falling back to the
// conventional location and then to built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = defaultPath
	}
	return config.Load(path)
}

// openStore opens a read-only handle on the configured mail index.
func openStore(cfg *config.Config) (archive.Store, error) {
	return notmuch.Open(notmuch.Options{
		Binary:     cfg.Notmuch.Binary,
		ConfigPath: cfg.Notmuch.ConfigPath,
	})
}

// firstNonEmpty returns the first non-empty string, or "".
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
