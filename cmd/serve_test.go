package cmd

import (
	"testing"

	"patchmuch/internal/config"
)

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
	}{
		{
			name:     "no values",
			values:   nil,
			expected: "",
		},
		{
			name:     "all empty",
			values:   []string{"", "", ""},
			expected: "",
		},
		{
			name:     "flag wins over config",
			values:   []string{"streamable-http", "stdio", "stdio"},
			expected: "streamable-http",
		},
		{
			name:     "config wins over default",
			values:   []string{"", ":9000", ":8000"},
			expected: ":9000",
		},
		{
			name:     "default when nothing set",
			values:   []string{"", "", "stdio"},
			expected: "stdio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstNonEmpty(tt.values...); got != tt.expected {
				t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.values, got, tt.expected)
			}
		})
	}
}

func TestRunServe_UnsupportedTransport(t *testing.T) {
	err := runServe(config.Default(), "carrier-pigeon", ":8000", MetricsConfig{})
	if err == nil {
		t.Fatal("expected error for unsupported transport")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := loadConfig("/nonexistent/patchmuch.toml")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Notmuch.Binary != "notmuch" {
		t.Errorf("binary = %q, want default", cfg.Notmuch.Binary)
	}
}
