package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestParseConfig_Precedence(t *testing.T) {
	file := writeConfig(t, "listen: 127.0.0.1:8080\nroot: /srv/www\nread_timeout: 3s\n")

	tests := []struct {
		name        string
		args        []string
		listen      string
		root        string
		readTimeout time.Duration
	}{
		{"defaults", nil, "127.0.0.1:10000", "./webroot", 0},
		{"flags only", []string{"-listen", "127.0.0.1:9000", "-read-timeout", "1m30s"}, "127.0.0.1:9000", "./webroot", 90 * time.Second},
		{"file only", []string{"-config", file}, "127.0.0.1:8080", "/srv/www", 3 * time.Second},
		{"flag over file", []string{"-config", file, "-listen", "127.0.0.1:9000"}, "127.0.0.1:9000", "/srv/www", 3 * time.Second},
		{"flag before file", []string{"-read-timeout", "250ms", "-config", file}, "127.0.0.1:8080", "/srv/www", 250 * time.Millisecond},
	}

	for _, tt := range tests {
		config, err := parseConfig(tt.args)
		if err != nil {
			t.Errorf("%s: parseConfig failed: %v", tt.name, err)
			continue
		}
		if config.Listen != tt.listen {
			t.Errorf("%s: expected listen %q, got %q", tt.name, tt.listen, config.Listen)
		}
		if config.Root != tt.root {
			t.Errorf("%s: expected root %q, got %q", tt.name, tt.root, config.Root)
		}
		if config.ReadTimeout != tt.readTimeout {
			t.Errorf("%s: expected read timeout %s, got %s", tt.name, tt.readTimeout, config.ReadTimeout)
		}
	}
}

func TestParseConfig_BoolFlagOverFile(t *testing.T) {
	file := writeConfig(t, "concurrent: true\nlog:\n  color: true\n")

	config, err := parseConfig([]string{"-config", file, "-log-color=false"})
	if err != nil {
		t.Fatalf("parseConfig failed: %v", err)
	}
	if !config.Concurrent {
		t.Error("expected concurrent from the file")
	}
	if config.Log.Color {
		t.Error("expected -log-color=false to win over the file")
	}
}

func TestParseConfig_Errors(t *testing.T) {
	bad := writeConfig(t, "log:\n  level: loud\n")

	tests := [][]string{
		{"-no-such-flag"},
		{"-config", filepath.Join(t.TempDir(), "missing.yaml")},
		{"-config", bad},
		{"-read-size", "0"},
	}

	for _, args := range tests {
		if _, err := parseConfig(args); err == nil {
			t.Errorf("%q: expected an error", args)
		}
	}
}
