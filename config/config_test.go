package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CONFIG_PATH", "PORT", "NETWORK_SOURCE", "NETWORK_PATH", "LOCATIONS_PATH", "NETWORK_STRICTNESS", "DEFAULT_STRATEGY"} {
		t.Setenv(k, "")
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) on older toolchains
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}

// TestLoad_MissingFileUsesDefaults checks that defaults apply without a file
func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Network.Source != "static" || cfg.Routing.CombinedScale != 1000 || cfg.Routing.TotalsMinLegs != 2 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

// TestLoad_FromFile tests loading a YAML file over the defaults
func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "config.yml")
	doc := `
server:
  port: 9090
network:
  source: csv
  path: data/connections.csv
  strictness: lenient
routing:
  default_strategy: hops
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.Network.Source != "csv" || cfg.Network.Strictness != "lenient" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Routing.DefaultStrategy != "hops" || cfg.Routing.CombinedScale != 1000 {
		t.Errorf("routing = %+v", cfg.Routing)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("PORT", ":7070")
	t.Setenv("NETWORK_SOURCE", "SQLITE")
	t.Setenv("NETWORK_PATH", "network.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 || cfg.Network.Source != "sqlite" || cfg.Network.Path != "network.db" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.Server.Addr() != ":7070" {
		t.Errorf("Addr = %q", cfg.Server.Addr())
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("PORT", "eighty")
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("expected error for non-numeric PORT")
	}
}

// TestParse_Validation tests that struct tags reject bad values
func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "server: [[["},
		{"port out of range", "server:\n  port: 70000\n"},
		{"unknown source", "network:\n  source: ftp\n  path: x\n"},
		{"file source without path", "network:\n  source: csv\n"},
		{"unknown strategy", "routing:\n  default_strategy: teleport\n"},
		{"negative scale", "routing:\n  combined_scale: -1\n"},
		{"zero scale", "routing:\n  combined_scale: 0\n"},
		{"unknown duplicate policy", "network:\n  duplicate_policy: merge\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.doc)
			}
		})
	}
}

func TestParse_RepositoryConfig(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "config.yml"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.EqualFold(cfg.Network.Source, "static") {
		t.Errorf("shipped config source = %q, want static", cfg.Network.Source)
	}
}
