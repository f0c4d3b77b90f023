package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir switches the working directory for the test and restores it on
// cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

// clearEnv blanks every variable Load reads so tests start from defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DASHBOARD_CONFIG", "DASHBOARD_DATA_DIR", "DASHBOARD_AUTH_HASH"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir()) // no dashboard.yaml here

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8050 {
		t.Errorf("expected default port 8050, got %d", cfg.Port)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("expected bind to all interfaces, got %q", cfg.Host)
	}
	if cfg.DataDir != "data" {
		t.Errorf("expected default data dir, got %q", cfg.DataDir)
	}
	if cfg.AuthHash != "" {
		t.Error("auth should be disabled by default")
	}
}

func TestLoad_PortFromEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid PORT")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	yaml := "title: Custom Dashboard\nport: 7777\ndata_dir: /srv/data\n"
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Title != "Custom Dashboard" || cfg.Port != 7777 || cfg.DataDir != "/srv/data" {
		t.Errorf("yaml values not applied: %+v", cfg)
	}
	// Untouched knobs keep their defaults.
	if cfg.RateBurst == 0 {
		t.Error("defaults should survive a partial yaml file")
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("port: 7777\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "8888")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8888 {
		t.Errorf("PORT env should win over yaml, got %d", cfg.Port)
	}
}

func TestLoad_ExplicitConfigMissing(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("DASHBOARD_CONFIG", "nope.yaml")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "nope.yaml") {
		t.Fatalf("expected error naming the missing file, got %v", err)
	}
}

func TestAddr(t *testing.T) {
	cfg := Config{Host: "0.0.0.0", Port: 8050}
	if got := cfg.Addr(); got != "0.0.0.0:8050" {
		t.Errorf("unexpected addr %q", got)
	}
}
