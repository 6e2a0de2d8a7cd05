package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	// t.Setenv registers the restore; unsetting afterwards leaves the
	// variable absent for the test body only.
	for _, v := range []string{"LANCE_CONFIG", "LANCE_DATA_DIR", "LANCE_STORE", "LANCE_CURRENCY"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Store != "dir" {
		t.Errorf("default store = %q, want %q", cfg.Store, "dir")
	}
	if cfg.Currency != "USD" {
		t.Errorf("default currency = %q, want %q", cfg.Currency, "USD")
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".lance"); cfg.DataDir != want {
		t.Errorf("default data dir = %q, want %q", cfg.DataDir, want)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("LANCE_CONFIG", "")
	t.Setenv("LANCE_DATA_DIR", "/tmp/lance-test")
	t.Setenv("LANCE_STORE", "sqlite")
	t.Setenv("LANCE_CURRENCY", "EUR")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DataDir != "/tmp/lance-test" {
		t.Errorf("data dir = %q", cfg.DataDir)
	}
	if cfg.Store != "sqlite" {
		t.Errorf("store = %q", cfg.Store)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("currency = %q", cfg.Currency)
	}
	if want := filepath.Join("/tmp/lance-test", "lance.db"); cfg.DatabasePath() != want {
		t.Errorf("database path = %q, want %q", cfg.DatabasePath(), want)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := "data_dir: " + dir + "\nstore: sqlite\ncurrency: GBP\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LANCE_CONFIG", path)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DataDir != dir || cfg.Store != "sqlite" || cfg.Currency != "GBP" {
		t.Errorf("config = %+v", cfg)
	}
}
