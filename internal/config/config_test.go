package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[drawing]
quantity = 120
style = "sketch"

[server]
addr = ":9000"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Drawing.Quantity != 120 {
		t.Errorf("Quantity = %d, want 120", cfg.Drawing.Quantity)
	}
	if cfg.Drawing.Style != "sketch" {
		t.Errorf("Style = %q, want sketch", cfg.Drawing.Style)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000", cfg.Server.Addr)
	}

	// Omitted values keep their defaults
	if cfg.Drawing.Width != 800 {
		t.Errorf("Width = %g, want default 800", cfg.Drawing.Width)
	}
	if cfg.Watch.TickMillis != 100 {
		t.Errorf("TickMillis = %d, want default 100", cfg.Watch.TickMillis)
	}
}

func TestLoadClampsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[drawing]
width = -100
separation = -3
quantity = 0
style = "neon"

[watch]
tick_ms = 0

[cache]
backend = "memcached"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	d := Default()
	if cfg.Drawing.Width != d.Drawing.Width {
		t.Errorf("Width = %g, want clamped default %g", cfg.Drawing.Width, d.Drawing.Width)
	}
	if cfg.Drawing.Separation != 0 {
		t.Errorf("Separation = %g, want clamped 0", cfg.Drawing.Separation)
	}
	if cfg.Drawing.Quantity != d.Drawing.Quantity {
		t.Errorf("Quantity = %d, want clamped default %d", cfg.Drawing.Quantity, d.Drawing.Quantity)
	}
	if cfg.Drawing.Style != d.Drawing.Style {
		t.Errorf("Style = %q, want clamped default %q", cfg.Drawing.Style, d.Drawing.Style)
	}
	if cfg.Watch.TickMillis != d.Watch.TickMillis {
		t.Errorf("TickMillis = %d, want clamped default %d", cfg.Watch.TickMillis, d.Watch.TickMillis)
	}
	if cfg.Cache.Backend != d.Cache.Backend {
		t.Errorf("Backend = %q, want clamped default %q", cfg.Cache.Backend, d.Cache.Backend)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
	if cfg != Default() {
		t.Error("invalid TOML should fall back to defaults")
	}
}

func TestLoadDefaultHonorsEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[drawing]\nquantity = 7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QUADRAT_CONFIG", path)

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault error: %v", err)
	}
	if cfg.Drawing.Quantity != 7 {
		t.Errorf("Quantity = %d, want 7 from QUADRAT_CONFIG file", cfg.Drawing.Quantity)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath error: %v", err)
	}
	if path != filepath.Join("/tmp/xdg", "quadrat", "config.toml") {
		t.Errorf("DefaultPath = %q", path)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	dir, err := CacheDir()
	if err != nil {
		t.Fatalf("CacheDir error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", "quadrat") {
		t.Errorf("CacheDir = %q", dir)
	}
}
