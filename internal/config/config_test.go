package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ACC_STORE_PATH", "")
	t.Setenv("ACC_LISTEN_ADDR", "")
	t.Setenv("ACC_MATCH_TOLERANCE_DAYS", "")
	t.Setenv("ACC_MATCH_KEYWORD", "")
	t.Setenv("ACC_SETTINGS", "")
	t.Setenv("DEBUG", "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Store.Path != "./data/ledger.db" {
		t.Errorf("store path = %s", cfg.Store.Path)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("listen addr = %s", cfg.Server.Addr)
	}
	if cfg.Matching.ToleranceDays != 2 {
		t.Errorf("tolerance = %d, expected default 2", cfg.Matching.ToleranceDays)
	}
	if cfg.Debug {
		t.Error("debug enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ACC_STORE_PATH", "/var/lib/acc/ledger.db")
	t.Setenv("ACC_LISTEN_ADDR", "127.0.0.1:9090")
	t.Setenv("ACC_MATCH_TOLERANCE_DAYS", "5")
	t.Setenv("ACC_MATCH_KEYWORD", "حوالة")
	t.Setenv("ACC_SETTINGS", "")
	t.Setenv("DEBUG", "true")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Store.Path != "/var/lib/acc/ledger.db" {
		t.Errorf("store path = %s", cfg.Store.Path)
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Errorf("listen addr = %s", cfg.Server.Addr)
	}
	if cfg.Matching.ToleranceDays != 5 {
		t.Errorf("tolerance = %d", cfg.Matching.ToleranceDays)
	}
	if cfg.Matching.Keyword != "حوالة" {
		t.Errorf("keyword = %s", cfg.Matching.Keyword)
	}
	if !cfg.Debug {
		t.Error("debug not enabled")
	}
}

func TestLoadRejectsBadTolerance(t *testing.T) {
	t.Setenv("ACC_MATCH_TOLERANCE_DAYS", "soon")
	t.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Error("non-numeric tolerance accepted")
	}
}

func TestSettingsFileOverridesEnvironment(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.yaml")
	content := strings.Join([]string{
		"server:",
		"  addr: :3000",
		"matching:",
		"  toleranceDays: 7",
	}, "\n")
	if err := os.WriteFile(settings, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	t.Setenv("ACC_LISTEN_ADDR", ":8080")
	t.Setenv("ACC_SETTINGS", settings)
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":3000" {
		t.Errorf("listen addr = %s, expected the settings override", cfg.Server.Addr)
	}
	if cfg.Matching.ToleranceDays != 7 {
		t.Errorf("tolerance = %d, expected the settings override", cfg.Matching.ToleranceDays)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty config passed validation")
	}

	cfg = &Config{
		Store:    StoreConfig{Path: "x.db"},
		Server:   ServerConfig{Addr: ":1"},
		Matching: MatchingConfig{ToleranceDays: -1},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("negative tolerance passed validation")
	}
}
