package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load("non-existent-config.yaml")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	assertDefaultConfig(t, cfg)
}

func TestLoadWithPartialConfigAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  address: ":9090"
database:
  driver: ""
  sqlite: {}
auth:
  jwt_secret: "test-secret"
  admin_emails:
    - admin@example.com
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Address != ":9090" {
		t.Fatalf("expected server address :9090, got %s", cfg.Server.Address)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("expected database driver sqlite, got %s", cfg.Database.Driver)
	}
	if cfg.Database.SQLite.Path != "data/portfolio.db" {
		t.Fatalf("expected sqlite path data/portfolio.db, got %s", cfg.Database.SQLite.Path)
	}
	if cfg.Auth.JWTSecret != "test-secret" {
		t.Fatalf("expected jwt secret to load, got %q", cfg.Auth.JWTSecret)
	}
	if len(cfg.Auth.AdminEmails) != 1 || cfg.Auth.AdminEmails[0] != "admin@example.com" {
		t.Fatalf("expected admin allow-list to load, got %v", cfg.Auth.AdminEmails)
	}
	if cfg.Auth.LoginPath != "/admin/login" {
		t.Fatalf("expected default login path, got %s", cfg.Auth.LoginPath)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  address: ":9090"
  no_such_field: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown config field")
	}
}

func assertDefaultConfig(t *testing.T, cfg *Config) {
	t.Helper()
	if cfg == nil {
		t.Fatalf("config is nil")
	}
	if cfg.Server.Address != ":8080" {
		t.Fatalf("expected default address :8080, got %s", cfg.Server.Address)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("expected default driver sqlite, got %s", cfg.Database.Driver)
	}
	if cfg.Database.SQLite.Path != "data/portfolio.db" {
		t.Fatalf("expected default sqlite path, got %s", cfg.Database.SQLite.Path)
	}
	if cfg.Storage.Type != "local" {
		t.Fatalf("expected default storage type local, got %s", cfg.Storage.Type)
	}
}

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"/":               "",
		" . ":             "",
		"site":            "/site",
		"/site/":          "/site",
		"/nested/prefix/": "/nested/prefix",
	}
	for input, want := range cases {
		if got := NormalizeBasePath(input); got != want {
			t.Errorf("NormalizeBasePath(%q) = %q, want %q", input, got, want)
		}
	}
}
