package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if cfg.File != defaultModelFile {
		t.Errorf("file = %q, want %q", cfg.File, defaultModelFile)
	}
	if cfg.Report != 1 {
		t.Errorf("report = %d, want 1", cfg.Report)
	}
	if cfg.Format != "console" {
		t.Errorf("format = %q, want console", cfg.Format)
	}
	if cfg.Serve {
		t.Error("serve should default to false")
	}
	if cfg.APIAddr != "127.0.0.1:3000" {
		t.Errorf("api-addr = %q, want 127.0.0.1:3000", cfg.APIAddr)
	}
	if cfg.QueryTimeout != defaultQueryTimeout {
		t.Errorf("query-timeout = %v, want %v", cfg.QueryTimeout, defaultQueryTimeout)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "file: /models/enterprise.xml\nreport: 2\nformat: csv\napi-port: 8088\nquery-timeout: 5s\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if cfg.File != "/models/enterprise.xml" {
		t.Errorf("file = %q", cfg.File)
	}
	if cfg.Report != 2 {
		t.Errorf("report = %d, want 2", cfg.Report)
	}
	if cfg.Format != "csv" {
		t.Errorf("format = %q, want csv", cfg.Format)
	}
	if cfg.APIAddr != "127.0.0.1:8088" {
		t.Errorf("api-addr = %q, want 127.0.0.1:8088", cfg.APIAddr)
	}
	if cfg.QueryTimeout != 5*time.Second {
		t.Errorf("query-timeout = %v, want 5s", cfg.QueryTimeout)
	}
}

func TestValidateConfig(t *testing.T) {
	base := appConfig{Report: 1, Format: "console", APIPort: 3000}

	tests := []struct {
		name    string
		mutate  func(*appConfig)
		wantErr bool
	}{
		{"valid defaults", func(*appConfig) {}, false},
		{"report 2", func(c *appConfig) { c.Report = 2 }, false},
		{"report 3", func(c *appConfig) { c.Report = 3 }, true},
		{"report 0", func(c *appConfig) { c.Report = 0 }, true},
		{"csv format", func(c *appConfig) { c.Format = "csv" }, false},
		{"bogus format", func(c *appConfig) { c.Format = "xml" }, true},
		{"port too high", func(c *appConfig) { c.APIPort = 70000 }, true},
		{"port zero", func(c *appConfig) { c.APIPort = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := validateConfig(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig(%+v) error = %v, wantErr %v", cfg, err, tt.wantErr)
			}
		})
	}
}
