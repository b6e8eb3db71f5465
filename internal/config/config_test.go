package config

import (
	"testing"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Server.BaseURL = "http://barbearia.local:8080"
	cfg.Server.TimeoutSeconds = 30

	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if loaded.Server.BaseURL != "http://barbearia.local:8080" {
		t.Errorf("BaseURL: got %q", loaded.Server.BaseURL)
	}
	if loaded.Server.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds: got %d, want 30", loaded.Server.TimeoutSeconds)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := ReadConfig(t.TempDir()); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	cfg := Load(t.TempDir())
	if cfg.Server.BaseURL != "http://localhost:5000" {
		t.Errorf("BaseURL: got %q, want default", cfg.Server.BaseURL)
	}
	if cfg.Server.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds: got %d, want 10", cfg.Server.TimeoutSeconds)
	}
}

func TestApplyEnvOverridesServer(t *testing.T) {
	t.Setenv("NAVALHA_SERVER_URL", "http://10.0.0.5:5000")
	t.Setenv("NAVALHA_TIMEOUT_SECONDS", "3")

	cfg := DefaultConfig()
	ApplyEnv(cfg)

	if cfg.Server.BaseURL != "http://10.0.0.5:5000" {
		t.Errorf("BaseURL: got %q", cfg.Server.BaseURL)
	}
	if cfg.Server.TimeoutSeconds != 3 {
		t.Errorf("TimeoutSeconds: got %d, want 3", cfg.Server.TimeoutSeconds)
	}
}

func TestApplyEnvIgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("NAVALHA_TIMEOUT_SECONDS", "soon")

	cfg := DefaultConfig()
	ApplyEnv(cfg)

	if cfg.Server.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds: got %d, want default 10", cfg.Server.TimeoutSeconds)
	}
}
