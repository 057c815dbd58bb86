package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Ollama.BaseURL != "http://localhost:11434" {
		t.Errorf("BaseURL = %q", cfg.Ollama.BaseURL)
	}
	if cfg.Ollama.Model != "gpt-oss:120b" {
		t.Errorf("Model = %q", cfg.Ollama.Model)
	}
	if cfg.Ollama.Temperature != 0.1 {
		t.Errorf("Temperature = %v", cfg.Ollama.Temperature)
	}
	if cfg.Ollama.Timeout != 120*time.Second {
		t.Errorf("Timeout = %v", cfg.Ollama.Timeout)
	}
	if cfg.Auth.TokenExpireHours != 24 {
		t.Errorf("TokenExpireHours = %d", cfg.Auth.TokenExpireHours)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q", cfg.Log.Format)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "fehlt.yaml")); err != nil {
		t.Errorf("Load of missing file: %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kaputt.yaml")
	if err := os.WriteFile(path, []byte("server: [not: closed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9090"
ollama:
  model: llava:13b
  vision: true
  max_retries: 3
store:
  max_contracts: 500
auth:
  jwt_secret: geheim
  users:
    - username: admin
      password: pw
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Ollama.Model != "llava:13b" || !cfg.Ollama.Vision || cfg.Ollama.MaxRetries != 3 {
		t.Errorf("Ollama = %+v", cfg.Ollama)
	}
	if cfg.Store.MaxContracts != 500 {
		t.Errorf("MaxContracts = %d", cfg.Store.MaxContracts)
	}
	if u := cfg.Auth.FindUser("admin"); u == nil || u.Password != "pw" {
		t.Errorf("FindUser(admin) = %+v", u)
	}
	if cfg.Auth.FindUser("niemand") != nil {
		t.Error("FindUser returned a user for unknown name")
	}
	// File values the defaults must not clobber.
	if cfg.Ollama.BaseURL != "http://localhost:11434" {
		t.Errorf("BaseURL default missing: %q", cfg.Ollama.BaseURL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("OLLAMA_MODEL", "mistral:7b")
	t.Setenv("OLLAMA_TEMPERATURE", "0.3")
	t.Setenv("OLLAMA_TIMEOUT", "30s")
	t.Setenv("OLLAMA_VISION", "true")
	t.Setenv("STORE_MAX_CONTRACTS", "100")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Ollama.Model != "mistral:7b" {
		t.Errorf("Model = %q", cfg.Ollama.Model)
	}
	if cfg.Ollama.Temperature != 0.3 {
		t.Errorf("Temperature = %v", cfg.Ollama.Temperature)
	}
	if cfg.Ollama.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.Ollama.Timeout)
	}
	if !cfg.Ollama.Vision {
		t.Error("Vision not enabled via env")
	}
	if cfg.Store.MaxContracts != 100 {
		t.Errorf("MaxContracts = %d", cfg.Store.MaxContracts)
	}
}
