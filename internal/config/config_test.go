package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.Pipeline.MaxConcurrency != 10 {
		t.Errorf("max_concurrency = %d, want 10", cfg.Pipeline.MaxConcurrency)
	}
	if cfg.Pipeline.MaxBatchSize != 50 {
		t.Errorf("max_batch_size = %d, want 50", cfg.Pipeline.MaxBatchSize)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TRIAGE_CONFIG", filepath.Join(t.TempDir(), "absent.json"))
	t.Setenv("TRIAGE_LLM_URL", "http://llm.internal:9000/v1")
	t.Setenv("TRIAGE_LLM_MODEL", "llama-3.1-8b")
	t.Setenv("TRIAGE_SERVER_PORT", "9090")
	t.Setenv("TRIAGE_MAX_CONCURRENCY", "4")
	t.Setenv("TRIAGE_STAGE_TIMEOUT", "45s")
	t.Setenv("TRIAGE_TRACE_STDOUT", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LLM.URL != "http://llm.internal:9000/v1" {
		t.Errorf("llm url = %q", cfg.LLM.URL)
	}
	if cfg.LLM.Model != "llama-3.1-8b" {
		t.Errorf("llm model = %q", cfg.LLM.Model)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Pipeline.MaxConcurrency != 4 {
		t.Errorf("max_concurrency = %d", cfg.Pipeline.MaxConcurrency)
	}
	if cfg.Pipeline.StageTimeout != 45*time.Second {
		t.Errorf("stage_timeout = %v", cfg.Pipeline.StageTimeout)
	}
	if !cfg.Telemetry.TraceStdout {
		t.Error("trace_stdout should be true")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"llm": {"url": "http://file.example:8000/v1", "model": "file-model", "max_tokens": 512, "temperature": 0.1}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TRIAGE_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LLM.Model != "file-model" {
		t.Errorf("llm model = %q, want file-model", cfg.LLM.Model)
	}
	// Unspecified sections keep their defaults.
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want default 8080", cfg.Server.Port)
	}
}

func TestEnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"server": {"host": "0.0.0.0", "port": 7000}}`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TRIAGE_CONFIG", path)
	t.Setenv("TRIAGE_SERVER_PORT", "7001")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("port = %d, want env override 7001", cfg.Server.Port)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"bad temperature", func(c *Config) { c.LLM.Temperature = 3 }},
		{"zero max tokens", func(c *Config) { c.LLM.MaxTokens = 0 }},
		{"missing llm url", func(c *Config) { c.LLM.URL = "" }},
		{"relative llm url", func(c *Config) { c.LLM.URL = "localhost:8000" }},
		{"zero concurrency", func(c *Config) { c.Pipeline.MaxConcurrency = 0 }},
		{"zero batch size", func(c *Config) { c.Pipeline.MaxBatchSize = 0 }},
		{"zero stage timeout", func(c *Config) { c.Pipeline.StageTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
