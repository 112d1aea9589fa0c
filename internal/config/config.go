// Package config loads triage configuration from defaults, an optional
// JSON config file and TRIAGE_* environment variables, in that order of
// precedence.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the triage service
type Config struct {
	LLM       LLMConfig       `json:"llm"`
	Server    ServerConfig    `json:"server"`
	Pipeline  PipelineConfig  `json:"pipeline"`
	Knowledge KnowledgeConfig `json:"knowledge"`
	Prompt    PromptConfig    `json:"prompt"`
	Telemetry TelemetryConfig `json:"telemetry"`
}

// LLMConfig holds LLM API configuration (any OpenAI-compatible endpoint)
type LLMConfig struct {
	URL         string  `json:"url"`
	APIKey      string  `json:"api_key"`
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// ServerConfig holds API server configuration
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// PipelineConfig holds batch and stage execution limits
type PipelineConfig struct {
	MaxConcurrency int           `json:"max_concurrency"`
	MaxBatchSize   int           `json:"max_batch_size"`
	StageTimeout   time.Duration `json:"stage_timeout"`
}

// KnowledgeConfig holds knowledge base configuration
type KnowledgeConfig struct {
	Path string `json:"path"`
}

// PromptConfig holds prompt artifact configuration
type PromptConfig struct {
	// InstructionsPath points to an optimized-instructions artifact produced
	// by the optimize command. Empty means baseline instructions.
	InstructionsPath string `json:"instructions_path"`
}

// TelemetryConfig holds tracing configuration
type TelemetryConfig struct {
	// TraceStdout enables span export to stdout.
	TraceStdout bool `json:"trace_stdout"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			URL:         "http://localhost:8000/v1",
			APIKey:      "",
			Model:       "Qwen/Qwen3-8B-AWQ",
			MaxTokens:   1024,
			Temperature: 0.3,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Pipeline: PipelineConfig{
			MaxConcurrency: 10,
			MaxBatchSize:   50,
			StageTimeout:   2 * time.Minute,
		},
		Knowledge: KnowledgeConfig{
			Path: "data/knowledge_base/solutions.json",
		},
		Prompt: PromptConfig{
			InstructionsPath: "",
		},
		Telemetry: TelemetryConfig{
			TraceStdout: false,
		},
	}
}

// envString loads a string environment variable into the target pointer if set
func envString(key string, target *string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// envInt loads an integer environment variable into the target pointer if set and valid
func envInt(key string, target *int) {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			*target = i
		}
	}
}

// envFloat loads a float64 environment variable into the target pointer if set and valid
func envFloat(key string, target *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*target = f
		}
	}
}

// envBool loads a boolean environment variable into the target pointer if set and valid
func envBool(key string, target *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*target = b
		}
	}
}

// envDuration loads a duration environment variable into the target pointer if set and valid
func envDuration(key string, target *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*target = d
		}
	}
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath := getConfigPath()
	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to parse config file %s: %v\n", configPath, err)
		}
	}

	envString("TRIAGE_LLM_URL", &cfg.LLM.URL)
	envString("TRIAGE_LLM_API_KEY", &cfg.LLM.APIKey)
	envString("TRIAGE_LLM_MODEL", &cfg.LLM.Model)
	envInt("TRIAGE_LLM_MAX_TOKENS", &cfg.LLM.MaxTokens)
	envFloat("TRIAGE_LLM_TEMPERATURE", &cfg.LLM.Temperature)

	envString("TRIAGE_SERVER_HOST", &cfg.Server.Host)
	envInt("TRIAGE_SERVER_PORT", &cfg.Server.Port)

	envInt("TRIAGE_MAX_CONCURRENCY", &cfg.Pipeline.MaxConcurrency)
	envInt("TRIAGE_MAX_BATCH_SIZE", &cfg.Pipeline.MaxBatchSize)
	envDuration("TRIAGE_STAGE_TIMEOUT", &cfg.Pipeline.StageTimeout)

	envString("TRIAGE_KNOWLEDGE_PATH", &cfg.Knowledge.Path)
	envString("TRIAGE_INSTRUCTIONS_PATH", &cfg.Prompt.InstructionsPath)

	envBool("TRIAGE_TRACE_STDOUT", &cfg.Telemetry.TraceStdout)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isValidURL validates that a URL has proper format
func isValidURL(urlStr string) bool {
	u, err := url.Parse(urlStr)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, "server port must be between 1 and 65535")
	}

	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		errs = append(errs, "LLM temperature must be between 0 and 2")
	}
	if c.LLM.MaxTokens < 1 {
		errs = append(errs, "LLM max_tokens must be positive")
	}
	if c.LLM.URL == "" {
		errs = append(errs, "LLM URL is required")
	} else if !isValidURL(c.LLM.URL) {
		errs = append(errs, "LLM URL must be a valid URL")
	}

	if c.Pipeline.MaxConcurrency < 1 {
		errs = append(errs, "pipeline max_concurrency must be at least 1")
	}
	if c.Pipeline.MaxBatchSize < 1 {
		errs = append(errs, "pipeline max_batch_size must be at least 1")
	}
	if c.Pipeline.StageTimeout <= 0 {
		errs = append(errs, "pipeline stage_timeout must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() string {
	if path := os.Getenv("TRIAGE_CONFIG"); path != "" {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "config.json"
	}

	configPath := filepath.Join(homeDir, ".config", "triage", "config.json")
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return configPath
}
