package main

import (
	"fmt"

	"github.com/supportloop/triage/internal/application/usecases"
	"github.com/supportloop/triage/internal/config"
	"github.com/supportloop/triage/internal/knowledge"
	"github.com/supportloop/triage/internal/llm"
	"github.com/supportloop/triage/internal/prompt"
)

// Shared state initialized by the root command's PersistentPreRunE.
var (
	cfg        *config.Config
	llmClient  *llm.Client
	llmService *llm.Service
)

// Set via -ldflags at build time.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// buildPipeline loads the knowledge base and instruction artifact, registers
// the default LLM and assembles the single-ticket pipeline.
func buildPipeline() (*usecases.ProcessTicket, *knowledge.Store, error) {
	kb, err := knowledge.Load(cfg.Knowledge.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load knowledge base: %w", err)
	}

	instructions, err := prompt.LoadInstructions(cfg.Prompt.InstructionsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load instructions: %w", err)
	}

	prompt.ConfigureLLM(llmService, llmClient.Model())

	return usecases.NewProcessTicket(kb, instructions), kb, nil
}

func maskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "****" + s[len(s)-4:]
}
