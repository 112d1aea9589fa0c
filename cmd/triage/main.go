package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/supportloop/triage/internal/config"
	"github.com/supportloop/triage/internal/llm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "triage",
		Short: "Triage - declarative support ticket pipeline",
		Long: `Triage classifies customer support tickets, retrieves solutions and
generates evaluated responses through a four-stage LLM pipeline.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			llmClient = llm.NewClient(
				cfg.LLM.URL,
				cfg.LLM.APIKey,
				cfg.LLM.Model,
				cfg.LLM.MaxTokens,
				cfg.LLM.Temperature,
			)
			llmService = llm.NewService(llmClient, cfg.Pipeline.StageTimeout)

			return nil
		},
	}

	rootCmd.AddCommand(
		serveCmd(),
		demoCmd(),
		benchmarkCmd(),
		optimizeCmd(),
		configCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configCmd shows current configuration
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Current configuration:")
			fmt.Println()

			fmt.Println("LLM:")
			fmt.Printf("  URL:         %s\n", cfg.LLM.URL)
			fmt.Printf("  Model:       %s\n", cfg.LLM.Model)
			fmt.Printf("  Max Tokens:  %d\n", cfg.LLM.MaxTokens)
			fmt.Printf("  Temperature: %.2f\n", cfg.LLM.Temperature)
			fmt.Printf("  API Key:     %s\n", maskSecret(cfg.LLM.APIKey))
			fmt.Println()

			fmt.Println("Server:")
			fmt.Printf("  Host: %s\n", cfg.Server.Host)
			fmt.Printf("  Port: %d\n", cfg.Server.Port)
			fmt.Println()

			fmt.Println("Pipeline:")
			fmt.Printf("  Max Concurrency: %d\n", cfg.Pipeline.MaxConcurrency)
			fmt.Printf("  Max Batch Size:  %d\n", cfg.Pipeline.MaxBatchSize)
			fmt.Printf("  Stage Timeout:   %s\n", cfg.Pipeline.StageTimeout)
			fmt.Println()

			fmt.Println("Knowledge Base:")
			fmt.Printf("  Path: %s\n", cfg.Knowledge.Path)
			fmt.Println()

			fmt.Println("Prompt:")
			fmt.Printf("  Instructions Path: %s\n", cfg.Prompt.InstructionsPath)
			fmt.Println()

			fmt.Println("Environment variables:")
			fmt.Println("  TRIAGE_LLM_URL, TRIAGE_LLM_API_KEY, TRIAGE_LLM_MODEL")
			fmt.Println("  TRIAGE_LLM_MAX_TOKENS, TRIAGE_LLM_TEMPERATURE")
			fmt.Println("  TRIAGE_SERVER_HOST, TRIAGE_SERVER_PORT")
			fmt.Println("  TRIAGE_MAX_CONCURRENCY, TRIAGE_MAX_BATCH_SIZE, TRIAGE_STAGE_TIMEOUT")
			fmt.Println("  TRIAGE_KNOWLEDGE_PATH, TRIAGE_INSTRUCTIONS_PATH, TRIAGE_TRACE_STDOUT")

			return nil
		},
	}
}

// versionCmd shows version information
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Triage %s\n", version)
			fmt.Printf("  Commit:     %s\n", commit)
			fmt.Printf("  Build Date: %s\n", buildDate)
		},
	}
}
