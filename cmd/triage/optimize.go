package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/supportloop/triage/internal/application/services"
	"github.com/supportloop/triage/internal/prompt"
)

func optimizeCmd() *cobra.Command {
	var (
		examplesPath string
		outputPath   string
		generations  int
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Evolve the classify instruction with GEPA against labeled examples",
		Long: `Optimize runs offline: it evolves the classification instruction against
labeled examples and writes the best candidate to an artifact. Point
TRIAGE_INSTRUCTIONS_PATH at the artifact to serve with it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			examples, err := services.LoadTrainingExamples(examplesPath)
			if err != nil {
				return err
			}

			prompt.ConfigureLLM(llmService, llmClient.Model())

			optCfg := services.DefaultOptimizationConfig()
			if generations > 0 {
				optCfg.MaxGenerations = generations
			}

			fmt.Printf("Optimizing classify instruction over %d examples (%d generations)...\n",
				len(examples), optCfg.MaxGenerations)

			optimizer := services.NewOptimizer(optCfg)
			instructions, err := optimizer.OptimizeClassify(cmd.Context(), examples)
			if err != nil {
				return fmt.Errorf("optimization failed: %w", err)
			}

			if err := instructions.Save(outputPath); err != nil {
				return err
			}

			fmt.Printf("Best instruction:\n  %s\n\n", instructions.Classify)
			fmt.Printf("Artifact written to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&examplesPath, "examples", "data/training/classifier_examples.json", "path to labeled training examples JSON")
	cmd.Flags().StringVar(&outputPath, "output", "instructions.json", "path to write the instruction artifact")
	cmd.Flags().IntVar(&generations, "generations", 0, "override the number of GEPA generations")
	return cmd
}
