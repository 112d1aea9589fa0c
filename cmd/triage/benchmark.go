package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/supportloop/triage/internal/application/services"
	"github.com/supportloop/triage/internal/manual"
)

func benchmarkCmd() *cobra.Command {
	var (
		ticketsPath string
		outputPath  string
	)

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Compare the declarative pipeline against hand-written prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, _, err := buildPipeline()
			if err != nil {
				return err
			}

			tickets, err := services.LoadTickets(ticketsPath)
			if err != nil {
				return err
			}

			bench := services.NewBenchmark(pipeline, manual.New(llmService))

			fmt.Printf("Running benchmark over %d tickets...\n\n", len(tickets))
			report, err := bench.Run(cmd.Context(), tickets)
			if err != nil {
				return fmt.Errorf("benchmark failed: %w", err)
			}

			fmt.Println("Pipeline (declarative):")
			fmt.Printf("  Success rate: %.1f%% (%d/%d)\n", report.Pipeline.SuccessRate*100, report.Pipeline.Succeeded, report.Pipeline.Attempted)
			fmt.Printf("  Avg time:     %.0f ms\n", report.Pipeline.AvgTimeMs)
			fmt.Printf("  Avg quality:  %.2f\n", report.Pipeline.AvgQuality)
			fmt.Println()

			fmt.Println("Manual prompts (baseline):")
			fmt.Printf("  Success rate:   %.1f%% (%d/%d)\n", report.Manual.SuccessRate*100, report.Manual.Succeeded, report.Manual.Attempted)
			fmt.Printf("  Parse failures: %d\n", report.Manual.ParseFailures)
			fmt.Printf("  Avg time:       %.0f ms\n", report.Manual.AvgTimeMs)
			fmt.Println()

			if report.BaselineZero {
				fmt.Printf("Reliability improvement: +%.1f percentage points (baseline succeeded zero times)\n", report.ReliabilityImprovement)
			} else {
				fmt.Printf("Reliability improvement: %.1f%%\n", report.ReliabilityImprovement)
			}
			fmt.Printf("Speed improvement:       %.1f%%\n", report.SpeedImprovement)

			if err := report.Save(outputPath); err != nil {
				return err
			}
			fmt.Printf("\nReport written to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&ticketsPath, "tickets", "data/tickets/sample_tickets.json", "path to sample tickets JSON")
	cmd.Flags().StringVar(&outputPath, "output", "benchmark_results.json", "path to write the report")
	return cmd
}
