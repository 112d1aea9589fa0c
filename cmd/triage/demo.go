package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/supportloop/triage/internal/application/services"
	"github.com/supportloop/triage/internal/domain/models"
)

func demoCmd() *cobra.Command {
	var ticketsPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run sample tickets through the pipeline and print the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, _, err := buildPipeline()
			if err != nil {
				return err
			}

			var tickets []*models.Ticket
			if ticketsPath != "" {
				tickets, err = services.LoadTickets(ticketsPath)
				if err != nil {
					return err
				}
			} else {
				tickets = demoTickets()
			}

			for i, ticket := range tickets {
				fmt.Printf("=== Ticket %d/%d: %s ===\n", i+1, len(tickets), ticket.Subject)

				result, err := pipeline.Run(cmd.Context(), ticket)
				if err != nil {
					fmt.Printf("  FAILED: %v\n\n", err)
					continue
				}

				fmt.Printf("  Category:     %s\n", result.Classification.Category)
				fmt.Printf("  Priority:     %s\n", result.Classification.Priority)
				fmt.Printf("  ResponseType: %s\n", result.Classification.ResponseType)
				fmt.Printf("  Escalation:   %t\n", result.Knowledge.EscalationNeeded)
				fmt.Printf("  Quality:      %.2f (helpful=%t, professional=%t)\n",
					result.Quality.QualityScore, result.Quality.IsHelpful, result.Quality.IsProfessional)
				fmt.Printf("  Time:         %s\n", result.ProcessingTime)
				fmt.Printf("  Response:\n    %s\n\n", result.Response.Response)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&ticketsPath, "tickets", "", "path to a JSON file of tickets (default: built-in examples)")
	return cmd
}

func demoTickets() []*models.Ticket {
	return []*models.Ticket{
		{
			ID:            "demo_001",
			Subject:       "Can't log into my account",
			Message:       "I've been trying to log in for the past hour but I keep getting an 'invalid credentials' error. I'm sure my password is correct. This is urgent, I have a presentation in 30 minutes!",
			CustomerEmail: "frustrated@customer.com",
		},
		{
			ID:            "demo_002",
			Subject:       "Question about my last invoice",
			Message:       "I noticed a charge on my latest invoice that I don't recognize. Could you explain what the 'platform fee' line item covers?",
			CustomerEmail: "curious@customer.com",
		},
		{
			ID:            "demo_003",
			Subject:       "Feature request: dark mode",
			Message:       "The app is great but it's blinding at night. Any chance you could add a dark mode? My whole team would love it.",
			CustomerEmail: "nightowl@customer.com",
		},
	}
}
