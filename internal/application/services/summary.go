// Package services holds application services built on the pipeline:
// batch summarization, the benchmark harness and offline prompt
// optimization.
package services

import (
	"github.com/supportloop/triage/internal/domain/models"
)

// Summarize aggregates a batch's successful results into a Summary. The
// failed count only affects the success rate; quality, priority and
// escalation statistics are computed over successes alone. Inputs are not
// mutated, so summarizing the same results twice yields the same summary.
func Summarize(results []*models.TicketResult, failed int) (*models.Summary, error) {
	if len(results) == 0 {
		return nil, models.ErrEmptyBatch
	}

	var (
		qualitySum  float64
		highCount   int
		escalations int
	)
	for _, r := range results {
		qualitySum += r.Quality.QualityScore
		if r.Classification.Priority.IsHigh() {
			highCount++
		}
		if r.Knowledge.EscalationNeeded {
			escalations++
		}
	}

	total := len(results) + failed
	return &models.Summary{
		AverageQualityScore: qualitySum / float64(len(results)),
		HighPriorityCount:   highCount,
		EscalationCount:     escalations,
		SuccessRate:         float64(len(results)) / float64(total),
	}, nil
}
