package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/supportloop/triage/internal/domain/models"
	"github.com/supportloop/triage/internal/manual"
	"github.com/supportloop/triage/internal/ports"
)

// ArmStats aggregates one benchmark arm over the sample tickets.
type ArmStats struct {
	Attempted     int     `json:"attempted"`
	Succeeded     int     `json:"succeeded"`
	SuccessRate   float64 `json:"success_rate"`
	AvgTimeMs     float64 `json:"avg_time_ms"`
	AvgQuality    float64 `json:"avg_quality,omitempty"`
	ParseFailures int     `json:"parse_failures,omitempty"`
}

// Report compares the declarative pipeline against the hand-written-prompt
// baseline. Improvements are relative percentages except when the baseline
// arm succeeded zero times; then they are absolute percentage points and
// BaselineZero is set.
type Report struct {
	Pipeline               ArmStats  `json:"pipeline"`
	Manual                 ArmStats  `json:"manual"`
	ReliabilityImprovement float64   `json:"reliability_improvement_pct"`
	SpeedImprovement       float64   `json:"speed_improvement_pct"`
	BaselineZero           bool      `json:"baseline_zero,omitempty"`
	GeneratedAt            time.Time `json:"generated_at"`
}

// Benchmark runs both arms over the same tickets, sequentially, so timing
// is not skewed by contention.
type Benchmark struct {
	pipeline ports.TicketProcessor
	manual   *manual.System
}

func NewBenchmark(pipeline ports.TicketProcessor, manualSystem *manual.System) *Benchmark {
	return &Benchmark{pipeline: pipeline, manual: manualSystem}
}

// Run executes both arms over the tickets and builds the comparison report.
func (b *Benchmark) Run(ctx context.Context, tickets []*models.Ticket) (*Report, error) {
	if len(tickets) == 0 {
		return nil, models.ErrEmptyBatch
	}

	pipelineStats := b.runPipelineArm(ctx, tickets)
	manualStats := b.runManualArm(ctx, tickets)

	report := &Report{
		Pipeline:    pipelineStats,
		Manual:      manualStats,
		GeneratedAt: time.Now().UTC(),
	}
	report.ReliabilityImprovement, report.BaselineZero = improvement(pipelineStats.SuccessRate, manualStats.SuccessRate)

	// Speed compares average latency; lower is better, so the ratio flips.
	if manualStats.AvgTimeMs > 0 && pipelineStats.AvgTimeMs > 0 {
		report.SpeedImprovement = (manualStats.AvgTimeMs - pipelineStats.AvgTimeMs) / manualStats.AvgTimeMs * 100
	}

	return report, nil
}

func (b *Benchmark) runPipelineArm(ctx context.Context, tickets []*models.Ticket) ArmStats {
	stats := ArmStats{Attempted: len(tickets)}

	var totalMs, qualitySum float64
	for _, t := range tickets {
		start := time.Now()
		res, err := b.pipeline.Run(ctx, t)
		if err != nil {
			continue
		}
		stats.Succeeded++
		totalMs += float64(time.Since(start).Milliseconds())
		qualitySum += res.Quality.QualityScore
	}

	stats.SuccessRate = float64(stats.Succeeded) / float64(stats.Attempted)
	if stats.Succeeded > 0 {
		stats.AvgTimeMs = totalMs / float64(stats.Succeeded)
		stats.AvgQuality = qualitySum / float64(stats.Succeeded)
	}
	return stats
}

// runManualArm counts a ticket as succeeded only when the parsed
// classification lands in the domain enums and a non-empty response comes
// back. Replies that parse to missing or invalid keys are the baseline's
// characteristic failure mode.
func (b *Benchmark) runManualArm(ctx context.Context, tickets []*models.Ticket) ArmStats {
	stats := ArmStats{Attempted: len(tickets)}

	var totalMs float64
	for _, t := range tickets {
		start := time.Now()

		fields, err := b.manual.ClassifyTicket(ctx, t.Subject, t.Message)
		if err != nil {
			continue
		}
		category, okCategory := models.ParseCategory(fields["category"])
		priority, okPriority := models.ParsePriority(fields["priority"])
		if !okCategory || !okPriority {
			stats.ParseFailures++
			continue
		}

		response, err := b.manual.GenerateResponse(ctx, t.Subject, t.Message, string(category), string(priority))
		if err != nil || response == "" {
			continue
		}

		stats.Succeeded++
		totalMs += float64(time.Since(start).Milliseconds())
	}

	stats.SuccessRate = float64(stats.Succeeded) / float64(stats.Attempted)
	if stats.Succeeded > 0 {
		stats.AvgTimeMs = totalMs / float64(stats.Succeeded)
	}
	return stats
}

// improvement returns the relative gain of the pipeline rate over the
// baseline rate, in percent. A zero baseline makes the ratio undefined, so
// the gain falls back to absolute percentage points with the flag set.
func improvement(pipelineRate, baselineRate float64) (float64, bool) {
	if baselineRate == 0 {
		return pipelineRate * 100, true
	}
	return (pipelineRate - baselineRate) / baselineRate * 100, false
}

// Save writes the report as indented JSON.
func (r *Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode benchmark report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write benchmark report: %w", err)
	}
	return nil
}

// LoadTickets reads sample tickets for the benchmark from a JSON file.
func LoadTickets(path string) ([]*models.Ticket, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tickets file: %w", err)
	}

	var tickets []*models.Ticket
	if err := json.Unmarshal(data, &tickets); err != nil {
		return nil, fmt.Errorf("failed to parse tickets file %s: %w", path, err)
	}
	if len(tickets) == 0 {
		return nil, fmt.Errorf("tickets file %s is empty", path)
	}
	return tickets, nil
}
