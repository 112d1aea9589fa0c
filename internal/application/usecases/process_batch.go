package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/supportloop/triage/internal/adapters/metrics"
	"github.com/supportloop/triage/internal/domain/models"
	"github.com/supportloop/triage/internal/ports"
)

const (
	// DefaultMaxConcurrency bounds how many pipelines run at once.
	DefaultMaxConcurrency = 10
	// DefaultMaxBatchSize is the hard batch size cap; larger batches are
	// rejected before any work starts.
	DefaultMaxBatchSize = 50
)

// ProcessBatch fans a batch of tickets out over the single-ticket pipeline.
// Tickets run independently: one failure is recorded and the rest proceed.
type ProcessBatch struct {
	pipeline       ports.TicketProcessor
	maxConcurrency int
	maxBatchSize   int
}

// NewProcessBatch builds the batch coordinator. Non-positive limits fall
// back to the defaults.
func NewProcessBatch(pipeline ports.TicketProcessor, maxConcurrency, maxBatchSize int) *ProcessBatch {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}
	return &ProcessBatch{
		pipeline:       pipeline,
		maxConcurrency: maxConcurrency,
		maxBatchSize:   maxBatchSize,
	}
}

// Run processes every ticket in the batch with at most maxConcurrency
// pipelines in flight. Results arrive in completion order; each entry
// carries its ticket id for attribution.
func (uc *ProcessBatch) Run(ctx context.Context, tickets []*models.Ticket) (*models.BatchResult, error) {
	if len(tickets) > uc.maxBatchSize {
		return nil, &models.BatchTooLargeError{Size: len(tickets), Limit: uc.maxBatchSize}
	}

	metrics.BatchSize.Observe(float64(len(tickets)))
	start := time.Now()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result models.BatchResult
	)

	sem := make(chan struct{}, uc.maxConcurrency)
	for _, ticket := range tickets {
		wg.Add(1)
		go func(t *models.Ticket) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			res, err := uc.pipeline.Run(ctx, t)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				metrics.TicketsProcessedTotal.WithLabelValues("failure").Inc()
				result.Failures = append(result.Failures, models.TicketFailure{TicketID: t.ID, Err: err})
				return
			}
			metrics.TicketsProcessedTotal.WithLabelValues("success").Inc()
			result.Successes = append(result.Successes, res)
		}(ticket)
	}

	wg.Wait()
	result.Elapsed = time.Since(start)
	return &result, nil
}
