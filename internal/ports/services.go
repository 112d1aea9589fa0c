package ports

import (
	"context"

	"github.com/supportloop/triage/internal/domain/models"
)

// LLMMessage is a message in the LLM conversation context.
type LLMMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// LLMResponse is a completion returned by the LLM service.
type LLMResponse struct {
	Content string `json:"content"`
}

// LLMService defines the interface for LLM completions. Implementations own
// timeouts, retries and circuit breaking; callers see only the final error.
type LLMService interface {
	Chat(ctx context.Context, messages []LLMMessage) (*LLMResponse, error)
}

// IDGenerator issues ticket ids. Injected into intake so id generation is
// never a package-global counter.
type IDGenerator interface {
	GenerateTicketID() string
}

// KnowledgeBase is the read-only solution lookup, keyed by category. Loaded
// once at startup and safe for concurrent use without locking.
type KnowledgeBase interface {
	Lookup(category models.Category) []models.KnowledgeEntry
	Size() int
}

// TicketProcessor runs the four-stage pipeline for a single ticket. It
// returns either a complete TicketResult or one of the domain errors
// (UpstreamError, SchemaError); never a partial result.
type TicketProcessor interface {
	Run(ctx context.Context, ticket *models.Ticket) (*models.TicketResult, error)
}

// BatchProcessor fans a batch of tickets out over the pipeline with bounded
// concurrency. One ticket's failure never aborts the others.
type BatchProcessor interface {
	Run(ctx context.Context, tickets []*models.Ticket) (*models.BatchResult, error)
}
