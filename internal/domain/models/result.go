package models

import "time"

// Classification is the output of the classify stage. Immutable once
// produced.
type Classification struct {
	Category     Category     `json:"category"`
	Priority     Priority     `json:"priority"`
	ResponseType ResponseType `json:"response_type"`
	Reasoning    string       `json:"reasoning"`
}

// KnowledgeResult is the output of the retrieve stage. It depends only on
// the classification category and the ticket text.
type KnowledgeResult struct {
	RelevantSolution string `json:"relevant_solution"`
	EscalationNeeded bool   `json:"escalation_needed"`
}

// GeneratedResponse is the output of the respond stage.
type GeneratedResponse struct {
	Response   string  `json:"response"`
	Confidence float64 `json:"confidence"`
}

// QualityAssessment is the output of the evaluate stage. It depends only on
// the original message and the generated response.
type QualityAssessment struct {
	QualityScore   float64 `json:"quality_score"`
	IsHelpful      bool    `json:"is_helpful"`
	IsProfessional bool    `json:"is_professional"`
	Suggestions    string  `json:"suggestions"`
}

// TicketResult aggregates every stage output for one ticket. It is
// assembled once the pipeline completes and never mutated afterward.
type TicketResult struct {
	TicketID       string            `json:"ticket_id"`
	Classification Classification    `json:"classification"`
	Knowledge      KnowledgeResult   `json:"knowledge"`
	Response       GeneratedResponse `json:"response"`
	Quality        QualityAssessment `json:"quality"`
	ProcessingTime time.Duration     `json:"processing_time"`
}

// TicketFailure records one ticket whose pipeline run failed.
type TicketFailure struct {
	TicketID string
	Err      error
}

// BatchResult partitions a batch run into independent successes and
// failures. No cross-ticket ordering is guaranteed; entries are
// attributable by ticket id.
type BatchResult struct {
	Successes []*TicketResult
	Failures  []TicketFailure
	Elapsed   time.Duration
}

// Summary holds aggregate statistics over a batch of ticket results.
type Summary struct {
	AverageQualityScore float64 `json:"average_quality_score"`
	HighPriorityCount   int     `json:"high_priority_count"`
	EscalationCount     int     `json:"escalation_count"`
	SuccessRate         float64 `json:"success_rate"`
}

// Feedback is caller-submitted quality feedback for a processed ticket.
// Acknowledged but not persisted; a durable store would own retraining data.
type Feedback struct {
	TicketID        string  `json:"ticket_id"`
	ResponseQuality float64 `json:"response_quality"`
	WasHelpful      bool    `json:"was_helpful"`
	Comments        string  `json:"comments,omitempty"`
}
