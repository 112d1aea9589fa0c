package dto

import (
	"time"

	"github.com/supportloop/triage/internal/domain/models"
)

// TicketRequest is the wire form of a ticket submission. ID is optional;
// the intake assigns one when absent. PriorityOverride, when present,
// replaces the classified priority in the response.
type TicketRequest struct {
	ID               string `json:"id,omitempty"`
	Subject          string `json:"subject"`
	Message          string `json:"message"`
	CustomerEmail    string `json:"customer_email,omitempty"`
	PriorityOverride string `json:"priority_override,omitempty"`
}

// BatchRequest wraps a list of tickets for batch processing.
type BatchRequest struct {
	Tickets []TicketRequest `json:"tickets"`
}

// TicketResponse is the wire form of a processed ticket.
type TicketResponse struct {
	TicketID          string  `json:"ticket_id"`
	Category          string  `json:"category"`
	Priority          string  `json:"priority"`
	ResponseType      string  `json:"response_type"`
	GeneratedResponse string  `json:"generated_response"`
	QualityScore      float64 `json:"quality_score"`
	EscalationNeeded  bool    `json:"escalation_needed"`
	ProcessingTimeMs  int64   `json:"processing_time_ms"`
	Timestamp         string  `json:"timestamp"`
}

// BatchTicketError attributes a failed ticket inside a batch response.
type BatchTicketError struct {
	TicketID string `json:"ticket_id"`
	Error    string `json:"error"`
}

// BatchResponse is the wire form of a batch run: per-ticket results and
// errors plus the aggregate summary.
type BatchResponse struct {
	TotalTickets          int                `json:"total_tickets"`
	Successful            int                `json:"successful"`
	Failed                int                `json:"failed"`
	Results               []TicketResponse   `json:"results"`
	Errors                []BatchTicketError `json:"errors,omitempty"`
	Summary               *models.Summary    `json:"summary,omitempty"`
	TotalProcessingTimeMs int64              `json:"total_processing_time_ms"`
}

// FeedbackRequest is caller-submitted feedback for a processed ticket.
type FeedbackRequest struct {
	TicketID        string  `json:"ticket_id"`
	ResponseQuality float64 `json:"response_quality"`
	WasHelpful      bool    `json:"was_helpful"`
	Comments        string  `json:"comments,omitempty"`
}

// FeedbackResponse acknowledges received feedback.
type FeedbackResponse struct {
	Status   string `json:"status"`
	TicketID string `json:"ticket_id"`
}

// FromTicketResult converts a domain result to its wire form, applying the
// optional priority override.
func FromTicketResult(res *models.TicketResult, priorityOverride string) TicketResponse {
	priority := string(res.Classification.Priority)
	if priorityOverride != "" {
		priority = priorityOverride
	}

	return TicketResponse{
		TicketID:          res.TicketID,
		Category:          string(res.Classification.Category),
		Priority:          priority,
		ResponseType:      string(res.Classification.ResponseType),
		GeneratedResponse: res.Response.Response,
		QualityScore:      res.Quality.QualityScore,
		EscalationNeeded:  res.Knowledge.EscalationNeeded,
		ProcessingTimeMs:  res.ProcessingTime.Milliseconds(),
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	}
}
