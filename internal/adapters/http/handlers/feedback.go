package handlers

import (
	"log/slog"
	"net/http"

	"github.com/supportloop/triage/internal/adapters/http/dto"
	"github.com/supportloop/triage/internal/adapters/metrics"
)

// FeedbackHandler accepts quality feedback for processed tickets. Feedback
// is logged and counted; a durable store would own retraining data.
type FeedbackHandler struct{}

func NewFeedbackHandler() *FeedbackHandler {
	return &FeedbackHandler{}
}

// SubmitFeedback handles POST /feedback
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[dto.FeedbackRequest](r, w)
	if !ok {
		return
	}

	if req.TicketID == "" {
		respondError(w, "validation_error", "ticket_id is required", http.StatusBadRequest)
		return
	}
	if req.ResponseQuality < 0 || req.ResponseQuality > 1 {
		respondError(w, "validation_error", "response_quality must be between 0 and 1", http.StatusBadRequest)
		return
	}

	metrics.FeedbackReceivedTotal.Inc()
	slog.Info("feedback received",
		"ticket_id", req.TicketID,
		"response_quality", req.ResponseQuality,
		"was_helpful", req.WasHelpful,
	)

	respondJSON(w, dto.FeedbackResponse{
		Status:   "received",
		TicketID: req.TicketID,
	}, http.StatusOK)
}
