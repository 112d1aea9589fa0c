package handlers

import (
	"errors"
	"net/http"

	"github.com/supportloop/triage/internal/adapters/http/dto"
	"github.com/supportloop/triage/internal/application/services"
	"github.com/supportloop/triage/internal/domain/models"
	"github.com/supportloop/triage/internal/ports"
)

// TicketsHandler serves single-ticket and batch processing endpoints.
type TicketsHandler struct {
	processor ports.TicketProcessor
	batch     ports.BatchProcessor
	idGen     ports.IDGenerator
}

func NewTicketsHandler(processor ports.TicketProcessor, batch ports.BatchProcessor, idGen ports.IDGenerator) *TicketsHandler {
	return &TicketsHandler{
		processor: processor,
		batch:     batch,
		idGen:     idGen,
	}
}

// ProcessTicket handles POST /process-ticket
func (h *TicketsHandler) ProcessTicket(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[dto.TicketRequest](r, w)
	if !ok {
		return
	}

	ticket, override, ok := h.validateTicket(req, w)
	if !ok {
		return
	}

	result, err := h.processor.Run(r.Context(), ticket)
	if err != nil {
		respondProcessingError(w, err)
		return
	}

	respondJSON(w, dto.FromTicketResult(result, override), http.StatusOK)
}

// ProcessBatch handles POST /process-batch
func (h *TicketsHandler) ProcessBatch(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[dto.BatchRequest](r, w)
	if !ok {
		return
	}
	if len(req.Tickets) == 0 {
		respondError(w, "validation_error", "tickets must not be empty", http.StatusBadRequest)
		return
	}

	tickets := make([]*models.Ticket, 0, len(req.Tickets))
	overrides := make(map[string]string)
	for i := range req.Tickets {
		ticket, override, ok := h.validateTicket(&req.Tickets[i], w)
		if !ok {
			return
		}
		if override != "" {
			overrides[ticket.ID] = override
		}
		tickets = append(tickets, ticket)
	}

	batch, err := h.batch.Run(r.Context(), tickets)
	if err != nil {
		var tooLarge *models.BatchTooLargeError
		if errors.As(err, &tooLarge) {
			respondError(w, "batch_too_large", tooLarge.Error(), http.StatusBadRequest)
			return
		}
		respondError(w, "processing_error", err.Error(), http.StatusInternalServerError)
		return
	}

	resp := dto.BatchResponse{
		TotalTickets:          len(tickets),
		Successful:            len(batch.Successes),
		Failed:                len(batch.Failures),
		Results:               make([]dto.TicketResponse, 0, len(batch.Successes)),
		TotalProcessingTimeMs: batch.Elapsed.Milliseconds(),
	}
	for _, res := range batch.Successes {
		resp.Results = append(resp.Results, dto.FromTicketResult(res, overrides[res.TicketID]))
	}
	for _, failure := range batch.Failures {
		resp.Errors = append(resp.Errors, dto.BatchTicketError{
			TicketID: failure.TicketID,
			Error:    failure.Err.Error(),
		})
	}

	if summary, err := services.Summarize(batch.Successes, len(batch.Failures)); err == nil {
		resp.Summary = summary
	}

	respondJSON(w, resp, http.StatusOK)
}

// validateTicket checks required fields, assigns an id when absent and
// validates the optional priority override. Writes the error response
// itself when validation fails.
func (h *TicketsHandler) validateTicket(req *dto.TicketRequest, w http.ResponseWriter) (*models.Ticket, string, bool) {
	if req.Subject == "" || req.Message == "" {
		respondError(w, "validation_error", "subject and message are required", http.StatusBadRequest)
		return nil, "", false
	}

	override := ""
	if req.PriorityOverride != "" {
		priority, ok := models.ParsePriority(req.PriorityOverride)
		if !ok {
			respondError(w, "validation_error", "invalid priority_override: "+req.PriorityOverride, http.StatusBadRequest)
			return nil, "", false
		}
		override = string(priority)
	}

	id := req.ID
	if id == "" {
		id = h.idGen.GenerateTicketID()
	}

	return &models.Ticket{
		ID:            id,
		Subject:       req.Subject,
		Message:       req.Message,
		CustomerEmail: req.CustomerEmail,
	}, override, true
}

// respondProcessingError maps domain pipeline errors to HTTP statuses,
// naming the failing stage when known.
func respondProcessingError(w http.ResponseWriter, err error) {
	var schemaErr *models.SchemaError
	if errors.As(err, &schemaErr) {
		respondJSON(w, dto.ErrorResponse{
			Error:   "schema_error",
			Message: schemaErr.Error(),
			Stage:   schemaErr.Stage,
		}, http.StatusInternalServerError)
		return
	}

	var upstream *models.UpstreamError
	if errors.As(err, &upstream) {
		respondJSON(w, dto.ErrorResponse{
			Error:   "upstream_error",
			Message: upstream.Error(),
			Stage:   upstream.Stage,
		}, http.StatusInternalServerError)
		return
	}

	respondError(w, "processing_error", err.Error(), http.StatusInternalServerError)
}
